package console

import (
	"context"
	"fmt"

	"github.com/yigit/hochschule/internal/app/models"
)

func (a *App) lecturerScreen() screen {
	return screen{
		title: "Lecturer Management Menu",
		entries: []menuEntry{
			{1, "Create Lecturer", a.createLecturer},
			{2, "Update Lecturer", a.updateLecturer},
			{3, "Delete Lecturer", a.deleteLecturer},
			{4, "Display All Lecturers", a.displayAllLecturers},
			{5, "Display Lecturer by ID", a.displayLecturerByID},
			{6, "Add Lecturer to Course", a.addLecturerToCourseFromLecturer},
		},
	}
}

func (a *App) printDegrees() {
	a.println("Select Degree:")
	for i, d := range models.Degrees {
		a.printf("%d. %s\n", i+1, d)
	}
}

// chooseDegree asks for a degree by its 1-based menu number
func (a *App) chooseDegree() (models.Degree, error) {
	a.printDegrees()
	choice, err := a.in.IntBetween(fmt.Sprintf("Enter your choice (1-%d)", len(models.Degrees)), 1, len(models.Degrees))
	if err != nil {
		return models.DegreeBachelor, err
	}
	return models.Degrees[choice-1], nil
}

// chooseDegreeWithDefault keeps current on empty input
func (a *App) chooseDegreeWithDefault(current models.Degree) (models.Degree, error) {
	a.printDegrees()
	def := int(current) + 1
	if !current.IsValid() {
		def = 1
	}
	choice, err := a.in.IntBetweenWithDefault(fmt.Sprintf("Enter your choice (1-%d)", len(models.Degrees)), 1, len(models.Degrees), def)
	if err != nil {
		return current, err
	}
	return models.Degrees[choice-1], nil
}

func (a *App) createLecturer(ctx context.Context) error {
	a.heading("Create Lecturer")

	surname, err := a.in.String("Enter Lecturer Surname")
	if err != nil {
		return err
	}
	name, err := a.in.String("Enter Lecturer Name")
	if err != nil {
		return err
	}
	address, err := a.in.String("Enter Lecturer Address")
	if err != nil {
		return err
	}
	birthdate, err := a.in.Date("Enter Birthdate")
	if err != nil {
		return err
	}
	degree, err := a.chooseDegree()
	if err != nil {
		return err
	}

	courses, err := a.services.CourseService.ListAll(ctx)
	if err != nil {
		return err
	}
	selected, err := SelectEntities(a.in, courses, "Select Courses for this Lecturer")
	if err != nil {
		return err
	}

	created, err := a.services.LecturerService.CreateNew(ctx, &models.Lecturer{
		Surname:   surname,
		Name:      name,
		Address:   address,
		Birthdate: birthdate,
		Degree:    degree,
		Courses:   selected,
	})
	if err != nil {
		return err
	}
	a.done(fmt.Sprintf("Lecturer created with ID %d.", created.ID))
	return nil
}

func (a *App) updateLecturer(ctx context.Context) error {
	a.heading("Update Lecturer")

	id, err := a.in.Int("Enter the ID of the Lecturer to update")
	if err != nil {
		return err
	}
	lecturer, err := a.services.LecturerService.FindByID(ctx, id)
	if err != nil {
		return err
	}

	updated := lecturer.Clone()
	if updated.Surname, err = a.in.StringWithDefault("Enter Lecturer Surname", lecturer.Surname); err != nil {
		return err
	}
	if updated.Name, err = a.in.StringWithDefault("Enter Lecturer Name", lecturer.Name); err != nil {
		return err
	}
	if updated.Address, err = a.in.StringWithDefault("Enter Lecturer Address", lecturer.Address); err != nil {
		return err
	}
	if updated.Birthdate, err = a.in.DateWithDefault("Enter Birthdate", lecturer.Birthdate); err != nil {
		return err
	}
	if updated.Degree, err = a.chooseDegreeWithDefault(lecturer.Degree); err != nil {
		return err
	}

	courses, err := a.services.CourseService.ListAll(ctx)
	if err != nil {
		return err
	}
	if updated.Courses, err = SelectEntitiesWithDefault(a.in, courses, "Select Courses for this Lecturer", lecturer.Courses); err != nil {
		return err
	}

	if _, err := a.services.LecturerService.Update(ctx, lecturer.ID, updated); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Lecturer %d updated.", lecturer.ID))
	return nil
}

func (a *App) deleteLecturer(ctx context.Context) error {
	a.heading("Delete Lecturer by ID")

	id, err := a.in.Int("Enter the ID of the Lecturer to delete")
	if err != nil {
		return err
	}
	lecturer, err := a.services.LecturerService.FindByID(ctx, id)
	if err != nil {
		return err
	}
	a.println("Deleting", lecturer.ShortString())
	if err := a.services.LecturerService.Delete(ctx, lecturer); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Lecturer %d deleted.", id))
	return nil
}

func (a *App) displayAllLecturers(ctx context.Context) error {
	a.heading("Display All Lecturers")

	lecturers, err := a.services.LecturerService.ListAll(ctx)
	if err != nil {
		return err
	}
	displayList(a, lecturers, "No lecturers found.", a.showLecturer)
	return nil
}

func (a *App) displayLecturerByID(ctx context.Context) error {
	a.heading("Display Lecturer by ID")

	id, err := a.in.Int("Enter the ID of the Lecturer to display")
	if err != nil {
		return err
	}
	lecturer, err := a.services.LecturerService.FindByID(ctx, id)
	if err != nil {
		return err
	}
	a.showLecturer(lecturer)
	return nil
}

func (a *App) showLecturer(lecturer *models.Lecturer) {
	a.println(lecturer.String())
	a.println("\nCourses associated with Lecturer:")
	for _, c := range lecturer.Courses {
		a.printf(" - %d %s\n", c.ID, c.Name)
	}
	a.println()
}

func (a *App) addLecturerToCourseFromLecturer(ctx context.Context) error {
	a.heading("Add Lecturer to Course")

	lecturerID, err := a.in.Int("Enter the ID of the Lecturer to add Course")
	if err != nil {
		return err
	}
	if _, err := a.services.LecturerService.FindByID(ctx, lecturerID); err != nil {
		return err
	}
	courseID, err := a.in.Int("Enter the ID of the Course to add Lecturer")
	if err != nil {
		return err
	}
	if _, err := a.services.LecturerService.AddLecturerToCourse(ctx, lecturerID, courseID); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Lecturer %d now holds course %d.", lecturerID, courseID))
	return nil
}

package console

import (
	"context"
	"fmt"

	"github.com/yigit/hochschule/internal/app/models"
)

func (a *App) semesterScreen() screen {
	return screen{
		title: "Semester Management Menu",
		entries: []menuEntry{
			{1, "Create Semester", a.createSemester},
			{2, "Update Semester", a.updateSemester},
			{3, "Delete Semester", a.deleteSemester},
			{4, "Display All Semesters", a.displayAllSemesters},
			{5, "Display Semester by ID", a.displaySemesterByID},
			{6, "Add Course to Semester", a.addCourseToSemester},
			{7, "Add Student to Semester", a.addStudentToSemester},
		},
	}
}

func (a *App) createSemester(ctx context.Context) error {
	a.heading("Create Semester")

	name, err := a.in.String("Enter Semester Name")
	if err != nil {
		return err
	}
	start, err := a.in.Date("Enter Start Date")
	if err != nil {
		return err
	}
	end, err := a.in.Date("Enter End Date")
	if err != nil {
		return err
	}

	students, err := a.services.StudentService.ListAll(ctx)
	if err != nil {
		return err
	}
	selectedStudents, err := SelectEntities(a.in, students, "Select Students for this Semester")
	if err != nil {
		return err
	}
	courses, err := a.services.CourseService.ListAll(ctx)
	if err != nil {
		return err
	}
	selectedCourses, err := SelectEntities(a.in, courses, "Select Courses for this Semester")
	if err != nil {
		return err
	}

	created, err := a.services.SemesterService.CreateNew(ctx, &models.Semester{
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Students:  selectedStudents,
		Courses:   selectedCourses,
	})
	if err != nil {
		return err
	}
	a.done(fmt.Sprintf("Semester created with ID %d.", created.ID))
	return nil
}

func (a *App) updateSemester(ctx context.Context) error {
	a.heading("Update Semester")

	id, err := a.in.Int("Enter the ID of the Semester to update")
	if err != nil {
		return err
	}
	semester, err := a.services.SemesterService.FindByID(ctx, id)
	if err != nil {
		return err
	}

	updated := semester.Clone()
	if updated.Name, err = a.in.StringWithDefault("Enter Semester Name", semester.Name); err != nil {
		return err
	}
	if updated.StartDate, err = a.in.DateWithDefault("Enter Start Date", semester.StartDate); err != nil {
		return err
	}
	if updated.EndDate, err = a.in.DateWithDefault("Enter End Date", semester.EndDate); err != nil {
		return err
	}

	students, err := a.services.StudentService.ListAll(ctx)
	if err != nil {
		return err
	}
	if updated.Students, err = SelectEntitiesWithDefault(a.in, students, "Select Students for this Semester", semester.Students); err != nil {
		return err
	}
	courses, err := a.services.CourseService.ListAll(ctx)
	if err != nil {
		return err
	}
	if updated.Courses, err = SelectEntitiesWithDefault(a.in, courses, "Select Courses for this Semester", semester.Courses); err != nil {
		return err
	}

	if _, err := a.services.SemesterService.Update(ctx, semester.ID, updated); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Semester %d updated.", semester.ID))
	return nil
}

func (a *App) deleteSemester(ctx context.Context) error {
	a.heading("Delete Semester by ID")

	id, err := a.in.Int("Enter the ID of the Semester to delete")
	if err != nil {
		return err
	}
	semester, err := a.services.SemesterService.FindByID(ctx, id)
	if err != nil {
		return err
	}
	a.println("Deleting", semester.ShortString())
	if err := a.services.SemesterService.Delete(ctx, semester); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Semester %d deleted.", id))
	return nil
}

func (a *App) displayAllSemesters(ctx context.Context) error {
	a.heading("Display All Semesters")

	semesters, err := a.services.SemesterService.ListAll(ctx)
	if err != nil {
		return err
	}
	displayList(a, semesters, "No semesters found.", a.showSemester)
	return nil
}

func (a *App) displaySemesterByID(ctx context.Context) error {
	a.heading("Display Semester by ID")

	id, err := a.in.Int("Enter the ID of the Semester to display")
	if err != nil {
		return err
	}
	semester, err := a.services.SemesterService.FindByID(ctx, id)
	if err != nil {
		return err
	}
	a.showSemester(semester)
	return nil
}

func (a *App) showSemester(semester *models.Semester) {
	a.println(semester.String())
	a.println("\nStudents in this Semester:")
	for _, s := range semester.Students {
		a.printf(" - %d %s %s\n", s.ID, s.Name, s.Surname)
	}
	a.println("\nCourses offered in this Semester:")
	for _, c := range semester.Courses {
		a.printf(" - %d %s\n", c.ID, c.Name)
	}
	a.println()
}

func (a *App) addCourseToSemester(ctx context.Context) error {
	a.heading("Add Course to Semester")

	semesterID, err := a.in.Int("Enter the ID of the Semester to add Course")
	if err != nil {
		return err
	}
	if _, err := a.services.SemesterService.FindByID(ctx, semesterID); err != nil {
		return err
	}
	courseID, err := a.in.Int("Enter the ID of the Course to add")
	if err != nil {
		return err
	}
	if _, err := a.services.SemesterService.AddCourseToSemester(ctx, semesterID, courseID); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Course %d added to semester %d.", courseID, semesterID))
	return nil
}

func (a *App) addStudentToSemester(ctx context.Context) error {
	a.heading("Add Student to Semester")

	semesterID, err := a.in.Int("Enter the ID of the Semester to add Student")
	if err != nil {
		return err
	}
	if _, err := a.services.SemesterService.FindByID(ctx, semesterID); err != nil {
		return err
	}
	studentID, err := a.in.Int("Enter the ID of the Student to add")
	if err != nil {
		return err
	}
	if _, err := a.services.SemesterService.AddStudentToSemester(ctx, semesterID, studentID); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Student %d added to semester %d.", studentID, semesterID))
	return nil
}

package console

import (
	"context"
	"fmt"

	"github.com/yigit/hochschule/internal/app/models"
)

func (a *App) courseScreen() screen {
	return screen{
		title: "Course Management Menu",
		entries: []menuEntry{
			{1, "Create Course", a.createCourse},
			{2, "Update Course", a.updateCourse},
			{3, "Delete Course", a.deleteCourse},
			{4, "Display All Courses", a.displayAllCourses},
			{5, "Display Course by ID", a.displayCourseByID},
			{6, "Add Student to Course", a.addStudentToCourse},
			{7, "Add Lecturer to Course", a.addLecturerToCourse},
		},
	}
}

func (a *App) createCourse(ctx context.Context) error {
	a.heading("Create Course")

	name, err := a.in.String("Enter Course Name")
	if err != nil {
		return err
	}
	description, err := a.in.String("Enter Course Description")
	if err != nil {
		return err
	}
	lecturerID, err := a.in.IntOrNil("Enter Lecturer ID (or press Enter to skip)")
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
	selectedStudents, err := SelectEntities(a.in, students, "Select Students for this Course")
	if err != nil {
		return err
	}
	semesters, err := a.services.SemesterService.ListAll(ctx)
	if err != nil {
		return err
	}
	selectedSemesters, err := SelectEntities(a.in, semesters, "Select Semesters for this Course")
	if err != nil {
		return err
	}

	created, err := a.services.CourseService.CreateNew(ctx, &models.Course{
		Name:        name,
		Description: description,
		LecturerID:  lecturerID,
		Startdate:   start,
		Enddate:     end,
		Students:    selectedStudents,
		Semesters:   selectedSemesters,
	})
	if err != nil {
		return err
	}
	a.done(fmt.Sprintf("Course created with ID %d.", created.ID))
	return nil
}

func (a *App) updateCourse(ctx context.Context) error {
	a.heading("Update Course")

	id, err := a.in.Int("Enter the ID of the Course to update")
	if err != nil {
		return err
	}
	course, err := a.services.CourseService.FindByID(ctx, id)
	if err != nil {
		return err
	}

	updated := course.Clone()
	if updated.Name, err = a.in.StringWithDefault("Enter Course Name", course.Name); err != nil {
		return err
	}
	if updated.Description, err = a.in.StringWithDefault("Enter Course Description", course.Description); err != nil {
		return err
	}
	if updated.LecturerID, err = a.in.IntWithDefault("Enter Lecturer ID", course.LecturerID); err != nil {
		return err
	}
	if updated.Startdate, err = a.in.DateWithDefault("Enter Start Date", course.Startdate); err != nil {
		return err
	}
	if updated.Enddate, err = a.in.DateWithDefault("Enter End Date", course.Enddate); err != nil {
		return err
	}

	students, err := a.services.StudentService.ListAll(ctx)
	if err != nil {
		return err
	}
	if updated.Students, err = SelectEntitiesWithDefault(a.in, students, "Select Students for this Course", course.Students); err != nil {
		return err
	}
	semesters, err := a.services.SemesterService.ListAll(ctx)
	if err != nil {
		return err
	}
	if updated.Semesters, err = SelectEntitiesWithDefault(a.in, semesters, "Select Semesters for this Course", course.Semesters); err != nil {
		return err
	}

	if _, err := a.services.CourseService.Update(ctx, course.ID, updated); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Course %d updated.", course.ID))
	return nil
}

func (a *App) deleteCourse(ctx context.Context) error {
	a.heading("Delete Course by ID")

	id, err := a.in.Int("Enter the ID of the Course to delete")
	if err != nil {
		return err
	}
	course, err := a.services.CourseService.FindByID(ctx, id)
	if err != nil {
		return err
	}
	a.println("Deleting", course.ShortString())
	if err := a.services.CourseService.Delete(ctx, course); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Course %d deleted.", id))
	return nil
}

func (a *App) displayAllCourses(ctx context.Context) error {
	a.heading("Display All Courses")

	courses, err := a.services.CourseService.ListAll(ctx)
	if err != nil {
		return err
	}
	displayList(a, courses, "No courses found.", a.showCourse)
	return nil
}

func (a *App) displayCourseByID(ctx context.Context) error {
	a.heading("Display Course by ID")

	id, err := a.in.Int("Enter the ID of the Course to display")
	if err != nil {
		return err
	}
	course, err := a.services.CourseService.FindByID(ctx, id)
	if err != nil {
		return err
	}
	a.showCourse(course)
	return nil
}

func (a *App) showCourse(course *models.Course) {
	a.println(course.String())
	a.println("\nStudents enrolled in this Course:")
	for _, s := range course.Students {
		a.printf(" - %d %s %s\n", s.ID, s.Name, s.Surname)
	}
	a.println("\nSemesters associated with this Course:")
	for _, s := range course.Semesters {
		a.printf(" - %d %s\n", s.ID, s.Name)
	}
	a.println()
}

func (a *App) addStudentToCourse(ctx context.Context) error {
	a.heading("Add Student to Course")

	courseID, err := a.in.Int("Enter the ID of the Course to add Student")
	if err != nil {
		return err
	}
	if _, err := a.services.CourseService.FindByID(ctx, courseID); err != nil {
		return err
	}
	studentID, err := a.in.Int("Enter the ID of the Student to add")
	if err != nil {
		return err
	}
	if _, err := a.services.CourseService.AddStudentToCourse(ctx, courseID, studentID); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Student %d added to course %d.", studentID, courseID))
	return nil
}

func (a *App) addLecturerToCourse(ctx context.Context) error {
	a.heading("Add Lecturer to Course")

	courseID, err := a.in.Int("Enter the ID of the Course to add Lecturer")
	if err != nil {
		return err
	}
	if _, err := a.services.CourseService.FindByID(ctx, courseID); err != nil {
		return err
	}
	lecturerID, err := a.in.Int("Enter the ID of the Lecturer to add")
	if err != nil {
		return err
	}
	if _, err := a.services.CourseService.AddLecturerToCourse(ctx, courseID, lecturerID); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Lecturer %d now holds course %d.", lecturerID, courseID))
	return nil
}

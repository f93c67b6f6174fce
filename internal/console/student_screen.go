package console

import (
	"context"
	"fmt"

	"github.com/yigit/hochschule/internal/app/models"
)

func (a *App) studentScreen() screen {
	return screen{
		title: "Student Management Menu",
		entries: []menuEntry{
			{1, "Create Student", a.createStudent},
			{2, "Update Student", a.updateStudent},
			{3, "Delete Student", a.deleteStudent},
			{4, "Display All Students", a.displayAllStudents},
			{5, "Display Student by ID", a.displayStudentByID},
			{6, "Enroll Student in Course", a.enrollStudentInCourse},
			{7, "Assign Student to Semester", a.assignStudentToSemester},
		},
	}
}

func (a *App) createStudent(ctx context.Context) error {
	a.heading("Create Student")

	surname, err := a.in.String("Enter Student Surname")
	if err != nil {
		return err
	}
	name, err := a.in.String("Enter Student Name")
	if err != nil {
		return err
	}
	address, err := a.in.String("Enter Student Address")
	if err != nil {
		return err
	}
	birthdate, err := a.in.Date("Enter Birthdate")
	if err != nil {
		return err
	}
	semesterID, err := a.in.IntOrNil("Enter ID of the Semester (or press Enter to skip)")
	if err != nil {
		return err
	}

	courses, err := a.services.CourseService.ListAll(ctx)
	if err != nil {
		return err
	}
	selected, err := SelectEntities(a.in, courses, "Select Courses for this Student")
	if err != nil {
		return err
	}

	created, err := a.services.StudentService.CreateNew(ctx, &models.Student{
		Surname:    surname,
		Name:       name,
		Address:    address,
		Birthdate:  birthdate,
		SemesterID: semesterID,
		Courses:    selected,
	})
	if err != nil {
		return err
	}
	a.done(fmt.Sprintf("Student created with ID %d.", created.ID))
	return nil
}

func (a *App) updateStudent(ctx context.Context) error {
	a.heading("Update Student")

	id, err := a.in.Int("Enter the ID of the Student to update")
	if err != nil {
		return err
	}
	student, err := a.services.StudentService.FindByID(ctx, id)
	if err != nil {
		return err
	}

	updated := student.Clone()
	if updated.Surname, err = a.in.StringWithDefault("Enter Student Surname", student.Surname); err != nil {
		return err
	}
	if updated.Name, err = a.in.StringWithDefault("Enter Student Name", student.Name); err != nil {
		return err
	}
	if updated.Address, err = a.in.StringWithDefault("Enter Student Address", student.Address); err != nil {
		return err
	}
	if updated.Birthdate, err = a.in.DateWithDefault("Enter Birthdate", student.Birthdate); err != nil {
		return err
	}
	if updated.SemesterID, err = a.in.IntWithDefault("Enter ID of the Semester", student.SemesterID); err != nil {
		return err
	}

	courses, err := a.services.CourseService.ListAll(ctx)
	if err != nil {
		return err
	}
	if updated.Courses, err = SelectEntitiesWithDefault(a.in, courses, "Select Courses for this Student", student.Courses); err != nil {
		return err
	}

	if _, err := a.services.StudentService.Update(ctx, student.ID, updated); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Student %d updated.", student.ID))
	return nil
}

func (a *App) deleteStudent(ctx context.Context) error {
	a.heading("Delete Student by ID")

	id, err := a.in.Int("Enter the ID of the Student to delete")
	if err != nil {
		return err
	}
	student, err := a.services.StudentService.FindByID(ctx, id)
	if err != nil {
		return err
	}
	a.println("Deleting", student.ShortString())
	if err := a.services.StudentService.Delete(ctx, student); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Student %d deleted.", id))
	return nil
}

func (a *App) displayAllStudents(ctx context.Context) error {
	a.heading("Display All Students")

	students, err := a.services.StudentService.ListAll(ctx)
	if err != nil {
		return err
	}
	displayList(a, students, "No students found.", a.showStudent)
	return nil
}

func (a *App) displayStudentByID(ctx context.Context) error {
	a.heading("Display Student by ID")

	id, err := a.in.Int("Enter the ID of the Student to display")
	if err != nil {
		return err
	}
	student, err := a.services.StudentService.FindByID(ctx, id)
	if err != nil {
		return err
	}
	a.showStudent(student)
	return nil
}

func (a *App) showStudent(student *models.Student) {
	a.println(student.String())
	a.println("Courses enrolled in")
	for _, c := range student.Courses {
		a.printf(" - %d %s\n", c.ID, c.Name)
	}
	a.println()
}

func (a *App) enrollStudentInCourse(ctx context.Context) error {
	a.heading("Add Student to Course")

	studentID, err := a.in.Int("Enter the ID of the Student to add Course")
	if err != nil {
		return err
	}
	if _, err := a.services.StudentService.FindByID(ctx, studentID); err != nil {
		return err
	}
	courseID, err := a.in.Int("Enter the ID of the Course to add")
	if err != nil {
		return err
	}
	if _, err := a.services.StudentService.AddStudentToCourse(ctx, studentID, courseID); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Student %d enrolled in course %d.", studentID, courseID))
	return nil
}

func (a *App) assignStudentToSemester(ctx context.Context) error {
	a.heading("Assign Student to Semester")

	studentID, err := a.in.Int("Enter the ID of the Student to assign")
	if err != nil {
		return err
	}
	if _, err := a.services.StudentService.FindByID(ctx, studentID); err != nil {
		return err
	}
	semesterID, err := a.in.Int("Enter the ID of the Semester")
	if err != nil {
		return err
	}
	if _, err := a.services.StudentService.AddStudentToSemester(ctx, studentID, semesterID); err != nil {
		return err
	}
	a.done(fmt.Sprintf("Student %d assigned to semester %d.", studentID, semesterID))
	return nil
}

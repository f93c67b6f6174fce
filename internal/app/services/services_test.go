package services_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/app/repositories"
	"github.com/yigit/hochschule/internal/app/services"
	"github.com/yigit/hochschule/internal/db/dbtest"
	"github.com/yigit/hochschule/internal/pkg/apperrors"
	"github.com/yigit/hochschule/internal/pkg/helpers"
)

func newServices(t *testing.T) *services.Services {
	t.Helper()
	return services.NewServices(repositories.NewRepositories(dbtest.New(t)))
}

type world struct {
	lecturer *models.Lecturer
	semester *models.Semester
	course   *models.Course
	student  *models.Student
}

func seedWorld(t *testing.T, ctx context.Context, svc *services.Services) world {
	t.Helper()
	var (
		w   world
		err error
	)
	w.lecturer, err = svc.LecturerService.CreateNew(ctx, &models.Lecturer{Surname: "Schmidt", Name: "Hans", Degree: models.DegreeProfessor})
	require.NoError(t, err)
	w.semester, err = svc.SemesterService.CreateNew(ctx, &models.Semester{Name: "Wintersemester 2024/2025"})
	require.NoError(t, err)
	w.course, err = svc.CourseService.CreateNew(ctx, &models.Course{Name: "Software Engineering", Description: "Grundlagen"})
	require.NoError(t, err)
	w.student, err = svc.StudentService.CreateNew(ctx, &models.Student{Surname: "Mustermann", Name: "Max"})
	require.NoError(t, err)
	return w
}

func TestCreateThenFindReturnsEquivalentData(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	created, err := svc.CourseService.CreateNew(ctx, &models.Course{
		Name:        "Datenbanken",
		Description: "Datenbankkonzepte und SQL",
		Startdate:   helpers.MustDate(2024, time.October, 15),
		Enddate:     helpers.MustDate(2025, time.January, 31),
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	found, err := svc.CourseService.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, created.Description, found.Description)
	assert.Equal(t, "2024-10-15", helpers.FormatDate(found.Startdate))
	assert.Equal(t, "2025-01-31", helpers.FormatDate(found.Enddate))
}

func TestDeleteThenFindIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	w := seedWorld(t, ctx, svc)

	require.NoError(t, svc.StudentService.Delete(ctx, w.student))

	_, err := svc.StudentService.FindByID(ctx, w.student.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	assert.Equal(t, "Student with ID '"+itoa(w.student.ID)+"' not found.", err.Error())

	err = svc.StudentService.DeleteByID(ctx, w.student.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, svc.StudentService.Delete(ctx, w.student), apperrors.ErrResourceNotFound)

	require.NoError(t, svc.LecturerService.Delete(ctx, w.lecturer))
	require.NoError(t, svc.SemesterService.Delete(ctx, w.semester))
	require.NoError(t, svc.CourseService.Delete(ctx, w.course))
	_, err = svc.CourseService.FindByID(ctx, w.course.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, svc.CourseService.Delete(ctx, &models.Course{}), apperrors.ErrValidationFailed)
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	_, err := svc.StudentService.CreateNew(ctx, &models.Student{Surname: "  ", Name: "Max"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CourseService.CreateNew(ctx, &models.Course{
		Name: "Zu lang, viel zu lang, wirklich viel zu lang fuer einen Kurs", Description: "x",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.SemesterService.CreateNew(ctx, &models.Semester{
		Name:      "Verkehrt",
		StartDate: helpers.MustDate(2025, time.April, 1),
		EndDate:   helpers.MustDate(2025, time.March, 1),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.LecturerService.CreateNew(ctx, &models.Lecturer{Surname: "A", Name: "B", Degree: models.Degree(9)})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.LecturerService.FindByID(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateRejectsMissingReferences(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	w := seedWorld(t, ctx, svc)
	missing := int64(99)

	_, err := svc.StudentService.CreateNew(ctx, &models.Student{
		Surname: "Musterfrau", Name: "Erika", SemesterID: &missing,
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Contains(t, err.Error(), "Semester with ID '99'")

	_, err = svc.SemesterService.CreateNew(ctx, &models.Semester{
		Name: "Sommersemester 2025", Courses: []*models.Course{w.course, {ID: missing}},
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Contains(t, err.Error(), "Course with ID '99'")
}

func TestCourseAssociations(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	w := seedWorld(t, ctx, svc)

	course, err := svc.CourseService.AddStudentToCourse(ctx, w.course.ID, w.student.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{w.student.ID}, models.IDs(course.Students))

	_, err = svc.CourseService.AddStudentToCourse(ctx, w.course.ID, w.student.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)

	_, err = svc.StudentService.AddStudentToCourse(ctx, w.student.ID, w.course.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)

	course, err = svc.CourseService.AddLecturerToCourse(ctx, w.course.ID, w.lecturer.ID)
	require.NoError(t, err)
	require.NotNil(t, course.Lecturer)
	assert.Equal(t, w.lecturer.ID, course.Lecturer.ID)

	_, err = svc.CourseService.AddLecturerToCourse(ctx, w.course.ID, w.lecturer.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)

	_, err = svc.LecturerService.AddLecturerToCourse(ctx, w.lecturer.ID, w.course.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)

	_, err = svc.CourseService.AddStudentToCourse(ctx, w.course.ID, 404)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	_, err = svc.CourseService.AddLecturerToCourse(ctx, 404, w.lecturer.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestLecturerCanBeReassigned(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	w := seedWorld(t, ctx, svc)

	other, err := svc.LecturerService.CreateNew(ctx, &models.Lecturer{Surname: "Müller", Name: "Anna", Degree: models.DegreeProfessor})
	require.NoError(t, err)

	_, err = svc.LecturerService.AddLecturerToCourse(ctx, w.lecturer.ID, w.course.ID)
	require.NoError(t, err)

	mueller, err := svc.LecturerService.AddLecturerToCourse(ctx, other.ID, w.course.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{w.course.ID}, models.IDs(mueller.Courses))

	schmidt, err := svc.LecturerService.FindByID(ctx, w.lecturer.ID)
	require.NoError(t, err)
	assert.Empty(t, schmidt.Courses)
}

func TestSemesterAssociations(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	w := seedWorld(t, ctx, svc)

	semester, err := svc.SemesterService.AddCourseToSemester(ctx, w.semester.ID, w.course.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{w.course.ID}, models.IDs(semester.Courses))

	_, err = svc.SemesterService.AddCourseToSemester(ctx, w.semester.ID, w.course.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)

	semester, err = svc.SemesterService.AddStudentToSemester(ctx, w.semester.ID, w.student.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{w.student.ID}, models.IDs(semester.Students))

	_, err = svc.SemesterService.AddStudentToSemester(ctx, w.semester.ID, w.student.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)

	_, err = svc.StudentService.AddStudentToSemester(ctx, w.student.ID, w.semester.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
}

func TestStudentMovesBetweenSemesters(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	w := seedWorld(t, ctx, svc)

	summer, err := svc.SemesterService.CreateNew(ctx, &models.Semester{Name: "Sommersemester 2025"})
	require.NoError(t, err)

	student, err := svc.StudentService.AddStudentToSemester(ctx, w.student.ID, w.semester.ID)
	require.NoError(t, err)
	require.NotNil(t, student.Semester)
	assert.Equal(t, w.semester.ID, student.Semester.ID)

	student, err = svc.StudentService.AddStudentToSemester(ctx, w.student.ID, summer.ID)
	require.NoError(t, err)
	assert.Equal(t, summer.ID, student.Semester.ID)

	winter, err := svc.SemesterService.FindByID(ctx, w.semester.ID)
	require.NoError(t, err)
	assert.Empty(t, winter.Students)
}

func TestUpdateDiffsMembershipAndKeepsID(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	w := seedWorld(t, ctx, svc)

	dbc, err := svc.CourseService.CreateNew(ctx, &models.Course{Name: "Datenbanken", Description: "SQL"})
	require.NoError(t, err)
	_, err = svc.StudentService.AddStudentToCourse(ctx, w.student.ID, w.course.ID)
	require.NoError(t, err)

	loaded, err := svc.StudentService.FindByID(ctx, w.student.ID)
	require.NoError(t, err)
	edited := loaded.Clone()
	edited.ID = 12345
	edited.Name = "Maximilian"
	edited.Courses = []*models.Course{{ID: dbc.ID}}

	assert.Equal(t, []int64{w.course.ID}, models.IDs(loaded.Courses))

	updated, err := svc.StudentService.Update(ctx, w.student.ID, edited)
	require.NoError(t, err)
	assert.Equal(t, w.student.ID, updated.ID)
	assert.Equal(t, "Maximilian", updated.Name)
	assert.Equal(t, []int64{dbc.ID}, models.IDs(updated.Courses))

	_, err = svc.StudentService.Update(ctx, 777, edited)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	exists, err := svc.StudentService.ExistsByID(ctx, 12345)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListAndFindByIDs(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	w := seedWorld(t, ctx, svc)

	lecturers, err := svc.LecturerService.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, lecturers, 1)

	semesters, err := svc.SemesterService.FindByIDs(ctx, []int64{w.semester.ID, 50})
	require.NoError(t, err)
	assert.Equal(t, []int64{w.semester.ID}, models.IDs(semesters))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestUpdateChangesAndClearsReferences(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	w := seedWorld(t, ctx, svc)

	summer, err := svc.SemesterService.CreateNew(ctx, &models.Semester{Name: "Sommersemester 2025"})
	require.NoError(t, err)
	_, err = svc.StudentService.AddStudentToSemester(ctx, w.student.ID, w.semester.ID)
	require.NoError(t, err)

	loaded, err := svc.StudentService.FindByID(ctx, w.student.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Semester)
	moved := loaded.Clone()
	moved.SemesterID = &summer.ID

	student, err := svc.StudentService.Update(ctx, w.student.ID, moved)
	require.NoError(t, err)
	require.NotNil(t, student.Semester)
	assert.Equal(t, summer.ID, student.Semester.ID)

	cleared := student.Clone()
	cleared.SemesterID = nil
	student, err = svc.StudentService.Update(ctx, w.student.ID, cleared)
	require.NoError(t, err)
	assert.Nil(t, student.SemesterID)
	assert.Nil(t, student.Semester)

	other, err := svc.LecturerService.CreateNew(ctx, &models.Lecturer{Surname: "Müller", Name: "Anna", Degree: models.DegreePhD})
	require.NoError(t, err)
	course, err := svc.CourseService.AddLecturerToCourse(ctx, w.course.ID, w.lecturer.ID)
	require.NoError(t, err)

	reassigned := course.Clone()
	reassigned.LecturerID = &other.ID
	course, err = svc.CourseService.Update(ctx, w.course.ID, reassigned)
	require.NoError(t, err)
	require.NotNil(t, course.Lecturer)
	assert.Equal(t, other.ID, course.Lecturer.ID)

	unassigned := course.Clone()
	unassigned.LecturerID = nil
	course, err = svc.CourseService.Update(ctx, w.course.ID, unassigned)
	require.NoError(t, err)
	assert.Nil(t, course.LecturerID)

	missing := int64(404)
	dangling := course.Clone()
	dangling.LecturerID = &missing
	_, err = svc.CourseService.Update(ctx, w.course.ID, dangling)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCreateFallsBackToLoadedReference(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	w := seedWorld(t, ctx, svc)

	student, err := svc.StudentService.CreateNew(ctx, &models.Student{Surname: "Musterfrau", Name: "Erika", Semester: w.semester})
	require.NoError(t, err)
	require.NotNil(t, student.SemesterID)
	assert.Equal(t, w.semester.ID, *student.SemesterID)

	course, err := svc.CourseService.CreateNew(ctx, &models.Course{Name: "Datenbanken", Description: "SQL", Lecturer: w.lecturer})
	require.NoError(t, err)
	require.NotNil(t, course.Lecturer)
	assert.Equal(t, w.lecturer.ID, course.Lecturer.ID)
}

package services

import (
	"context"
	"fmt"

	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/app/repositories"
	"github.com/yigit/hochschule/internal/pkg/apperrors"
	"github.com/yigit/hochschule/internal/pkg/logger"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*models.Student, error)
	ListAll(ctx context.Context) ([]*models.Student, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	CreateNew(ctx context.Context, student *models.Student) (*models.Student, error)
	Update(ctx context.Context, id int64, student *models.Student) (*models.Student, error)
	Delete(ctx context.Context, student *models.Student) error
	DeleteByID(ctx context.Context, id int64) error
	AddStudentToCourse(ctx context.Context, studentID, courseID int64) (*models.Student, error)
	AddStudentToSemester(ctx context.Context, studentID, semesterID int64) (*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo  *repositories.StudentRepository
	courseRepo   *repositories.CourseRepository
	semesterRepo *repositories.SemesterRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(repos *repositories.Repositories) StudentService {
	return &studentServiceImpl{
		studentRepo:  repos.StudentRepository,
		courseRepo:   repos.CourseRepository,
		semesterRepo: repos.SemesterRepository,
	}
}

// validateStudent validates student data before database operations
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	if err := validateRequired("surname", student.Surname, 100); err != nil {
		return err
	}
	return validateRequired("name", student.Name, 100)
}

// resolveReferences checks the semester and replaces the courses with stored
// ones. SemesterID decides the semester, a Semester disagreeing with it is dropped.
func (s *studentServiceImpl) resolveReferences(ctx context.Context, student *models.Student) error {
	if !referenceAgrees(student.SemesterID, student.Semester) {
		student.Semester = nil
	}
	if err := requireExists(ctx, apperrors.EntitySemester, student.SemesterID, s.semesterRepo.ExistsByID); err != nil {
		return err
	}

	courses, err := resolve(ctx, apperrors.EntityCourse, student.Courses, s.courseRepo.FindByIDs)
	if err != nil {
		return err
	}
	student.Courses = courses
	return nil
}

// FindByID retrieves a student by ID
func (s *studentServiceImpl) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	if err := validateID(apperrors.EntityStudent, id); err != nil {
		return nil, err
	}
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntityStudent, id)
	}
	return student, nil
}

// FindByIDs retrieves the existing students among ids
func (s *studentServiceImpl) FindByIDs(ctx context.Context, ids []int64) ([]*models.Student, error) {
	students, err := s.studentRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// ListAll retrieves all students
func (s *studentServiceImpl) ListAll(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// ExistsByID reports whether the student exists
func (s *studentServiceImpl) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.studentRepo.ExistsByID(ctx, id)
}

// CreateNew validates and stores a new student
func (s *studentServiceImpl) CreateNew(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := s.validateStudent(student); err != nil {
		return nil, err
	}
	if student.SemesterID == nil && student.Semester != nil {
		student.SemesterID = &student.Semester.ID
	}
	if err := s.resolveReferences(ctx, student); err != nil {
		return nil, err
	}

	student.ID = 0
	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntityStudent, 0)
	}
	logger.Info().Int64("studentID", created.ID).Msg("Student created")
	return created, nil
}

// Update replaces the stored student with the given data, keeping its ID
func (s *studentServiceImpl) Update(ctx context.Context, id int64, student *models.Student) (*models.Student, error) {
	if err := s.validateStudent(student); err != nil {
		return nil, err
	}
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveReferences(ctx, student); err != nil {
		return nil, err
	}

	updated, err := s.studentRepo.Update(ctx, existing, student)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntityStudent, id)
	}
	logger.Info().Int64("studentID", id).Msg("Student updated")
	return updated, nil
}

// Delete removes the student
func (s *studentServiceImpl) Delete(ctx context.Context, student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	if err := validateID(apperrors.EntityStudent, student.ID); err != nil {
		return err
	}
	if err := s.studentRepo.Delete(ctx, student); err != nil {
		return translateRepoError(err, apperrors.EntityStudent, student.ID)
	}
	logger.Info().Int64("studentID", student.ID).Msg("Student deleted")
	return nil
}

// DeleteByID removes the student with the ID
func (s *studentServiceImpl) DeleteByID(ctx context.Context, id int64) error {
	if err := validateID(apperrors.EntityStudent, id); err != nil {
		return err
	}
	if err := s.studentRepo.DeleteByID(ctx, id); err != nil {
		return translateRepoError(err, apperrors.EntityStudent, id)
	}
	logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}

// AddStudentToCourse enrolls the student in the course
func (s *studentServiceImpl) AddStudentToCourse(ctx context.Context, studentID, courseID int64) (*models.Student, error) {
	student, err := s.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if err := validateID(apperrors.EntityCourse, courseID); err != nil {
		return nil, err
	}
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntityCourse, courseID)
	}

	if student.HasCourse(courseID) {
		return nil, apperrors.NewAlreadyExistsError(
			fmt.Sprintf("Student with ID '%d' is already enrolled in course with ID '%d'.", studentID, courseID))
	}

	if err := s.studentRepo.AppendCourse(ctx, student, course); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error enrolling student")
		return nil, translateRepoError(err, apperrors.EntityStudent, studentID)
	}
	return s.FindByID(ctx, studentID)
}

// AddStudentToSemester moves the student into the semester
func (s *studentServiceImpl) AddStudentToSemester(ctx context.Context, studentID, semesterID int64) (*models.Student, error) {
	student, err := s.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if err := validateID(apperrors.EntitySemester, semesterID); err != nil {
		return nil, err
	}
	semester, err := s.semesterRepo.FindByID(ctx, semesterID)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntitySemester, semesterID)
	}

	if student.SemesterID != nil && *student.SemesterID == semesterID {
		return nil, apperrors.NewAlreadyExistsError(
			fmt.Sprintf("Student with ID '%d' is already assigned to semester with ID '%d'.", studentID, semesterID))
	}

	if err := s.studentRepo.SetSemester(ctx, student, semester); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("semesterID", semesterID).Msg("Error assigning semester")
		return nil, translateRepoError(err, apperrors.EntityStudent, studentID)
	}
	return s.FindByID(ctx, studentID)
}

package services

import (
	"context"
	"fmt"

	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/app/repositories"
	"github.com/yigit/hochschule/internal/pkg/apperrors"
	"github.com/yigit/hochschule/internal/pkg/logger"
)

// SemesterService defines the interface for semester-related operations
type SemesterService interface {
	FindByID(ctx context.Context, id int64) (*models.Semester, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*models.Semester, error)
	ListAll(ctx context.Context) ([]*models.Semester, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	CreateNew(ctx context.Context, semester *models.Semester) (*models.Semester, error)
	Update(ctx context.Context, id int64, semester *models.Semester) (*models.Semester, error)
	Delete(ctx context.Context, semester *models.Semester) error
	DeleteByID(ctx context.Context, id int64) error
	AddCourseToSemester(ctx context.Context, semesterID, courseID int64) (*models.Semester, error)
	AddStudentToSemester(ctx context.Context, semesterID, studentID int64) (*models.Semester, error)
}

// semesterServiceImpl implements the SemesterService interface
type semesterServiceImpl struct {
	semesterRepo *repositories.SemesterRepository
	courseRepo   *repositories.CourseRepository
	studentRepo  *repositories.StudentRepository
}

// NewSemesterService creates a new semester service instance
func NewSemesterService(repos *repositories.Repositories) SemesterService {
	return &semesterServiceImpl{
		semesterRepo: repos.SemesterRepository,
		courseRepo:   repos.CourseRepository,
		studentRepo:  repos.StudentRepository,
	}
}

func (s *semesterServiceImpl) validateSemester(semester *models.Semester) error {
	if semester == nil {
		return fmt.Errorf("%w: semester is nil", apperrors.ErrValidationFailed)
	}
	if err := validateRequired("name", semester.Name, 100); err != nil {
		return err
	}
	return validateDateRange("start date", "end date", semester.StartDate, semester.EndDate)
}

func (s *semesterServiceImpl) resolveReferences(ctx context.Context, semester *models.Semester) error {
	courses, err := resolve(ctx, apperrors.EntityCourse, semester.Courses, s.courseRepo.FindByIDs)
	if err != nil {
		return err
	}
	students, err := resolve(ctx, apperrors.EntityStudent, semester.Students, s.studentRepo.FindByIDs)
	if err != nil {
		return err
	}
	semester.Courses = courses
	semester.Students = students
	return nil
}

// FindByID retrieves a semester by ID
func (s *semesterServiceImpl) FindByID(ctx context.Context, id int64) (*models.Semester, error) {
	if err := validateID(apperrors.EntitySemester, id); err != nil {
		return nil, err
	}
	semester, err := s.semesterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntitySemester, id)
	}
	return semester, nil
}

// FindByIDs retrieves the existing semesters among ids
func (s *semesterServiceImpl) FindByIDs(ctx context.Context, ids []int64) ([]*models.Semester, error) {
	semesters, err := s.semesterRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving semesters: %w", err)
	}
	return semesters, nil
}

// ListAll retrieves all semesters
func (s *semesterServiceImpl) ListAll(ctx context.Context) ([]*models.Semester, error) {
	semesters, err := s.semesterRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving semesters: %w", err)
	}
	return semesters, nil
}

// ExistsByID reports whether the semester exists
func (s *semesterServiceImpl) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.semesterRepo.ExistsByID(ctx, id)
}

// CreateNew validates and stores a new semester
func (s *semesterServiceImpl) CreateNew(ctx context.Context, semester *models.Semester) (*models.Semester, error) {
	if err := s.validateSemester(semester); err != nil {
		return nil, err
	}
	if err := s.resolveReferences(ctx, semester); err != nil {
		return nil, err
	}

	semester.ID = 0
	created, err := s.semesterRepo.Create(ctx, semester)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntitySemester, 0)
	}
	logger.Info().Int64("semesterID", created.ID).Msg("Semester created")
	return created, nil
}

// Update replaces the stored semester with the given data, keeping its ID
func (s *semesterServiceImpl) Update(ctx context.Context, id int64, semester *models.Semester) (*models.Semester, error) {
	if err := s.validateSemester(semester); err != nil {
		return nil, err
	}
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveReferences(ctx, semester); err != nil {
		return nil, err
	}

	updated, err := s.semesterRepo.Update(ctx, existing, semester)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntitySemester, id)
	}
	logger.Info().Int64("semesterID", id).Msg("Semester updated")
	return updated, nil
}

// Delete removes the semester
func (s *semesterServiceImpl) Delete(ctx context.Context, semester *models.Semester) error {
	if semester == nil {
		return fmt.Errorf("%w: semester is nil", apperrors.ErrValidationFailed)
	}
	if err := validateID(apperrors.EntitySemester, semester.ID); err != nil {
		return err
	}
	if err := s.semesterRepo.Delete(ctx, semester); err != nil {
		return translateRepoError(err, apperrors.EntitySemester, semester.ID)
	}
	logger.Info().Int64("semesterID", semester.ID).Msg("Semester deleted")
	return nil
}

// DeleteByID removes the semester with the ID
func (s *semesterServiceImpl) DeleteByID(ctx context.Context, id int64) error {
	if err := validateID(apperrors.EntitySemester, id); err != nil {
		return err
	}
	if err := s.semesterRepo.DeleteByID(ctx, id); err != nil {
		return translateRepoError(err, apperrors.EntitySemester, id)
	}
	logger.Info().Int64("semesterID", id).Msg("Semester deleted")
	return nil
}

// AddCourseToSemester offers the course in the semester
func (s *semesterServiceImpl) AddCourseToSemester(ctx context.Context, semesterID, courseID int64) (*models.Semester, error) {
	semester, err := s.FindByID(ctx, semesterID)
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

	if semester.HasCourse(courseID) {
		return nil, apperrors.NewAlreadyExistsError(
			fmt.Sprintf("Course with ID '%d' is already offered in semester with ID '%d'.", courseID, semesterID))
	}

	if err := s.semesterRepo.AppendCourse(ctx, semester, course); err != nil {
		logger.Error().Err(err).Int64("semesterID", semesterID).Int64("courseID", courseID).Msg("Error adding course to semester")
		return nil, translateRepoError(err, apperrors.EntitySemester, semesterID)
	}
	return s.FindByID(ctx, semesterID)
}

// AddStudentToSemester moves the student into the semester
func (s *semesterServiceImpl) AddStudentToSemester(ctx context.Context, semesterID, studentID int64) (*models.Semester, error) {
	semester, err := s.FindByID(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	if err := validateID(apperrors.EntityStudent, studentID); err != nil {
		return nil, err
	}
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntityStudent, studentID)
	}

	if semester.HasStudent(studentID) {
		return nil, apperrors.NewAlreadyExistsError(
			fmt.Sprintf("Student with ID '%d' is already assigned to semester with ID '%d'.", studentID, semesterID))
	}

	if err := s.semesterRepo.AppendStudent(ctx, semester, student); err != nil {
		logger.Error().Err(err).Int64("semesterID", semesterID).Int64("studentID", studentID).Msg("Error adding student to semester")
		return nil, translateRepoError(err, apperrors.EntitySemester, semesterID)
	}
	return s.FindByID(ctx, semesterID)
}

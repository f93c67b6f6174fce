package services

import (
	"context"
	"fmt"

	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/app/repositories"
	"github.com/yigit/hochschule/internal/pkg/apperrors"
	"github.com/yigit/hochschule/internal/pkg/logger"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*models.Course, error)
	ListAll(ctx context.Context) ([]*models.Course, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	CreateNew(ctx context.Context, course *models.Course) (*models.Course, error)
	Update(ctx context.Context, id int64, course *models.Course) (*models.Course, error)
	Delete(ctx context.Context, course *models.Course) error
	DeleteByID(ctx context.Context, id int64) error
	AddStudentToCourse(ctx context.Context, courseID, studentID int64) (*models.Course, error)
	AddLecturerToCourse(ctx context.Context, courseID, lecturerID int64) (*models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo   *repositories.CourseRepository
	studentRepo  *repositories.StudentRepository
	semesterRepo *repositories.SemesterRepository
	lecturerRepo *repositories.LecturerRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(repos *repositories.Repositories) CourseService {
	return &courseServiceImpl{
		courseRepo:   repos.CourseRepository,
		studentRepo:  repos.StudentRepository,
		semesterRepo: repos.SemesterRepository,
		lecturerRepo: repos.LecturerRepository,
	}
}

// validateCourse validates course data before database operations
func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if err := validateRequired("name", course.Name, 50); err != nil {
		return err
	}
	if err := validateRequired("description", course.Description, 255); err != nil {
		return err
	}
	return validateDateRange("startdate", "enddate", course.Startdate, course.Enddate)
}

// resolveReferences checks the lecturer and replaces students and semesters
// with stored ones. LecturerID decides the lecturer, a Lecturer disagreeing
// with it is dropped.
func (s *courseServiceImpl) resolveReferences(ctx context.Context, course *models.Course) error {
	if !referenceAgrees(course.LecturerID, course.Lecturer) {
		course.Lecturer = nil
	}
	if err := requireExists(ctx, apperrors.EntityLecturer, course.LecturerID, s.lecturerRepo.ExistsByID); err != nil {
		return err
	}

	students, err := resolve(ctx, apperrors.EntityStudent, course.Students, s.studentRepo.FindByIDs)
	if err != nil {
		return err
	}
	semesters, err := resolve(ctx, apperrors.EntitySemester, course.Semesters, s.semesterRepo.FindByIDs)
	if err != nil {
		return err
	}
	course.Students = students
	course.Semesters = semesters
	return nil
}

// FindByID retrieves a course by ID
func (s *courseServiceImpl) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	if err := validateID(apperrors.EntityCourse, id); err != nil {
		return nil, err
	}
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntityCourse, id)
	}
	return course, nil
}

// FindByIDs retrieves the existing courses among ids
func (s *courseServiceImpl) FindByIDs(ctx context.Context, ids []int64) ([]*models.Course, error) {
	courses, err := s.courseRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// ListAll retrieves all courses
func (s *courseServiceImpl) ListAll(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// ExistsByID reports whether the course exists
func (s *courseServiceImpl) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.courseRepo.ExistsByID(ctx, id)
}

// CreateNew validates and stores a new course
func (s *courseServiceImpl) CreateNew(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}
	if course.LecturerID == nil && course.Lecturer != nil {
		course.LecturerID = &course.Lecturer.ID
	}
	if err := s.resolveReferences(ctx, course); err != nil {
		return nil, err
	}

	course.ID = 0
	created, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntityCourse, 0)
	}
	logger.Info().Int64("courseID", created.ID).Msg("Course created")
	return created, nil
}

// Update replaces the stored course with the given data, keeping its ID
func (s *courseServiceImpl) Update(ctx context.Context, id int64, course *models.Course) (*models.Course, error) {
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveReferences(ctx, course); err != nil {
		return nil, err
	}

	updated, err := s.courseRepo.Update(ctx, existing, course)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntityCourse, id)
	}
	logger.Info().Int64("courseID", id).Msg("Course updated")
	return updated, nil
}

// Delete removes the course
func (s *courseServiceImpl) Delete(ctx context.Context, course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if err := validateID(apperrors.EntityCourse, course.ID); err != nil {
		return err
	}
	if err := s.courseRepo.Delete(ctx, course); err != nil {
		return translateRepoError(err, apperrors.EntityCourse, course.ID)
	}
	logger.Info().Int64("courseID", course.ID).Msg("Course deleted")
	return nil
}

// DeleteByID removes the course with the ID
func (s *courseServiceImpl) DeleteByID(ctx context.Context, id int64) error {
	if err := validateID(apperrors.EntityCourse, id); err != nil {
		return err
	}
	if err := s.courseRepo.DeleteByID(ctx, id); err != nil {
		return translateRepoError(err, apperrors.EntityCourse, id)
	}
	logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}

// AddStudentToCourse enrolls the student in the course
func (s *courseServiceImpl) AddStudentToCourse(ctx context.Context, courseID, studentID int64) (*models.Course, error) {
	course, err := s.FindByID(ctx, courseID)
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

	if course.HasStudent(studentID) {
		return nil, apperrors.NewAlreadyExistsError(
			fmt.Sprintf("Student with ID '%d' is already enrolled in course with ID '%d'.", studentID, courseID))
	}

	if err := s.courseRepo.AppendStudent(ctx, course, student); err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Int64("studentID", studentID).Msg("Error enrolling student")
		return nil, translateRepoError(err, apperrors.EntityCourse, courseID)
	}
	return s.FindByID(ctx, courseID)
}

// AddLecturerToCourse makes the lecturer hold the course, replacing a previous one
func (s *courseServiceImpl) AddLecturerToCourse(ctx context.Context, courseID, lecturerID int64) (*models.Course, error) {
	course, err := s.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := validateID(apperrors.EntityLecturer, lecturerID); err != nil {
		return nil, err
	}
	lecturer, err := s.lecturerRepo.FindByID(ctx, lecturerID)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntityLecturer, lecturerID)
	}

	if course.HasLecturer(lecturerID) {
		return nil, apperrors.NewAlreadyExistsError(
			fmt.Sprintf("Lecturer with ID '%d' already holds course with ID '%d'.", lecturerID, courseID))
	}

	if err := s.courseRepo.SetLecturer(ctx, course, lecturer); err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Int64("lecturerID", lecturerID).Msg("Error assigning lecturer")
		return nil, translateRepoError(err, apperrors.EntityCourse, courseID)
	}
	return s.FindByID(ctx, courseID)
}

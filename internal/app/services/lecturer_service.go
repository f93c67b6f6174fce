package services

import (
	"context"
	"fmt"

	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/app/repositories"
	"github.com/yigit/hochschule/internal/pkg/apperrors"
	"github.com/yigit/hochschule/internal/pkg/logger"
)

// LecturerService defines the interface for lecturer-related operations
type LecturerService interface {
	FindByID(ctx context.Context, id int64) (*models.Lecturer, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*models.Lecturer, error)
	ListAll(ctx context.Context) ([]*models.Lecturer, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	CreateNew(ctx context.Context, lecturer *models.Lecturer) (*models.Lecturer, error)
	Update(ctx context.Context, id int64, lecturer *models.Lecturer) (*models.Lecturer, error)
	Delete(ctx context.Context, lecturer *models.Lecturer) error
	DeleteByID(ctx context.Context, id int64) error
	AddLecturerToCourse(ctx context.Context, lecturerID, courseID int64) (*models.Lecturer, error)
}

// lecturerServiceImpl implements the LecturerService interface
type lecturerServiceImpl struct {
	lecturerRepo *repositories.LecturerRepository
	courseRepo   *repositories.CourseRepository
}

// NewLecturerService creates a new lecturer service instance
func NewLecturerService(repos *repositories.Repositories) LecturerService {
	return &lecturerServiceImpl{
		lecturerRepo: repos.LecturerRepository,
		courseRepo:   repos.CourseRepository,
	}
}

func (s *lecturerServiceImpl) validateLecturer(lecturer *models.Lecturer) error {
	if lecturer == nil {
		return fmt.Errorf("%w: lecturer is nil", apperrors.ErrValidationFailed)
	}
	if err := validateRequired("surname", lecturer.Surname, 100); err != nil {
		return err
	}
	if err := validateRequired("name", lecturer.Name, 100); err != nil {
		return err
	}
	if !lecturer.Degree.IsValid() {
		return fmt.Errorf("%w: unknown degree %d", apperrors.ErrValidationFailed, int(lecturer.Degree))
	}
	return nil
}

// FindByID retrieves a lecturer by ID
func (s *lecturerServiceImpl) FindByID(ctx context.Context, id int64) (*models.Lecturer, error) {
	if err := validateID(apperrors.EntityLecturer, id); err != nil {
		return nil, err
	}
	lecturer, err := s.lecturerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntityLecturer, id)
	}
	return lecturer, nil
}

// FindByIDs retrieves the existing lecturers among ids
func (s *lecturerServiceImpl) FindByIDs(ctx context.Context, ids []int64) ([]*models.Lecturer, error) {
	lecturers, err := s.lecturerRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecturers: %w", err)
	}
	return lecturers, nil
}

// ListAll retrieves all lecturers
func (s *lecturerServiceImpl) ListAll(ctx context.Context) ([]*models.Lecturer, error) {
	lecturers, err := s.lecturerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecturers: %w", err)
	}
	return lecturers, nil
}

// ExistsByID reports whether the lecturer exists
func (s *lecturerServiceImpl) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.lecturerRepo.ExistsByID(ctx, id)
}

// CreateNew validates and stores a new lecturer
func (s *lecturerServiceImpl) CreateNew(ctx context.Context, lecturer *models.Lecturer) (*models.Lecturer, error) {
	if err := s.validateLecturer(lecturer); err != nil {
		return nil, err
	}
	courses, err := resolve(ctx, apperrors.EntityCourse, lecturer.Courses, s.courseRepo.FindByIDs)
	if err != nil {
		return nil, err
	}
	lecturer.Courses = courses

	lecturer.ID = 0
	created, err := s.lecturerRepo.Create(ctx, lecturer)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntityLecturer, 0)
	}
	logger.Info().Int64("lecturerID", created.ID).Msg("Lecturer created")
	return created, nil
}

// Update replaces the stored lecturer with the given data, keeping its ID
func (s *lecturerServiceImpl) Update(ctx context.Context, id int64, lecturer *models.Lecturer) (*models.Lecturer, error) {
	if err := s.validateLecturer(lecturer); err != nil {
		return nil, err
	}
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	courses, err := resolve(ctx, apperrors.EntityCourse, lecturer.Courses, s.courseRepo.FindByIDs)
	if err != nil {
		return nil, err
	}
	lecturer.Courses = courses

	updated, err := s.lecturerRepo.Update(ctx, existing, lecturer)
	if err != nil {
		return nil, translateRepoError(err, apperrors.EntityLecturer, id)
	}
	logger.Info().Int64("lecturerID", id).Msg("Lecturer updated")
	return updated, nil
}

// Delete removes the lecturer
func (s *lecturerServiceImpl) Delete(ctx context.Context, lecturer *models.Lecturer) error {
	if lecturer == nil {
		return fmt.Errorf("%w: lecturer is nil", apperrors.ErrValidationFailed)
	}
	if err := validateID(apperrors.EntityLecturer, lecturer.ID); err != nil {
		return err
	}
	if err := s.lecturerRepo.Delete(ctx, lecturer); err != nil {
		return translateRepoError(err, apperrors.EntityLecturer, lecturer.ID)
	}
	logger.Info().Int64("lecturerID", lecturer.ID).Msg("Lecturer deleted")
	return nil
}

// DeleteByID removes the lecturer with the ID
func (s *lecturerServiceImpl) DeleteByID(ctx context.Context, id int64) error {
	if err := validateID(apperrors.EntityLecturer, id); err != nil {
		return err
	}
	if err := s.lecturerRepo.DeleteByID(ctx, id); err != nil {
		return translateRepoError(err, apperrors.EntityLecturer, id)
	}
	logger.Info().Int64("lecturerID", id).Msg("Lecturer deleted")
	return nil
}

// AddLecturerToCourse makes the lecturer hold the course
func (s *lecturerServiceImpl) AddLecturerToCourse(ctx context.Context, lecturerID, courseID int64) (*models.Lecturer, error) {
	lecturer, err := s.FindByID(ctx, lecturerID)
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

	if lecturer.HasCourse(courseID) {
		return nil, apperrors.NewAlreadyExistsError(
			fmt.Sprintf("Lecturer with ID '%d' already holds course with ID '%d'.", lecturerID, courseID))
	}

	if err := s.lecturerRepo.AppendCourse(ctx, lecturer, course); err != nil {
		logger.Error().Err(err).Int64("lecturerID", lecturerID).Int64("courseID", courseID).Msg("Error assigning course")
		return nil, translateRepoError(err, apperrors.EntityLecturer, lecturerID)
	}
	return s.FindByID(ctx, lecturerID)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/app/repositories"
	"github.com/yigit/hochschule/internal/pkg/apperrors"
	"github.com/yigit/hochschule/internal/pkg/helpers"
)

// Services defined in this package:
// - StudentService: students, their course enrollments and semester
// - CourseService: courses, enrolled students and the holding lecturer
// - SemesterService: semesters, offered courses and assigned students
// - LecturerService: lecturers and the courses they hold

// Services holds all the service instances
type Services struct {
	StudentService  StudentService
	CourseService   CourseService
	SemesterService SemesterService
	LecturerService LecturerService
}

// NewServices wires every service onto the given repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		StudentService:  NewStudentService(repos),
		CourseService:   NewCourseService(repos),
		SemesterService: NewSemesterService(repos),
		LecturerService: NewLecturerService(repos),
	}
}

// translateRepoError maps repository errors onto application errors for the entity with id
func translateRepoError(err error, entity string, id int64) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.NewNotFoundError(entity, id)
	case errors.Is(err, repositories.ErrAlreadyExists):
		return apperrors.NewAlreadyExistsError(fmt.Sprintf("%s already exists.", entity))
	case errors.Is(err, repositories.ErrInvalidReference):
		return apperrors.NewValidationError(fmt.Sprintf("%s references a record that does not exist.", entity))
	default:
		return fmt.Errorf("error processing %s: %w", strings.ToLower(entity), err)
	}
}

func validateID(entity string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid %s ID %d", apperrors.ErrValidationFailed, strings.ToLower(entity), id)
	}
	return nil
}

func validateRequired(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s cannot be empty", apperrors.ErrValidationFailed, field)
	}
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		return fmt.Errorf("%w: %s must be at most %d characters", apperrors.ErrValidationFailed, field, maxLen)
	}
	return nil
}

func validateDateRange(startField, endField string, start, end *time.Time) error {
	if !helpers.DateRangeValid(start, end) {
		return fmt.Errorf("%w: %s must not be before %s", apperrors.ErrValidationFailed, endField, startField)
	}
	return nil
}

// referenceAgrees reports whether a loaded reference matches its foreign key
func referenceAgrees[T models.Identifiable](id *int64, ref T) bool {
	if lo.IsNil(ref) {
		return true
	}
	return id != nil && *id == ref.GetID()
}

// resolve loads the entities referenced by items, failing with a not-found
// error naming the first ID that does not exist
func resolve[T models.Identifiable](ctx context.Context, entity string, items []T, find func(context.Context, []int64) ([]T, error)) ([]T, error) {
	ids := lo.Uniq(models.IDs(items))
	found, err := find(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error loading %s references: %w", strings.ToLower(entity), err)
	}
	if missing := lo.Without(ids, models.IDs(found)...); len(missing) > 0 {
		return nil, apperrors.NewNotFoundError(entity, missing[0])
	}
	return found, nil
}

// requireExists fails with a not-found error when the optional reference points nowhere
func requireExists(ctx context.Context, entity string, id *int64, exists func(context.Context, int64) (bool, error)) error {
	if id == nil {
		return nil
	}
	ok, err := exists(ctx, *id)
	if err != nil {
		return fmt.Errorf("error checking %s: %w", strings.ToLower(entity), err)
	}
	if !ok {
		return apperrors.NewNotFoundError(entity, *id)
	}
	return nil
}

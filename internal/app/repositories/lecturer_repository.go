package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/db"
	"github.com/yigit/hochschule/internal/pkg/logger"
	"gorm.io/gorm"
)

// LecturerRepository handles lecturer database operations
type LecturerRepository struct {
	db *gorm.DB
}

// NewLecturerRepository creates a new LecturerRepository
func NewLecturerRepository(db *gorm.DB) *LecturerRepository {
	return &LecturerRepository{db: db}
}

func (r *LecturerRepository) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Courses", orderByID)
}

// FindByID loads a lecturer with the courses they hold
func (r *LecturerRepository) FindByID(ctx context.Context, id int64) (*models.Lecturer, error) {
	var lecturer models.Lecturer
	if err := r.preload(r.db.WithContext(ctx)).First(&lecturer, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &lecturer, nil
}

// FindByIDs returns the lecturers whose ID is in ids, ordered by ID
func (r *LecturerRepository) FindByIDs(ctx context.Context, ids []int64) ([]*models.Lecturer, error) {
	lecturers := []*models.Lecturer{}
	if len(ids) == 0 {
		return lecturers, nil
	}
	if err := r.preload(r.db.WithContext(ctx)).Where("id IN ?", ids).Order("id").Find(&lecturers).Error; err != nil {
		return nil, translateError(err)
	}
	return lecturers, nil
}

// ListAll returns every lecturer ordered by ID
func (r *LecturerRepository) ListAll(ctx context.Context) ([]*models.Lecturer, error) {
	lecturers := []*models.Lecturer{}
	if err := r.preload(r.db.WithContext(ctx)).Order("id").Find(&lecturers).Error; err != nil {
		logger.Error().Err(err).Msg("Error listing lecturers")
		return nil, translateError(err)
	}
	return lecturers, nil
}

// ExistsByID reports whether a lecturer with the ID exists
func (r *LecturerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, &models.Lecturer{}, id)
}

// Create inserts the lecturer and assigns the given courses to them
func (r *LecturerRepository) Create(ctx context.Context, lecturer *models.Lecturer) (*models.Lecturer, error) {
	courses := lecturer.Courses
	err := db.WithTransaction(ctx, r.db, func(_ context.Context, tx *gorm.DB) error {
		if err := tx.Omit("Courses").Create(lecturer).Error; err != nil {
			return translateError(err)
		}
		return syncHasMany(tx, &models.Course{}, "lecturer_id", lecturer.ID, nil, courses)
	})
	if err != nil {
		logger.Error().Err(err).Str("surname", lecturer.Surname).Msg("Error creating lecturer")
		return nil, err
	}
	return r.FindByID(ctx, lecturer.ID)
}

// Update copies the fields of updated onto existing and applies the course
// assignment difference in one transaction
func (r *LecturerRepository) Update(ctx context.Context, existing, updated *models.Lecturer) (*models.Lecturer, error) {
	err := db.WithTransaction(ctx, r.db, func(_ context.Context, tx *gorm.DB) error {
		existing.Surname = updated.Surname
		existing.Name = updated.Name
		existing.Address = updated.Address
		existing.Birthdate = updated.Birthdate
		existing.Degree = updated.Degree

		if err := persist(tx, existing); err != nil {
			return err
		}
		return syncHasMany(tx, &models.Course{}, "lecturer_id", existing.ID, existing.Courses, updated.Courses)
	})
	if err != nil {
		logger.Error().Err(err).Int64("lecturerID", existing.ID).Msg("Error updating lecturer")
		return nil, fmt.Errorf("failed to update lecturer: %w", err)
	}
	return r.FindByID(ctx, existing.ID)
}

// AppendCourse makes the lecturer hold a course, replacing its previous lecturer
func (r *LecturerRepository) AppendCourse(ctx context.Context, lecturer *models.Lecturer, course *models.Course) error {
	previousID, previous := course.LecturerID, course.Lecturer
	course.LecturerID, course.Lecturer = &lecturer.ID, lecturer
	if err := persist(r.db.WithContext(ctx), course); err != nil {
		course.LecturerID, course.Lecturer = previousID, previous
		return err
	}
	lecturer.Courses = append(lecturer.Courses, course)
	return nil
}

// Delete removes the lecturer and unassigns their courses
func (r *LecturerRepository) Delete(ctx context.Context, lecturer *models.Lecturer) error {
	return r.DeleteByID(ctx, lecturer.ID)
}

// DeleteByID removes the lecturer with the ID and unassigns their courses
func (r *LecturerRepository) DeleteByID(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx *gorm.DB) error {
		if err := detachAll(tx, &models.Course{}, "lecturer_id", id); err != nil {
			return err
		}
		return deleteByID(tx, &models.Lecturer{}, id)
	})
}

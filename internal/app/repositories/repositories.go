package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/pkg/dberrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Shared repository errors
var (
	// ErrNotFound is returned when a row does not exist
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when a row or link violates a unique constraint
	ErrAlreadyExists = errors.New("record already exists")
	// ErrInvalidReference is returned when a link points at a row that does not exist
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository  *StudentRepository
	CourseRepository   *CourseRepository
	SemesterRepository *SemesterRepository
	LecturerRepository *LecturerRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		StudentRepository:  NewStudentRepository(db),
		CourseRepository:   NewCourseRepository(db),
		SemesterRepository: NewSemesterRepository(db),
		LecturerRepository: NewLecturerRepository(db),
	}
}

// translateError maps driver and gorm errors onto the repository errors
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberrors.IsNotFoundError(err):
		return ErrNotFound
	case dberrors.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	case dberrors.IsForeignKeyError(err):
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	default:
		return err
	}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func entityID[T models.Identifiable](e T) int64 {
	return e.GetID()
}

// diffByID compares two memberships by ID. toAdd holds the entities of next
// missing from current, toRemove the entities of current missing from next.
// Repeated IDs in next are reported once.
func diffByID[T models.Identifiable](current, next []T) (toAdd, toRemove []T) {
	next = lo.UniqBy(next, entityID[T])
	removedIDs, addedIDs := lo.Difference(models.IDs(current), models.IDs(next))

	toAdd = lo.Filter(next, func(e T, _ int) bool { return lo.Contains(addedIDs, e.GetID()) })
	toRemove = lo.Filter(current, func(e T, _ int) bool { return lo.Contains(removedIDs, e.GetID()) })
	return toAdd, toRemove
}

// persist saves the columns of a loaded entity without touching its associations
func persist(tx *gorm.DB, entity interface{}) error {
	return translateError(tx.Omit(clause.Associations).Save(entity).Error)
}

// existsByID counts rows of model with the given primary key
func existsByID(ctx context.Context, db *gorm.DB, model interface{}, id int64) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count == 1, nil
}

// syncMany2Many removes the join rows missing from next and adds the ones
// missing from current. Associated rows themselves are never written.
func syncMany2Many[T models.Identifiable](tx *gorm.DB, owner interface{}, association string, current, next []T) error {
	toAdd, toRemove := diffByID(current, next)

	if len(toRemove) > 0 {
		if err := tx.Model(owner).Association(association).Delete(toRemove); err != nil {
			return fmt.Errorf("failed to unlink %s: %w", association, translateError(err))
		}
	}
	if len(toAdd) > 0 {
		if err := tx.Model(owner).Omit(association + ".*").Association(association).Append(toAdd); err != nil {
			return fmt.Errorf("failed to link %s: %w", association, translateError(err))
		}
	}
	return nil
}

// syncHasMany points the foreign key of added children at ownerID and clears
// it on removed children that still point at the owner
func syncHasMany[T models.Identifiable](tx *gorm.DB, model interface{}, foreignKey string, ownerID int64, current, next []T) error {
	toAdd, toRemove := diffByID(current, next)

	if len(toRemove) > 0 {
		err := tx.Model(model).
			Where("id IN ? AND "+foreignKey+" = ?", models.IDs(toRemove), ownerID).
			Update(foreignKey, nil).Error
		if err != nil {
			return fmt.Errorf("failed to detach %s: %w", foreignKey, translateError(err))
		}
	}
	if len(toAdd) > 0 {
		err := tx.Model(model).Where("id IN ?", models.IDs(toAdd)).Update(foreignKey, ownerID).Error
		if err != nil {
			return fmt.Errorf("failed to attach %s: %w", foreignKey, translateError(err))
		}
	}
	return nil
}

// detachAll clears the foreign key on every row of model pointing at ownerID
func detachAll(tx *gorm.DB, model interface{}, foreignKey string, ownerID int64) error {
	err := tx.Model(model).Where(foreignKey+" = ?", ownerID).Update(foreignKey, nil).Error
	if err != nil {
		return fmt.Errorf("failed to detach %s: %w", foreignKey, translateError(err))
	}
	return nil
}

// deleteByID removes a row, ErrNotFound when nothing was deleted
func deleteByID(tx *gorm.DB, model interface{}, id int64) error {
	result := tx.Delete(model, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

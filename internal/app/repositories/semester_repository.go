package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/db"
	"github.com/yigit/hochschule/internal/pkg/logger"
	"gorm.io/gorm"
)

// SemesterRepository handles semester database operations
type SemesterRepository struct {
	db *gorm.DB
}

// NewSemesterRepository creates a new SemesterRepository
func NewSemesterRepository(db *gorm.DB) *SemesterRepository {
	return &SemesterRepository{db: db}
}

func (r *SemesterRepository) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Courses", orderByID).Preload("Students", orderByID)
}

// FindByID loads a semester with its courses and students
func (r *SemesterRepository) FindByID(ctx context.Context, id int64) (*models.Semester, error) {
	var semester models.Semester
	if err := r.preload(r.db.WithContext(ctx)).First(&semester, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &semester, nil
}

// FindByIDs returns the semesters whose ID is in ids, ordered by ID
func (r *SemesterRepository) FindByIDs(ctx context.Context, ids []int64) ([]*models.Semester, error) {
	semesters := []*models.Semester{}
	if len(ids) == 0 {
		return semesters, nil
	}
	if err := r.preload(r.db.WithContext(ctx)).Where("id IN ?", ids).Order("id").Find(&semesters).Error; err != nil {
		return nil, translateError(err)
	}
	return semesters, nil
}

// ListAll returns every semester ordered by ID
func (r *SemesterRepository) ListAll(ctx context.Context) ([]*models.Semester, error) {
	semesters := []*models.Semester{}
	if err := r.preload(r.db.WithContext(ctx)).Order("id").Find(&semesters).Error; err != nil {
		logger.Error().Err(err).Msg("Error listing semesters")
		return nil, translateError(err)
	}
	return semesters, nil
}

// ExistsByID reports whether a semester with the ID exists
func (r *SemesterRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, &models.Semester{}, id)
}

// Create inserts the semester, links its courses and moves its students into it
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) (*models.Semester, error) {
	students := semester.Students
	err := db.WithTransaction(ctx, r.db, func(_ context.Context, tx *gorm.DB) error {
		if err := tx.Omit("Courses.*", "Students").Create(semester).Error; err != nil {
			return translateError(err)
		}
		return syncHasMany(tx, &models.Student{}, "semester_id", semester.ID, nil, students)
	})
	if err != nil {
		logger.Error().Err(err).Str("name", semester.Name).Msg("Error creating semester")
		return nil, err
	}
	return r.FindByID(ctx, semester.ID)
}

// Update copies the fields of updated onto existing and applies the course
// and student membership differences in one transaction
func (r *SemesterRepository) Update(ctx context.Context, existing, updated *models.Semester) (*models.Semester, error) {
	err := db.WithTransaction(ctx, r.db, func(_ context.Context, tx *gorm.DB) error {
		existing.Name = updated.Name
		existing.StartDate = updated.StartDate
		existing.EndDate = updated.EndDate

		if err := persist(tx, existing); err != nil {
			return err
		}
		if err := syncMany2Many(tx, existing, "Courses", existing.Courses, updated.Courses); err != nil {
			return err
		}
		return syncHasMany(tx, &models.Student{}, "semester_id", existing.ID, existing.Students, updated.Students)
	})
	if err != nil {
		logger.Error().Err(err).Int64("semesterID", existing.ID).Msg("Error updating semester")
		return nil, fmt.Errorf("failed to update semester: %w", err)
	}
	return r.FindByID(ctx, existing.ID)
}

// AppendCourse offers a course in the semester
func (r *SemesterRepository) AppendCourse(ctx context.Context, semester *models.Semester, course *models.Course) error {
	owner := &models.Semester{ID: semester.ID}
	if err := r.db.WithContext(ctx).Model(owner).Omit("Courses.*").Association("Courses").Append(course); err != nil {
		return translateError(err)
	}
	semester.Courses = append(semester.Courses, course)
	return nil
}

// AppendStudent moves a student into the semester
func (r *SemesterRepository) AppendStudent(ctx context.Context, semester *models.Semester, student *models.Student) error {
	previousID, previous := student.SemesterID, student.Semester
	student.SemesterID, student.Semester = &semester.ID, semester
	if err := persist(r.db.WithContext(ctx), student); err != nil {
		student.SemesterID, student.Semester = previousID, previous
		return err
	}
	semester.Students = append(semester.Students, student)
	return nil
}

// Delete removes the semester, its course links and detaches its students
func (r *SemesterRepository) Delete(ctx context.Context, semester *models.Semester) error {
	return r.DeleteByID(ctx, semester.ID)
}

// DeleteByID removes the semester with the ID, its course links and detaches its students
func (r *SemesterRepository) DeleteByID(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx *gorm.DB) error {
		if err := tx.Model(&models.Semester{ID: id}).Association("Courses").Clear(); err != nil {
			return translateError(err)
		}
		if err := detachAll(tx, &models.Student{}, "semester_id", id); err != nil {
			return err
		}
		return deleteByID(tx, &models.Semester{}, id)
	})
}

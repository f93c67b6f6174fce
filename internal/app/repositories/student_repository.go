package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/db"
	"github.com/yigit/hochschule/internal/pkg/logger"
	"gorm.io/gorm"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Semester").Preload("Courses", orderByID)
}

// FindByID loads a student with semester and courses
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	if err := r.preload(r.db.WithContext(ctx)).First(&student, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &student, nil
}

// FindByIDs returns the students whose ID is in ids, ordered by ID
func (r *StudentRepository) FindByIDs(ctx context.Context, ids []int64) ([]*models.Student, error) {
	students := []*models.Student{}
	if len(ids) == 0 {
		return students, nil
	}
	if err := r.preload(r.db.WithContext(ctx)).Where("id IN ?", ids).Order("id").Find(&students).Error; err != nil {
		return nil, translateError(err)
	}
	return students, nil
}

// ListAll returns every student ordered by ID
func (r *StudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	students := []*models.Student{}
	if err := r.preload(r.db.WithContext(ctx)).Order("id").Find(&students).Error; err != nil {
		logger.Error().Err(err).Msg("Error listing students")
		return nil, translateError(err)
	}
	return students, nil
}

// ExistsByID reports whether a student with the ID exists
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, &models.Student{}, id)
}

// Create inserts the student and its course links. A loaded Semester only
// fills in a missing SemesterID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student.SemesterID == nil && student.Semester != nil {
		student.SemesterID = &student.Semester.ID
	}

	err := r.db.WithContext(ctx).Omit("Semester", "Courses.*").Create(student).Error
	if err != nil {
		logger.Error().Err(err).Str("surname", student.Surname).Msg("Error creating student")
		return nil, translateError(err)
	}
	return r.FindByID(ctx, student.ID)
}

// Update copies the fields of updated onto existing and applies the course
// membership difference in one transaction. updated.SemesterID decides the
// semester, a nil ID clears it.
func (r *StudentRepository) Update(ctx context.Context, existing, updated *models.Student) (*models.Student, error) {
	err := db.WithTransaction(ctx, r.db, func(_ context.Context, tx *gorm.DB) error {
		existing.Surname = updated.Surname
		existing.Name = updated.Name
		existing.Address = updated.Address
		existing.Birthdate = updated.Birthdate
		existing.SemesterID = updated.SemesterID
		existing.Semester = nil

		if err := persist(tx, existing); err != nil {
			return err
		}
		return syncMany2Many(tx, existing, "Courses", existing.Courses, updated.Courses)
	})
	if err != nil {
		logger.Error().Err(err).Int64("studentID", existing.ID).Msg("Error updating student")
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return r.FindByID(ctx, existing.ID)
}

// Persist saves the scalar fields and the semester reference of a loaded student
func (r *StudentRepository) Persist(ctx context.Context, student *models.Student) error {
	return persist(r.db.WithContext(ctx), student)
}

// AppendCourse links a course to the student
func (r *StudentRepository) AppendCourse(ctx context.Context, student *models.Student, course *models.Course) error {
	owner := &models.Student{ID: student.ID}
	if err := r.db.WithContext(ctx).Model(owner).Omit("Courses.*").Association("Courses").Append(course); err != nil {
		return translateError(err)
	}
	student.Courses = append(student.Courses, course)
	return nil
}

// SetSemester moves the student to semester, nil clears it
func (r *StudentRepository) SetSemester(ctx context.Context, student *models.Student, semester *models.Semester) error {
	previousID, previous := student.SemesterID, student.Semester
	student.SemesterID, student.Semester = nil, semester
	if semester != nil {
		student.SemesterID = &semester.ID
	}
	if err := r.Persist(ctx, student); err != nil {
		student.SemesterID, student.Semester = previousID, previous
		return err
	}
	return nil
}

// Delete removes the student and its course links
func (r *StudentRepository) Delete(ctx context.Context, student *models.Student) error {
	return r.DeleteByID(ctx, student.ID)
}

// DeleteByID removes the student with the ID and its course links
func (r *StudentRepository) DeleteByID(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx *gorm.DB) error {
		if err := tx.Model(&models.Student{ID: id}).Association("Courses").Clear(); err != nil {
			return translateError(err)
		}
		return deleteByID(tx, &models.Student{}, id)
	})
}

package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/db"
	"github.com/yigit/hochschule/internal/pkg/logger"
	"gorm.io/gorm"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Lecturer").
		Preload("Students", orderByID).
		Preload("Semesters", orderByID)
}

// FindByID loads a course with lecturer, students and semesters
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	if err := r.preload(r.db.WithContext(ctx)).First(&course, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &course, nil
}

// FindByIDs returns the courses whose ID is in ids, ordered by ID
func (r *CourseRepository) FindByIDs(ctx context.Context, ids []int64) ([]*models.Course, error) {
	courses := []*models.Course{}
	if len(ids) == 0 {
		return courses, nil
	}
	if err := r.preload(r.db.WithContext(ctx)).Where("id IN ?", ids).Order("id").Find(&courses).Error; err != nil {
		return nil, translateError(err)
	}
	return courses, nil
}

// ListAll returns every course ordered by ID
func (r *CourseRepository) ListAll(ctx context.Context) ([]*models.Course, error) {
	courses := []*models.Course{}
	if err := r.preload(r.db.WithContext(ctx)).Order("id").Find(&courses).Error; err != nil {
		logger.Error().Err(err).Msg("Error listing courses")
		return nil, translateError(err)
	}
	return courses, nil
}

// ExistsByID reports whether a course with the ID exists
func (r *CourseRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, &models.Course{}, id)
}

// Create inserts the course together with its student and semester links.
// A loaded Lecturer only fills in a missing LecturerID.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course.LecturerID == nil && course.Lecturer != nil {
		course.LecturerID = &course.Lecturer.ID
	}

	err := r.db.WithContext(ctx).Omit("Lecturer", "Students.*", "Semesters.*").Create(course).Error
	if err != nil {
		logger.Error().Err(err).Str("name", course.Name).Msg("Error creating course")
		return nil, translateError(err)
	}
	return r.FindByID(ctx, course.ID)
}

// Update copies the fields of updated onto existing and applies the student
// and semester membership differences in one transaction. updated.LecturerID
// decides the lecturer, a nil ID clears it.
func (r *CourseRepository) Update(ctx context.Context, existing, updated *models.Course) (*models.Course, error) {
	err := db.WithTransaction(ctx, r.db, func(_ context.Context, tx *gorm.DB) error {
		existing.Name = updated.Name
		existing.Description = updated.Description
		existing.Startdate = updated.Startdate
		existing.Enddate = updated.Enddate
		existing.LecturerID = updated.LecturerID
		existing.Lecturer = nil

		if err := persist(tx, existing); err != nil {
			return err
		}
		if err := syncMany2Many(tx, existing, "Students", existing.Students, updated.Students); err != nil {
			return err
		}
		return syncMany2Many(tx, existing, "Semesters", existing.Semesters, updated.Semesters)
	})
	if err != nil {
		logger.Error().Err(err).Int64("courseID", existing.ID).Msg("Error updating course")
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	return r.FindByID(ctx, existing.ID)
}

// Persist saves the scalar fields and the lecturer reference of a loaded course
func (r *CourseRepository) Persist(ctx context.Context, course *models.Course) error {
	return persist(r.db.WithContext(ctx), course)
}

// AppendStudent enrolls a student in the course
func (r *CourseRepository) AppendStudent(ctx context.Context, course *models.Course, student *models.Student) error {
	owner := &models.Course{ID: course.ID}
	if err := r.db.WithContext(ctx).Model(owner).Omit("Students.*").Association("Students").Append(student); err != nil {
		return translateError(err)
	}
	course.Students = append(course.Students, student)
	return nil
}

// AppendSemester offers the course in a semester
func (r *CourseRepository) AppendSemester(ctx context.Context, course *models.Course, semester *models.Semester) error {
	owner := &models.Course{ID: course.ID}
	if err := r.db.WithContext(ctx).Model(owner).Omit("Semesters.*").Association("Semesters").Append(semester); err != nil {
		return translateError(err)
	}
	course.Semesters = append(course.Semesters, semester)
	return nil
}

// SetLecturer assigns the lecturer holding the course, nil clears it
func (r *CourseRepository) SetLecturer(ctx context.Context, course *models.Course, lecturer *models.Lecturer) error {
	previousID, previous := course.LecturerID, course.Lecturer
	course.LecturerID, course.Lecturer = nil, lecturer
	if lecturer != nil {
		course.LecturerID = &lecturer.ID
	}
	if err := r.Persist(ctx, course); err != nil {
		course.LecturerID, course.Lecturer = previousID, previous
		return err
	}
	return nil
}

// Delete removes the course and its student and semester links
func (r *CourseRepository) Delete(ctx context.Context, course *models.Course) error {
	return r.DeleteByID(ctx, course.ID)
}

// DeleteByID removes the course with the ID and its links
func (r *CourseRepository) DeleteByID(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx *gorm.DB) error {
		owner := &models.Course{ID: id}
		if err := tx.Model(owner).Association("Students").Clear(); err != nil {
			return translateError(err)
		}
		if err := tx.Model(owner).Association("Semesters").Clear(); err != nil {
			return translateError(err)
		}
		return deleteByID(tx, &models.Course{}, id)
	})
}

package models

import (
	"fmt"
	"time"
)

// Course represents a course held by a lecturer in one or more semesters.
type Course struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"name" gorm:"size:50;not null"`
	Description string     `json:"description" gorm:"size:255;not null"`
	LecturerID  *int64     `json:"lecturerId,omitempty" gorm:"index"`
	Startdate   *time.Time `json:"startdate,omitempty" gorm:"type:date"`
	Enddate     *time.Time `json:"enddate,omitempty" gorm:"type:date"`

	// Relations (populated when needed)
	Lecturer  *Lecturer   `json:"lecturer,omitempty" gorm:"foreignKey:LecturerID;constraint:OnDelete:SET NULL;"`
	Students  []*Student  `json:"students,omitempty" gorm:"many2many:student_courses;"`
	Semesters []*Semester `json:"semesters,omitempty" gorm:"many2many:course_semesters;"`
}

// GetID implements Identifiable
func (c *Course) GetID() int64 { return c.ID }

// Clone returns a shallow copy with independent student and semester slices
func (c *Course) Clone() *Course {
	clone := *c
	clone.Students = append([]*Student(nil), c.Students...)
	clone.Semesters = append([]*Semester(nil), c.Semesters...)
	return &clone
}

// HasStudent reports whether the student with the given ID attends the course
func (c *Course) HasStudent(studentID int64) bool {
	for _, s := range c.Students {
		if s.ID == studentID {
			return true
		}
	}
	return false
}

// HasLecturer reports whether the course is held by the lecturer with the given ID
func (c *Course) HasLecturer(lecturerID int64) bool {
	return c.LecturerID != nil && *c.LecturerID == lecturerID
}

func (c *Course) String() string {
	lecturer := "N/A"
	if c.Lecturer != nil {
		lecturer = c.Lecturer.ShortString()
	}
	return fmt.Sprintf("Course: Id=%d, Name=%s, Description=%s, Lecturer=%s, Startdate=%s, Enddate=%s",
		c.ID, c.Name, c.Description, lecturer, formatDate(c.Startdate), formatDate(c.Enddate))
}

// ShortString returns a compact one-line description
func (c *Course) ShortString() string {
	return fmt.Sprintf("Course: Id=%d, Name=%s", c.ID, c.Name)
}

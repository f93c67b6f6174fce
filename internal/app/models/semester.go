package models

import (
	"fmt"
	"time"
)

// Semester represents a teaching period
type Semester struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" gorm:"size:100;not null"`
	StartDate *time.Time `json:"startDate,omitempty" gorm:"type:date"`
	EndDate   *time.Time `json:"endDate,omitempty" gorm:"type:date"`

	Courses  []*Course  `json:"courses,omitempty" gorm:"many2many:course_semesters;"`
	Students []*Student `json:"students,omitempty" gorm:"foreignKey:SemesterID;constraint:OnDelete:SET NULL;"`
}

// GetID implements Identifiable
func (s *Semester) GetID() int64 { return s.ID }

// Clone returns a shallow copy with independent course and student slices
func (s *Semester) Clone() *Semester {
	clone := *s
	clone.Courses = append([]*Course(nil), s.Courses...)
	clone.Students = append([]*Student(nil), s.Students...)
	return &clone
}

// HasCourse reports whether the course with the given ID is offered in the semester
func (s *Semester) HasCourse(courseID int64) bool {
	for _, c := range s.Courses {
		if c.ID == courseID {
			return true
		}
	}
	return false
}

// HasStudent reports whether the student with the given ID belongs to the semester
func (s *Semester) HasStudent(studentID int64) bool {
	for _, st := range s.Students {
		if st.ID == studentID {
			return true
		}
	}
	return false
}

func (s *Semester) String() string {
	return fmt.Sprintf("Semester: Id=%d, Name=%s, StartDate=%s, EndDate=%s",
		s.ID, s.Name, formatDate(s.StartDate), formatDate(s.EndDate))
}

// ShortString returns a compact one-line description
func (s *Semester) ShortString() string {
	return fmt.Sprintf("Semester: Id=%d, Name=%s", s.ID, s.Name)
}

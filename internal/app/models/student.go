package models

import (
	"fmt"
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64      `json:"id" gorm:"primaryKey;autoIncrement" example:"1"`
	Surname    string     `json:"surname" gorm:"size:100;not null" example:"Mustermann"`
	Name       string     `json:"name" gorm:"size:100;not null" example:"Max"`
	Address    string     `json:"address" gorm:"size:255"`
	Birthdate  *time.Time `json:"birthdate,omitempty" gorm:"type:date"`
	SemesterID *int64     `json:"semesterId,omitempty" gorm:"index"`

	// Relations (populated when needed)
	Semester *Semester `json:"semester,omitempty" gorm:"foreignKey:SemesterID;constraint:OnDelete:SET NULL;"`
	Courses  []*Course `json:"courses,omitempty" gorm:"many2many:student_courses;"`
}

// GetID implements Identifiable
func (s *Student) GetID() int64 { return s.ID }

// Clone returns a shallow copy whose course slice can be edited independently
func (s *Student) Clone() *Student {
	clone := *s
	clone.Courses = append([]*Course(nil), s.Courses...)
	return &clone
}

// HasCourse reports whether the student is enrolled in the course with the given ID
func (s *Student) HasCourse(courseID int64) bool {
	for _, c := range s.Courses {
		if c.ID == courseID {
			return true
		}
	}
	return false
}

func (s *Student) String() string {
	semester := "N/A"
	if s.Semester != nil {
		semester = s.Semester.ShortString()
	}
	return fmt.Sprintf("Student: Id=%d, Surname=%s, Name=%s, Address=%s, Birthdate=%s, %s",
		s.ID, s.Surname, s.Name, s.Address, formatDate(s.Birthdate), semester)
}

// ShortString returns a compact one-line description
func (s *Student) ShortString() string {
	return fmt.Sprintf("Student: Id=%d, Surname=%s, Name=%s", s.ID, s.Surname, s.Name)
}

package models

import (
	"fmt"
	"time"
)

// Lecturer represents a member of the teaching staff
type Lecturer struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Surname   string     `json:"surname" gorm:"size:100;not null"`
	Name      string     `json:"name" gorm:"size:100;not null"`
	Address   string     `json:"address" gorm:"size:255"`
	Birthdate *time.Time `json:"birthdate,omitempty" gorm:"type:date"`
	Degree    Degree     `json:"degree" gorm:"not null;default:0"`

	Courses []*Course `json:"courses,omitempty" gorm:"foreignKey:LecturerID;constraint:OnDelete:SET NULL;"`
}

// GetID implements Identifiable
func (l *Lecturer) GetID() int64 { return l.ID }

// Clone returns a shallow copy with an independent course slice
func (l *Lecturer) Clone() *Lecturer {
	clone := *l
	clone.Courses = append([]*Course(nil), l.Courses...)
	return &clone
}

// HasCourse reports whether the lecturer holds the course with the given ID
func (l *Lecturer) HasCourse(courseID int64) bool {
	for _, c := range l.Courses {
		if c.ID == courseID {
			return true
		}
	}
	return false
}

func (l *Lecturer) String() string {
	return fmt.Sprintf("Lecturer: Id=%d, Surname=%s, Name=%s, Address=%s, Birthdate=%s, Degree=%s",
		l.ID, l.Surname, l.Name, l.Address, formatDate(l.Birthdate), l.Degree)
}

// ShortString returns a compact one-line description
func (l *Lecturer) ShortString() string {
	return fmt.Sprintf("Lecturer: Id=%d, Surname=%s, Name=%s", l.ID, l.Surname, l.Name)
}

package dto

import (
	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/pkg/helpers"
)

// LecturerRequest represents the data to create or replace a lecturer
type LecturerRequest struct {
	Surname   string  `json:"surname" binding:"required,max=100" example:"Schmidt"`
	Name      string  `json:"name" binding:"required,max=100" example:"Hans"`
	Address   string  `json:"address" binding:"max=255" example:"Hochschulstraße 1"`
	Birthdate string  `json:"birthdate,omitempty" binding:"omitempty,datetime=2006-01-02" example:"1970-03-12"`
	Degree    string  `json:"degree" binding:"required,oneof=Bachelor Master PhD Professor" example:"Professor"`
	CourseIDs []int64 `json:"courseIds,omitempty" binding:"omitempty,dive,gt=0"`
}

// ToModel converts the request into a lecturer referencing stored courses by ID
func (r *LecturerRequest) ToModel() (*models.Lecturer, error) {
	birthdate, err := helpers.ParseDate(r.Birthdate)
	if err != nil {
		return nil, err
	}
	degree, err := models.ParseDegree(r.Degree)
	if err != nil {
		return nil, err
	}
	return &models.Lecturer{
		Surname:   r.Surname,
		Name:      r.Name,
		Address:   r.Address,
		Birthdate: birthdate,
		Degree:    degree,
		Courses:   courseRefs(r.CourseIDs),
	}, nil
}

// LecturerResponse represents a lecturer with the courses held
type LecturerResponse struct {
	ID        int64  `json:"id" example:"1"`
	Surname   string `json:"surname" example:"Schmidt"`
	Name      string `json:"name" example:"Hans"`
	Address   string `json:"address" example:"Hochschulstraße 1"`
	Birthdate string `json:"birthdate,omitempty" example:"1970-03-12"`
	Degree    string `json:"degree" example:"Professor"`
	Courses   []Ref  `json:"courses"`
}

// NewLecturerResponse converts a stored lecturer
func NewLecturerResponse(l *models.Lecturer) LecturerResponse {
	return LecturerResponse{
		ID:        l.ID,
		Surname:   l.Surname,
		Name:      l.Name,
		Address:   l.Address,
		Birthdate: helpers.FormatDate(l.Birthdate),
		Degree:    l.Degree.String(),
		Courses:   courseList(l.Courses),
	}
}

// NewLecturerResponses converts a list of lecturers
func NewLecturerResponses(lecturers []*models.Lecturer) []LecturerResponse {
	out := make([]LecturerResponse, 0, len(lecturers))
	for _, l := range lecturers {
		out = append(out, NewLecturerResponse(l))
	}
	return out
}

package dto

import (
	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/pkg/helpers"
)

// StudentRequest represents the data to create or replace a student
type StudentRequest struct {
	Surname    string  `json:"surname" binding:"required,max=100" example:"Mustermann"`
	Name       string  `json:"name" binding:"required,max=100" example:"Max"`
	Address    string  `json:"address" binding:"max=255" example:"Musterstraße 1"`
	Birthdate  string  `json:"birthdate,omitempty" binding:"omitempty,datetime=2006-01-02" example:"2000-05-01"`
	SemesterID *int64  `json:"semesterId,omitempty" binding:"omitempty,gt=0" example:"1"`
	CourseIDs  []int64 `json:"courseIds,omitempty" binding:"omitempty,dive,gt=0"`
}

// ToModel converts the request into a student referencing stored entities by ID
func (r *StudentRequest) ToModel() (*models.Student, error) {
	birthdate, err := helpers.ParseDate(r.Birthdate)
	if err != nil {
		return nil, err
	}
	return &models.Student{
		Surname:    r.Surname,
		Name:       r.Name,
		Address:    r.Address,
		Birthdate:  birthdate,
		SemesterID: r.SemesterID,
		Courses:    courseRefs(r.CourseIDs),
	}, nil
}

// StudentResponse represents a student with its semester and courses
type StudentResponse struct {
	ID        int64  `json:"id" example:"1"`
	Surname   string `json:"surname" example:"Mustermann"`
	Name      string `json:"name" example:"Max"`
	Address   string `json:"address" example:"Musterstraße 1"`
	Birthdate string `json:"birthdate,omitempty" example:"2000-05-01"`
	Semester  *Ref   `json:"semester,omitempty"`
	Courses   []Ref  `json:"courses"`
}

// NewStudentResponse converts a stored student
func NewStudentResponse(s *models.Student) StudentResponse {
	resp := StudentResponse{
		ID:        s.ID,
		Surname:   s.Surname,
		Name:      s.Name,
		Address:   s.Address,
		Birthdate: helpers.FormatDate(s.Birthdate),
		Courses:   courseList(s.Courses),
	}
	if s.Semester != nil {
		resp.Semester = &Ref{ID: s.Semester.ID, Name: s.Semester.Name}
	} else if s.SemesterID != nil {
		resp.Semester = &Ref{ID: *s.SemesterID}
	}
	return resp
}

// NewStudentResponses converts a list of students
func NewStudentResponses(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}

func studentRefs(ids []int64) []*models.Student {
	out := make([]*models.Student, 0, len(ids))
	for _, id := range ids {
		out = append(out, &models.Student{ID: id})
	}
	return out
}

func studentList(students []*models.Student) []Ref {
	out := make([]Ref, 0, len(students))
	for _, s := range students {
		out = append(out, Ref{ID: s.ID, Name: s.Name + " " + s.Surname})
	}
	return out
}

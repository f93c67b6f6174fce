package dto

import (
	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/pkg/helpers"
)

// SemesterRequest represents the data to create or replace a semester
type SemesterRequest struct {
	Name       string  `json:"name" binding:"required,max=100" example:"Wintersemester 2024/2025"`
	StartDate  string  `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02" example:"2024-10-01"`
	EndDate    string  `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02" example:"2025-03-31"`
	CourseIDs  []int64 `json:"courseIds,omitempty" binding:"omitempty,dive,gt=0"`
	StudentIDs []int64 `json:"studentIds,omitempty" binding:"omitempty,dive,gt=0"`
}

// ToModel converts the request into a semester referencing stored entities by ID
func (r *SemesterRequest) ToModel() (*models.Semester, error) {
	start, err := helpers.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := helpers.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}
	return &models.Semester{
		Name:      r.Name,
		StartDate: start,
		EndDate:   end,
		Courses:   courseRefs(r.CourseIDs),
		Students:  studentRefs(r.StudentIDs),
	}, nil
}

// SemesterResponse represents a semester with its courses and students
type SemesterResponse struct {
	ID        int64  `json:"id" example:"1"`
	Name      string `json:"name" example:"Wintersemester 2024/2025"`
	StartDate string `json:"startDate,omitempty" example:"2024-10-01"`
	EndDate   string `json:"endDate,omitempty" example:"2025-03-31"`
	Courses   []Ref  `json:"courses"`
	Students  []Ref  `json:"students"`
}

// NewSemesterResponse converts a stored semester
func NewSemesterResponse(s *models.Semester) SemesterResponse {
	return SemesterResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartDate: helpers.FormatDate(s.StartDate),
		EndDate:   helpers.FormatDate(s.EndDate),
		Courses:   courseList(s.Courses),
		Students:  studentList(s.Students),
	}
}

// NewSemesterResponses converts a list of semesters
func NewSemesterResponses(semesters []*models.Semester) []SemesterResponse {
	out := make([]SemesterResponse, 0, len(semesters))
	for _, s := range semesters {
		out = append(out, NewSemesterResponse(s))
	}
	return out
}

func semesterRefs(ids []int64) []*models.Semester {
	out := make([]*models.Semester, 0, len(ids))
	for _, id := range ids {
		out = append(out, &models.Semester{ID: id})
	}
	return out
}

func semesterList(semesters []*models.Semester) []Ref {
	out := make([]Ref, 0, len(semesters))
	for _, s := range semesters {
		out = append(out, Ref{ID: s.ID, Name: s.Name})
	}
	return out
}

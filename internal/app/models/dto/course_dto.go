package dto

import (
	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/pkg/helpers"
)

// CourseRequest represents the data to create or replace a course
type CourseRequest struct {
	Name        string  `json:"name" binding:"required,max=50" example:"Software Engineering"`
	Description string  `json:"description" binding:"required,max=255" example:"Grundlagen der Softwaretechnik"`
	LecturerID  *int64  `json:"lecturerId,omitempty" binding:"omitempty,gt=0" example:"1"`
	Startdate   string  `json:"startdate,omitempty" binding:"omitempty,datetime=2006-01-02" example:"2024-10-01"`
	Enddate     string  `json:"enddate,omitempty" binding:"omitempty,datetime=2006-01-02" example:"2025-01-31"`
	StudentIDs  []int64 `json:"studentIds,omitempty" binding:"omitempty,dive,gt=0"`
	SemesterIDs []int64 `json:"semesterIds,omitempty" binding:"omitempty,dive,gt=0"`
}

// ToModel converts the request into a course referencing stored entities by ID
func (r *CourseRequest) ToModel() (*models.Course, error) {
	start, err := helpers.ParseDate(r.Startdate)
	if err != nil {
		return nil, err
	}
	end, err := helpers.ParseDate(r.Enddate)
	if err != nil {
		return nil, err
	}
	return &models.Course{
		Name:        r.Name,
		Description: r.Description,
		LecturerID:  r.LecturerID,
		Startdate:   start,
		Enddate:     end,
		Students:    studentRefs(r.StudentIDs),
		Semesters:   semesterRefs(r.SemesterIDs),
	}, nil
}

// CourseResponse represents a course with lecturer, students and semesters
type CourseResponse struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"Software Engineering"`
	Description string `json:"description" example:"Grundlagen der Softwaretechnik"`
	Startdate   string `json:"startdate,omitempty" example:"2024-10-01"`
	Enddate     string `json:"enddate,omitempty" example:"2025-01-31"`
	Lecturer    *Ref   `json:"lecturer,omitempty"`
	Students    []Ref  `json:"students"`
	Semesters   []Ref  `json:"semesters"`
}

// NewCourseResponse converts a stored course
func NewCourseResponse(c *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Startdate:   helpers.FormatDate(c.Startdate),
		Enddate:     helpers.FormatDate(c.Enddate),
		Students:    studentList(c.Students),
		Semesters:   semesterList(c.Semesters),
	}
	if c.Lecturer != nil {
		resp.Lecturer = &Ref{ID: c.Lecturer.ID, Name: c.Lecturer.Name + " " + c.Lecturer.Surname}
	} else if c.LecturerID != nil {
		resp.Lecturer = &Ref{ID: *c.LecturerID}
	}
	return resp
}

// NewCourseResponses converts a list of courses
func NewCourseResponses(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}

func courseRefs(ids []int64) []*models.Course {
	out := make([]*models.Course, 0, len(ids))
	for _, id := range ids {
		out = append(out, &models.Course{ID: id})
	}
	return out
}

func courseList(courses []*models.Course) []Ref {
	out := make([]Ref, 0, len(courses))
	for _, c := range courses {
		out = append(out, Ref{ID: c.ID, Name: c.Name})
	}
	return out
}

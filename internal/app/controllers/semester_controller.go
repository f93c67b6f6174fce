package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hochschule/internal/app/models/dto"
	"github.com/yigit/hochschule/internal/app/services"
	"github.com/yigit/hochschule/internal/middleware"
	"github.com/yigit/hochschule/internal/pkg/apperrors"
)

// SemesterController handles semester-related operations
type SemesterController struct {
	semesterService services.SemesterService
}

// NewSemesterController creates a new SemesterController
func NewSemesterController(semesterService services.SemesterService) *SemesterController {
	return &SemesterController{semesterService: semesterService}
}

// GetAllSemesters lists every semester
// @Router /semesters [get]
func (c *SemesterController) GetAllSemesters(ctx *gin.Context) {
	semesters, err := c.semesterService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSemesterResponses(semesters), ""))
}

// GetSemesterByID retrieves a semester with courses and students
// @Router /semesters/{id} [get]
func (c *SemesterController) GetSemesterByID(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntitySemester)
	if !ok {
		return
	}

	semester, err := c.semesterService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSemesterResponse(semester), ""))
}

// CreateSemester handles semester creation
// @Router /semesters [post]
func (c *SemesterController) CreateSemester(ctx *gin.Context) {
	var req dto.SemesterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	semester, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	created, err := c.semesterService.CreateNew(ctx, semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewSemesterResponse(created), "Semester created"))
}

// UpdateSemester replaces a semester's fields and memberships
// @Router /semesters/{id} [put]
func (c *SemesterController) UpdateSemester(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntitySemester)
	if !ok {
		return
	}
	var req dto.SemesterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	semester, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	updated, err := c.semesterService.Update(ctx, id, semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSemesterResponse(updated), "Semester updated"))
}

// DeleteSemester deletes a semester
// @Router /semesters/{id} [delete]
func (c *SemesterController) DeleteSemester(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntitySemester)
	if !ok {
		return
	}

	if err := c.semesterService.DeleteByID(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Semester deleted"))
}

// AddCourse offers a course in the semester
// @Router /semesters/{id}/courses/{courseId} [post]
func (c *SemesterController) AddCourse(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntitySemester)
	if !ok {
		return
	}
	courseID, ok := middleware.IDParam(ctx, "courseId", apperrors.EntityCourse)
	if !ok {
		return
	}

	semester, err := c.semesterService.AddCourseToSemester(ctx, id, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSemesterResponse(semester), "Course added to semester"))
}

// AddStudent moves a student into the semester
// @Router /semesters/{id}/students/{studentId} [post]
func (c *SemesterController) AddStudent(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntitySemester)
	if !ok {
		return
	}
	studentID, ok := middleware.IDParam(ctx, "studentId", apperrors.EntityStudent)
	if !ok {
		return
	}

	semester, err := c.semesterService.AddStudentToSemester(ctx, id, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSemesterResponse(semester), "Student added to semester"))
}

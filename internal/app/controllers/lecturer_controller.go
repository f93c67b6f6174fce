package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hochschule/internal/app/models/dto"
	"github.com/yigit/hochschule/internal/app/services"
	"github.com/yigit/hochschule/internal/middleware"
	"github.com/yigit/hochschule/internal/pkg/apperrors"
)

// LecturerController handles lecturer-related operations
type LecturerController struct {
	lecturerService services.LecturerService
}

// NewLecturerController creates a new LecturerController
func NewLecturerController(lecturerService services.LecturerService) *LecturerController {
	return &LecturerController{lecturerService: lecturerService}
}

// GetAllLecturers lists every lecturer
// @Router /lecturers [get]
func (c *LecturerController) GetAllLecturers(ctx *gin.Context) {
	lecturers, err := c.lecturerService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewLecturerResponses(lecturers), ""))
}

// GetLecturerByID retrieves a lecturer with the courses held
// @Router /lecturers/{id} [get]
func (c *LecturerController) GetLecturerByID(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityLecturer)
	if !ok {
		return
	}

	lecturer, err := c.lecturerService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewLecturerResponse(lecturer), ""))
}

// CreateLecturer handles lecturer creation
// @Router /lecturers [post]
func (c *LecturerController) CreateLecturer(ctx *gin.Context) {
	var req dto.LecturerRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	lecturer, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	created, err := c.lecturerService.CreateNew(ctx, lecturer)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewLecturerResponse(created), "Lecturer created"))
}

// UpdateLecturer replaces a lecturer's fields and courses
// @Router /lecturers/{id} [put]
func (c *LecturerController) UpdateLecturer(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityLecturer)
	if !ok {
		return
	}
	var req dto.LecturerRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	lecturer, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	updated, err := c.lecturerService.Update(ctx, id, lecturer)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewLecturerResponse(updated), "Lecturer updated"))
}

// DeleteLecturer deletes a lecturer, leaving its courses without one
// @Router /lecturers/{id} [delete]
func (c *LecturerController) DeleteLecturer(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityLecturer)
	if !ok {
		return
	}

	if err := c.lecturerService.DeleteByID(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Lecturer deleted"))
}

// AddCourse makes the lecturer hold a course
// @Router /lecturers/{id}/courses/{courseId} [post]
func (c *LecturerController) AddCourse(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityLecturer)
	if !ok {
		return
	}
	courseID, ok := middleware.IDParam(ctx, "courseId", apperrors.EntityCourse)
	if !ok {
		return
	}

	lecturer, err := c.lecturerService.AddLecturerToCourse(ctx, id, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewLecturerResponse(lecturer), "Course assigned to lecturer"))
}

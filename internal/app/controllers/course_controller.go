package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hochschule/internal/app/models/dto"
	"github.com/yigit/hochschule/internal/app/services"
	"github.com/yigit/hochschule/internal/middleware"
	"github.com/yigit/hochschule/internal/pkg/apperrors"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetAllCourses lists every course
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponses(courses), ""))
}

// GetCourseByID retrieves a course with lecturer, students and semesters
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityCourse)
	if !ok {
		return
	}

	course, err := c.courseService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponse(course), ""))
}

// CreateCourse handles course creation
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	course, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	created, err := c.courseService.CreateNew(ctx, course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewCourseResponse(created), "Course created"))
}

// UpdateCourse replaces a course's fields and memberships
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityCourse)
	if !ok {
		return
	}
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	course, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	updated, err := c.courseService.Update(ctx, id, course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponse(updated), "Course updated"))
}

// DeleteCourse deletes a course
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityCourse)
	if !ok {
		return
	}

	if err := c.courseService.DeleteByID(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Course deleted"))
}

// AddStudent enrolls a student in the course
// @Router /courses/{id}/students/{studentId} [post]
func (c *CourseController) AddStudent(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityCourse)
	if !ok {
		return
	}
	studentID, ok := middleware.IDParam(ctx, "studentId", apperrors.EntityStudent)
	if !ok {
		return
	}

	course, err := c.courseService.AddStudentToCourse(ctx, id, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponse(course), "Student added to course"))
}

// SetLecturer makes the lecturer hold the course
// @Router /courses/{id}/lecturer/{lecturerId} [put]
func (c *CourseController) SetLecturer(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityCourse)
	if !ok {
		return
	}
	lecturerID, ok := middleware.IDParam(ctx, "lecturerId", apperrors.EntityLecturer)
	if !ok {
		return
	}

	course, err := c.courseService.AddLecturerToCourse(ctx, id, lecturerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponse(course), "Lecturer assigned to course"))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hochschule/internal/app/models/dto"
	"github.com/yigit/hochschule/internal/app/services"
	"github.com/yigit/hochschule/internal/middleware"
	"github.com/yigit/hochschule/internal/pkg/apperrors"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetAllStudents lists every student
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponses(students), ""))
}

// GetStudentByID retrieves a student with semester and courses
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityStudent)
	if !ok {
		return
	}

	student, err := c.studentService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponse(student), ""))
}

// CreateStudent handles student creation
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	student, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	created, err := c.studentService.CreateNew(ctx, student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewStudentResponse(created), "Student created"))
}

// UpdateStudent replaces a student's fields and memberships
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityStudent)
	if !ok {
		return
	}
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	student, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	updated, err := c.studentService.Update(ctx, id, student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponse(updated), "Student updated"))
}

// DeleteStudent deletes a student
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityStudent)
	if !ok {
		return
	}

	if err := c.studentService.DeleteByID(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student deleted"))
}

// EnrollInCourse adds the student to a course
// @Router /students/{id}/courses/{courseId} [post]
func (c *StudentController) EnrollInCourse(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityStudent)
	if !ok {
		return
	}
	courseID, ok := middleware.IDParam(ctx, "courseId", apperrors.EntityCourse)
	if !ok {
		return
	}

	student, err := c.studentService.AddStudentToCourse(ctx, id, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponse(student), "Student enrolled in course"))
}

// AssignSemester moves the student to a semester
// @Router /students/{id}/semester/{semesterId} [put]
func (c *StudentController) AssignSemester(ctx *gin.Context) {
	id, ok := middleware.IDParam(ctx, "id", apperrors.EntityStudent)
	if !ok {
		return
	}
	semesterID, ok := middleware.IDParam(ctx, "semesterId", apperrors.EntitySemester)
	if !ok {
		return
	}

	student, err := c.studentService.AddStudentToSemester(ctx, id, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponse(student), "Student assigned to semester"))
}

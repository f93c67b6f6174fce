package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hochschule/internal/app/controllers"
	"github.com/yigit/hochschule/internal/app/models/dto"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Student  *controllers.StudentController
	Course   *controllers.CourseController
	Semester *controllers.SemesterController
	Lecturer *controllers.LecturerController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.GET("", c.Student.GetAllStudents)
		students.GET("/:id", c.Student.GetStudentByID)
		students.POST("", c.Student.CreateStudent)
		students.PUT("/:id", c.Student.UpdateStudent)
		students.DELETE("/:id", c.Student.DeleteStudent)
		students.POST("/:id/courses/:courseId", c.Student.EnrollInCourse)
		students.PUT("/:id/semester/:semesterId", c.Student.AssignSemester)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", c.Course.GetAllCourses)
		courses.GET("/:id", c.Course.GetCourseByID)
		courses.POST("", c.Course.CreateCourse)
		courses.PUT("/:id", c.Course.UpdateCourse)
		courses.DELETE("/:id", c.Course.DeleteCourse)
		courses.POST("/:id/students/:studentId", c.Course.AddStudent)
		courses.PUT("/:id/lecturer/:lecturerId", c.Course.SetLecturer)
	}

	semesters := v1.Group("/semesters")
	{
		semesters.GET("", c.Semester.GetAllSemesters)
		semesters.GET("/:id", c.Semester.GetSemesterByID)
		semesters.POST("", c.Semester.CreateSemester)
		semesters.PUT("/:id", c.Semester.UpdateSemester)
		semesters.DELETE("/:id", c.Semester.DeleteSemester)
		semesters.POST("/:id/courses/:courseId", c.Semester.AddCourse)
		semesters.POST("/:id/students/:studentId", c.Semester.AddStudent)
	}

	lecturers := v1.Group("/lecturers")
	{
		lecturers.GET("", c.Lecturer.GetAllLecturers)
		lecturers.GET("/:id", c.Lecturer.GetLecturerByID)
		lecturers.POST("", c.Lecturer.CreateLecturer)
		lecturers.PUT("/:id", c.Lecturer.UpdateLecturer)
		lecturers.DELETE("/:id", c.Lecturer.DeleteLecturer)
		lecturers.POST("/:id/courses/:courseId", c.Lecturer.AddCourse)
	}

	// Health check endpoint
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}

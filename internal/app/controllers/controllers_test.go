package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/hochschule/internal/app/controllers"
	"github.com/yigit/hochschule/internal/app/models/dto"
	"github.com/yigit/hochschule/internal/app/repositories"
	"github.com/yigit/hochschule/internal/app/routes"
	"github.com/yigit/hochschule/internal/app/services"
	"github.com/yigit/hochschule/internal/db/dbtest"
	"github.com/yigit/hochschule/internal/middleware"
)

type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Error   *dto.ErrorDetail `json:"error"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewServices(repositories.NewRepositories(dbtest.New(t)))
	router := gin.New()
	router.Use(middleware.RequestID())
	routes.SetupRouter(router, routes.Controllers{
		Student:  controllers.NewStudentController(svc.StudentService),
		Course:   controllers.NewCourseController(svc.CourseService),
		Semester: controllers.NewSemesterController(svc.SemesterService),
		Lecturer: controllers.NewLecturerController(svc.LecturerService),
	})
	return router
}

func call(t *testing.T, router *gin.Engine, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestPing(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pong")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestCreateCourseWithLecturer(t *testing.T) {
	router := newRouter(t)

	code, env := call(t, router, http.MethodPost, "/api/v1/lecturers", dto.LecturerRequest{
		Surname: "Schmidt", Name: "Hans", Degree: "Professor", Birthdate: "1970-03-12",
	})
	require.Equal(t, http.StatusCreated, code)
	lecturer := decode[dto.LecturerResponse](t, env.Data)
	assert.Equal(t, "Professor", lecturer.Degree)
	assert.Equal(t, "1970-03-12", lecturer.Birthdate)

	code, env = call(t, router, http.MethodPost, "/api/v1/courses", dto.CourseRequest{
		Name:        "Software Engineering",
		Description: "Grundlagen",
		LecturerID:  &lecturer.ID,
		Startdate:   "2024-10-01",
		Enddate:     "2025-01-31",
	})
	require.Equal(t, http.StatusCreated, code)
	course := decode[dto.CourseResponse](t, env.Data)

	code, env = call(t, router, http.MethodGet, fmt.Sprintf("/api/v1/courses/%d", course.ID), nil)
	require.Equal(t, http.StatusOK, code)
	got := decode[dto.CourseResponse](t, env.Data)
	require.NotNil(t, got.Lecturer)
	assert.Equal(t, lecturer.ID, got.Lecturer.ID)
	assert.Equal(t, "2025-01-31", got.Enddate)

	code, env = call(t, router, http.MethodGet, fmt.Sprintf("/api/v1/lecturers/%d", lecturer.ID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[dto.LecturerResponse](t, env.Data).Courses, 1)
}

func TestNotFoundMapsTo404(t *testing.T) {
	router := newRouter(t)

	code, env := call(t, router, http.MethodGet, "/api/v1/students/7", nil)

	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, env.Error.Code)
	assert.Equal(t, "Student with ID '7' not found.", env.Error.Message)
}

func TestInvalidRequestsMapTo400(t *testing.T) {
	router := newRouter(t)

	code, env := call(t, router, http.MethodPost, "/api/v1/students", map[string]string{"surname": "Mustermann"})
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, env.Error.Code)
	assert.Equal(t, "Name", env.Error.Field)

	code, env = call(t, router, http.MethodPost, "/api/v1/semesters", dto.SemesterRequest{
		Name: "Wintersemester", StartDate: "2025-03-01", EndDate: "2024-10-01",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, env.Error.Code)

	code, _ = call(t, router, http.MethodGet, "/api/v1/courses/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, router, http.MethodPost, "/api/v1/lecturers", dto.LecturerRequest{Surname: "A", Name: "B", Degree: "Dean"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDuplicateEnrollmentMapsTo409(t *testing.T) {
	router := newRouter(t)

	_, env := call(t, router, http.MethodPost, "/api/v1/students", dto.StudentRequest{Surname: "Musterfrau", Name: "Erika"})
	student := decode[dto.StudentResponse](t, env.Data)
	_, env = call(t, router, http.MethodPost, "/api/v1/courses", dto.CourseRequest{Name: "Datenbanken", Description: "SQL"})
	course := decode[dto.CourseResponse](t, env.Data)

	path := fmt.Sprintf("/api/v1/courses/%d/students/%d", course.ID, student.ID)
	code, env := call(t, router, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[dto.CourseResponse](t, env.Data).Students, 1)

	code, env = call(t, router, http.MethodPost, fmt.Sprintf("/api/v1/students/%d/courses/%d", student.ID, course.ID), nil)
	assert.Equal(t, http.StatusConflict, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, env.Error.Code)
}

func TestSemesterAssociationRoutes(t *testing.T) {
	router := newRouter(t)

	_, env := call(t, router, http.MethodPost, "/api/v1/semesters", dto.SemesterRequest{Name: "Sommersemester 2025"})
	semester := decode[dto.SemesterResponse](t, env.Data)
	_, env = call(t, router, http.MethodPost, "/api/v1/students", dto.StudentRequest{Surname: "Mustermann", Name: "Max"})
	student := decode[dto.StudentResponse](t, env.Data)
	_, env = call(t, router, http.MethodPost, "/api/v1/courses", dto.CourseRequest{Name: "Datenbanken", Description: "SQL"})
	course := decode[dto.CourseResponse](t, env.Data)

	code, _ := call(t, router, http.MethodPost, fmt.Sprintf("/api/v1/semesters/%d/courses/%d", semester.ID, course.ID), nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, router, http.MethodPut, fmt.Sprintf("/api/v1/students/%d/semester/%d", student.ID, semester.ID), nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, router, http.MethodPost, fmt.Sprintf("/api/v1/semesters/%d/students/%d", semester.ID, student.ID), nil)
	assert.Equal(t, http.StatusConflict, code)

	_, env = call(t, router, http.MethodGet, fmt.Sprintf("/api/v1/semesters/%d", semester.ID), nil)
	got := decode[dto.SemesterResponse](t, env.Data)
	assert.Equal(t, []dto.Ref{{ID: course.ID, Name: "Datenbanken"}}, got.Courses)
	assert.Equal(t, []dto.Ref{{ID: student.ID, Name: "Max Mustermann"}}, got.Students)
}

func TestUpdateAndDelete(t *testing.T) {
	router := newRouter(t)

	_, env := call(t, router, http.MethodPost, "/api/v1/courses", dto.CourseRequest{Name: "SE", Description: "alt"})
	course := decode[dto.CourseResponse](t, env.Data)
	path := fmt.Sprintf("/api/v1/courses/%d", course.ID)

	code, env := call(t, router, http.MethodPut, path, dto.CourseRequest{Name: "Software Engineering", Description: "neu"})
	require.Equal(t, http.StatusOK, code)
	updated := decode[dto.CourseResponse](t, env.Data)
	assert.Equal(t, course.ID, updated.ID)
	assert.Equal(t, "neu", updated.Description)

	code, _ = call(t, router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = call(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

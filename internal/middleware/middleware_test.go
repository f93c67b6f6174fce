package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/hochschule/internal/app/models/dto"
	"github.com/yigit/hochschule/internal/middleware"
	"github.com/yigit/hochschule/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, router *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp dto.APIResponse
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.RequestIDKey))
	})

	t.Run("generates an ID", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("keeps a valid caller ID", func(t *testing.T) {
		want := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, want)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, want, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("replaces a malformed caller ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "not-an-id")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.NotEqual(t, "not-an-id", rec.Header().Get(middleware.RequestIDHeader))
	})
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		code     dto.ErrorCode
		message  string
		severity dto.ErrorSeverity
	}{
		{
			name:     "not found",
			err:      apperrors.NewNotFoundError(apperrors.EntityCourse, 3),
			status:   http.StatusNotFound,
			code:     dto.ErrorCodeResourceNotFound,
			message:  "Course with ID '3' not found.",
			severity: dto.ErrorSeverityWarning,
		},
		{
			name:     "already exists",
			err:      apperrors.NewAlreadyExistsError("duplicate"),
			status:   http.StatusConflict,
			code:     dto.ErrorCodeResourceAlreadyExists,
			message:  "duplicate",
			severity: dto.ErrorSeverityWarning,
		},
		{
			name:     "validation",
			err:      apperrors.NewValidationError("bad date"),
			status:   http.StatusBadRequest,
			code:     dto.ErrorCodeValidationFailed,
			message:  "bad date",
			severity: dto.ErrorSeverityWarning,
		},
		{
			name:     "unexpected",
			err:      errors.New("disk on fire"),
			status:   http.StatusInternalServerError,
			code:     dto.ErrorCodeInternalServer,
			message:  "Internal server error",
			severity: dto.ErrorSeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", func(c *gin.Context) { middleware.HandleAPIError(c, tt.err) })

			rec, resp := serve(t, router, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
			assert.Equal(t, tt.severity, resp.Error.Severity)
		})
	}
}

func TestIDParam(t *testing.T) {
	router := gin.New()
	router.GET("/:id", func(c *gin.Context) {
		id, ok := middleware.IDParam(c, "id", apperrors.EntityStudent)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(id, ""))
	})

	rec, resp := serve(t, router, httptest.NewRequest(http.MethodGet, "/12", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 12, resp.Data)

	for _, raw := range []string{"abc", "0", "-4"} {
		rec, resp = serve(t, router, httptest.NewRequest(http.MethodGet, "/"+raw, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "Invalid Student ID", resp.Error.Message)
		assert.Equal(t, dto.ErrorSeverityWarning, resp.Error.Severity)
	}
}

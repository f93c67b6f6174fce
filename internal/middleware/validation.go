package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hochschule/internal/app/models/dto"
)

// BindJSON binds and validates the request body, answering 400 on failure
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		abortWithError(c, http.StatusBadRequest, dto.HandleValidationError(err))
		return false
	}
	return true
}

// IDParam reads a positive integer path parameter, answering 400 otherwise
func IDParam(c *gin.Context, name, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+entity+" ID").
			WithField(name).
			WithDetails(entity + " ID must be a positive number")
		abortWithError(c, http.StatusBadRequest, detail)
		return 0, false
	}
	return id, true
}

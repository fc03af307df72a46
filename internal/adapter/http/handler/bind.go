package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"wallet-api/internal/adapter/http/dto"
	"wallet-api/internal/adapter/http/middleware"
	"wallet-api/pkg/apperror"
	"wallet-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes and validates the body into obj, writing the error response on failure.
// allowEmpty accepts a missing body as the zero value.
func bindJSON(c *gin.Context, obj any, allowEmpty bool) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	switch {
	case allowEmpty && errors.Is(err, io.EOF):
		return true
	case errors.As(err, &maxErr):
		response.Error(c, apperror.ErrPayloadTooLarge())
	default:
		response.Error(c, apperror.Validation(dto.ValidationMessage(err)))
	}
	return false
}

// callerID returns the authenticated user id, writing 401 if JWTAuth did not run.
func callerID(c *gin.Context) (int64, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
	}
	return id, ok
}

// pathID parses the :id route parameter as an integer.
func pathID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error(c, apperror.ErrInvalidID(raw))
		return 0, false
	}
	return id, true
}

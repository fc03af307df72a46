package handler

import (
	"wallet-api/internal/adapter/http/dto"
	"wallet-api/internal/core/ports"
	"wallet-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles the caller's own profile.
type UserHandler struct {
	userSvc ports.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userSvc ports.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetMe handles GET /users/me.
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.GetMe(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// EditMe handles PATCH /users.
func (h *UserHandler) EditMe(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.EditUserRequest
	if !bindJSON(c, &req, true) {
		return
	}
	dto.SanitizeStruct(&req)

	user, err := h.userSvc.EditMe(c.Request.Context(), userID, req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

package handler

import (
	"wallet-api/internal/adapter/http/dto"
	"wallet-api/internal/core/ports"
	"wallet-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.AuthRequest
	if !bindJSON(c, &req, false) {
		return
	}

	token, expiry, err := h.authSvc.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiry.Unix(),
	})
}

// Signin handles POST /auth/signin.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.AuthRequest
	if !bindJSON(c, &req, false) {
		return
	}

	token, expiry, err := h.authSvc.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiry.Unix(),
	})
}

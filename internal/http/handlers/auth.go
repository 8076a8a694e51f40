package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticashop/backend/internal/service"
)

type loginRequest struct {
	// Username carries the email; the field name is kept for frontend
	// compatibility.
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login validates credentials and issues a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	token, u, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(c, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(c, http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, service.ErrRoleNotAllowed):
			writeError(c, http.StatusForbidden, "role has no access")
		default:
			writeError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        u,
		"token":       token,
		"permissions": service.Permissions(u.Role),
		"message":     "login successful",
	})
}

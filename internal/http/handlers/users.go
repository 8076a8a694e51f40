package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticashop/backend/internal/auth"
	"github.com/ticashop/backend/internal/models"
)

type userRequest struct {
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required"`
	Password string `json:"password"`
}

func (h *Handler) UsersList(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// UsersByEmail returns exact-match results; an absent parameter yields
// an empty result set, not an error.
func (h *Handler) UsersByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []models.User{})
		return
	}
	u, err := h.Users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		writeStoreError(c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, []models.User{*u})
}

func (h *Handler) UsersByRole(c *gin.Context) {
	role := c.Query("role")
	if role == "" {
		c.JSON(http.StatusOK, []models.User{})
		return
	}
	users, err := h.Users.ListByRole(c.Request.Context(), role)
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) UserGet(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	u, err := h.Users.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) UserCreate(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Password == "" {
		writeError(c, http.StatusBadRequest, "password is required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	u := models.User{
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: hash,
	}
	if err := h.Users.Create(c.Request.Context(), &u); err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *Handler) UserUpdate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.Users.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "user not found")
		return
	}
	u.Name = req.Name
	u.Surname = req.Surname
	u.Email = req.Email
	u.Role = req.Role
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}
		u.PasswordHash = hash
	}

	if err := h.Users.Update(c.Request.Context(), u); err != nil {
		writeStoreError(c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) UserDelete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Users.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "user not found")
		return
	}
	c.Status(http.StatusNoContent)
}

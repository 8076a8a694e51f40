package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/ticashop/backend/internal/db"
	"github.com/ticashop/backend/internal/repository"
	"github.com/ticashop/backend/internal/service"
)

type Handler struct {
	Store     *db.Store
	Users     repository.UserRepository
	Tickets   repository.TicketRepository
	Bids      repository.BidRepository
	Reports   repository.ReportRepository
	Comments  repository.CommentRepository
	Auth      *service.AuthService
	Validator *validator.Validate
	Logger    zerolog.Logger
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// writeAuthzError maps policy decisions onto 401/403.
func writeAuthzError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		writeError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeError(c, http.StatusForbidden, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, err.Error())
	}
}

// writeStoreError maps missing rows onto 404 and everything else onto
// 500 with the raw message.
func writeStoreError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(c, http.StatusNotFound, notFound)
		return
	}
	writeError(c, http.StatusInternalServerError, err.Error())
}

// paramID parses the :id path segment. On failure it writes a 400 and
// reports false.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// queryID parses an optional integer query parameter into a filter
// pointer. A missing parameter yields nil; a malformed one an error.
func queryID(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &v, nil
}

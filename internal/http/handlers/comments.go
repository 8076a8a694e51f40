package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticashop/backend/internal/http/middleware"
	"github.com/ticashop/backend/internal/models"
	"github.com/ticashop/backend/internal/service"
)

type commentCreateRequest struct {
	TicketID       int64           `json:"ticket_id" validate:"required"`
	Body           string          `json:"body" validate:"required"`
	TechnicalSheet json.RawMessage `json:"technical_sheet"`
}

func (h *Handler) CommentsList(c *gin.Context) {
	ticketID, err := queryID(c, "ticket")
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.Comments.List(c.Request.Context(), ticketID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []models.Comment{}
	}
	c.JSON(http.StatusOK, items)
}

// CommentCreate attaches a comment to a ticket. The author is always
// the authenticated caller; any author value in the payload is ignored.
func (h *Handler) CommentCreate(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if err := service.Authorize(actor, service.ActionCreateComment, nil); err != nil {
		writeAuthzError(c, err)
		return
	}

	var req commentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "ticket_id and body are required")
		return
	}

	if _, err := h.Tickets.Get(c.Request.Context(), req.TicketID); err != nil {
		writeStoreError(c, err, "ticket not found")
		return
	}

	comment := models.Comment{
		TicketID:       req.TicketID,
		AuthorID:       actor.ID,
		Body:           req.Body,
		TechnicalSheet: req.TechnicalSheet,
	}
	if err := h.Comments.Create(c.Request.Context(), &comment); err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *Handler) CommentDelete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	comment, err := h.Comments.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "comment not found")
		return
	}

	actor := middleware.CurrentUser(c)
	if err := service.Authorize(actor, service.ActionDeleteComment, &service.Target{CommentAuthorID: comment.AuthorID}); err != nil {
		writeAuthzError(c, err)
		return
	}

	if err := h.Comments.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "comment not found")
		return
	}
	c.Status(http.StatusNoContent)
}

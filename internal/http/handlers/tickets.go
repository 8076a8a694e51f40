package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ticashop/backend/internal/http/middleware"
	"github.com/ticashop/backend/internal/models"
	"github.com/ticashop/backend/internal/repository"
	"github.com/ticashop/backend/internal/service"
)

type ticketCreateRequest struct {
	CreatorID   int64  `json:"creator_id"`
	AssigneeID  *int64 `json:"assignee_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

type ticketUpdateRequest struct {
	ClientName  *string `json:"client_name"`
	ClientEmail *string `json:"client_email"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

func (h *Handler) TicketsList(c *gin.Context) {
	creatorID, err := queryID(c, "creatorId")
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	assigneeID, err := queryID(c, "assigneeId")
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.Tickets.List(c.Request.Context(), repository.TicketFilter{
		CreatorID:  creatorID,
		AssigneeID: assigneeID,
		Status:     c.Query("status"),
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []models.Ticket{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) TicketGet(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	t, err := h.Tickets.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "ticket not found")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) TicketCreate(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if err := service.Authorize(actor, service.ActionCreateTicket, nil); err != nil {
		writeAuthzError(c, err)
		return
	}

	var req ticketCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	t := models.Ticket{
		CreatorID:   req.CreatorID,
		AssigneeID:  req.AssigneeID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      req.Status,
	}
	service.NormalizeNewTicket(&t, actor.ID)

	if err := h.Tickets.Create(c.Request.Context(), &t); err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, t)
}

// TicketUpdate is the generic partial update; lifecycle transitions
// have their own endpoints.
func (h *Handler) TicketUpdate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req ticketUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	t, err := h.Tickets.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "ticket not found")
		return
	}

	if req.ClientName != nil {
		t.ClientName = *req.ClientName
	}
	if req.ClientEmail != nil {
		t.ClientEmail = *req.ClientEmail
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Priority != nil {
		if !service.ValidPriority(*req.Priority) {
			writeError(c, http.StatusBadRequest, "unknown priority")
			return
		}
		t.Priority = *req.Priority
	}
	if req.Status != nil {
		// closed_at must track the status: non-null iff closed.
		if *req.Status == models.StatusClosed {
			service.CloseTicket(t, time.Now().UTC())
		} else {
			t.Status = *req.Status
			t.ClosedAt = nil
		}
	}

	if err := h.Tickets.Update(c.Request.Context(), t); err != nil {
		writeStoreError(c, err, "ticket not found")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) TicketDelete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	t, err := h.Tickets.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "ticket not found")
		return
	}

	actor := middleware.CurrentUser(c)
	if err := service.Authorize(actor, service.ActionDeleteTicket, &service.Target{TicketCreatorID: t.CreatorID}); err != nil {
		writeAuthzError(c, err)
		return
	}

	if err := h.Tickets.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "ticket not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// TicketClose transitions a ticket to Cerrado and stamps closed_at.
// Closing an already-closed ticket is accepted and changes nothing.
func (h *Handler) TicketClose(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor := middleware.CurrentUser(c)
	if err := service.Authorize(actor, service.ActionCloseTicket, nil); err != nil {
		writeAuthzError(c, err)
		return
	}

	t, err := h.Tickets.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "ticket not found")
		return
	}

	service.CloseTicket(t, time.Now().UTC())
	if err := h.Tickets.Update(c.Request.Context(), t); err != nil {
		writeStoreError(c, err, "ticket not found")
		return
	}
	c.JSON(http.StatusOK, t)
}

type assignRequest struct {
	AssigneeID int64 `json:"assigneeId" validate:"required"`
}

func (h *Handler) TicketAssignTechnician(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "assigneeId is required")
		return
	}

	assignee, err := h.Users.Get(c.Request.Context(), req.AssigneeID)
	if err != nil {
		writeStoreError(c, err, "assignee not found")
		return
	}

	actor := middleware.CurrentUser(c)
	if err := service.Authorize(actor, service.ActionAssignTechnician, &service.Target{
		AssigneeID:   assignee.ID,
		AssigneeRole: assignee.Role,
	}); err != nil {
		writeAuthzError(c, err)
		return
	}

	t, err := h.Tickets.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "ticket not found")
		return
	}
	t.AssigneeID = &assignee.ID
	if err := h.Tickets.Update(c.Request.Context(), t); err != nil {
		writeStoreError(c, err, "ticket not found")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) TicketEscalatePriority(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor := middleware.CurrentUser(c)
	if err := service.Authorize(actor, service.ActionEscalatePriority, nil); err != nil {
		writeAuthzError(c, err)
		return
	}

	t, err := h.Tickets.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "ticket not found")
		return
	}
	t.Priority = service.EscalatePriority(t.Priority)
	if err := h.Tickets.Update(c.Request.Context(), t); err != nil {
		writeStoreError(c, err, "ticket not found")
		return
	}
	c.JSON(http.StatusOK, t)
}

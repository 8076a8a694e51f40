package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticashop/backend/internal/http/middleware"
	"github.com/ticashop/backend/internal/models"
	"github.com/ticashop/backend/internal/repository"
)

type bidCreateRequest struct {
	CreatorID   int64  `json:"creator_id"`
	Description string `json:"description" validate:"required"`
	Proposal    string `json:"proposal"`
	Status      string `json:"status"`
}

type bidUpdateRequest struct {
	Description *string `json:"description"`
	Proposal    *string `json:"proposal"`
	Status      *string `json:"status"`
}

func (h *Handler) BidsList(c *gin.Context) {
	creatorID, err := queryID(c, "creatorId")
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.Bids.List(c.Request.Context(), repository.BidFilter{
		CreatorID: creatorID,
		Status:    c.Query("status"),
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []models.Bid{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) BidGet(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	b, err := h.Bids.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "bid not found")
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) BidCreate(c *gin.Context) {
	var req bidCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "description is required")
		return
	}

	creatorID := req.CreatorID
	if creatorID == 0 {
		if actor := middleware.CurrentUser(c); actor != nil {
			creatorID = actor.ID
		}
	}
	if creatorID == 0 {
		writeError(c, http.StatusBadRequest, "creator_id is required")
		return
	}

	b := models.Bid{
		CreatorID:   creatorID,
		Description: req.Description,
		Proposal:    req.Proposal,
		Status:      req.Status,
	}
	if err := h.Bids.Create(c.Request.Context(), &b); err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *Handler) BidUpdate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req bidUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	b, err := h.Bids.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "bid not found")
		return
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Proposal != nil {
		b.Proposal = *req.Proposal
	}
	if req.Status != nil {
		b.Status = *req.Status
	}

	if err := h.Bids.Update(c.Request.Context(), b); err != nil {
		writeStoreError(c, err, "bid not found")
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) BidDelete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Bids.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "bid not found")
		return
	}
	c.Status(http.StatusNoContent)
}

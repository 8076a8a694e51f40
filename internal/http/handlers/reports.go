package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ticashop/backend/internal/models"
	"github.com/ticashop/backend/internal/repository"
)

type reportRequest struct {
	OpenTickets        int     `json:"open_tickets"`
	ClosedTickets      int     `json:"closed_tickets"`
	AvgResolutionHours float64 `json:"avg_resolution_hours"`
}

func (h *Handler) ReportsList(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	items, err := h.Reports.List(c.Request.Context(), repository.ReportFilter{
		Date:     c.Query("date"),
		Ordering: c.DefaultQuery("ordering", "-date"),
		Limit:    limit,
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []models.Report{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) ReportGet(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	r, err := h.Reports.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "report not found")
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) ReportCreate(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	r := models.Report{
		OpenTickets:        req.OpenTickets,
		ClosedTickets:      req.ClosedTickets,
		AvgResolutionHours: req.AvgResolutionHours,
	}
	if err := h.Reports.Create(c.Request.Context(), &r); err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *Handler) ReportUpdate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	r, err := h.Reports.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "report not found")
		return
	}
	r.OpenTickets = req.OpenTickets
	r.ClosedTickets = req.ClosedTickets
	r.AvgResolutionHours = req.AvgResolutionHours

	if err := h.Reports.Update(c.Request.Context(), r); err != nil {
		writeStoreError(c, err, "report not found")
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) ReportDelete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Reports.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "report not found")
		return
	}
	c.Status(http.StatusNoContent)
}

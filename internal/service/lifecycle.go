package service

import (
	"time"

	"github.com/ticashop/backend/internal/models"
)

// priorityOrder defines the escalation ladder, lowest first.
var priorityOrder = []string{
	models.PriorityLow,
	models.PriorityMedium,
	models.PriorityHigh,
	models.PriorityUrgent,
}

// EscalatePriority moves a priority one step up the ladder, clamped at
// the top. Unrecognized values are treated as media.
func EscalatePriority(current string) string {
	idx := priorityIndex(current)
	if idx < len(priorityOrder)-1 {
		idx++
	}
	return priorityOrder[idx]
}

func priorityIndex(p string) int {
	for i, v := range priorityOrder {
		if v == p {
			return i
		}
	}
	return priorityIndex(models.PriorityMedium)
}

// ValidPriority reports whether p is one of the four known levels.
func ValidPriority(p string) bool {
	for _, v := range priorityOrder {
		if v == p {
			return true
		}
	}
	return false
}

// NormalizeNewTicket fills the defaults a creation request may omit.
// creatorID is the authenticated caller, used when the payload does
// not name a creator.
func NormalizeNewTicket(t *models.Ticket, creatorID int64) {
	if t.CreatorID == 0 {
		t.CreatorID = creatorID
	}
	if !ValidPriority(t.Priority) {
		t.Priority = models.PriorityMedium
	}
	if t.Status == "" {
		t.Status = models.StatusOpen
	}
	if t.ClientName == "" {
		t.ClientName = "Cliente"
	}
	if t.ClientEmail == "" {
		t.ClientEmail = "cliente@ejemplo.com"
	}
	if t.Title == "" {
		t.Title = "Ticket"
	}
	if t.Category == "" {
		t.Category = "technical"
	}
}

// CloseTicket marks t closed and stamps the closure time. Closing an
// already-closed ticket is a no-op on the timestamp, so the call is
// idempotent.
func CloseTicket(t *models.Ticket, now time.Time) {
	if t.Status == models.StatusClosed && t.ClosedAt != nil {
		return
	}
	t.Status = models.StatusClosed
	t.ClosedAt = &now
}

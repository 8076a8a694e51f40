package service

import (
	"errors"

	"github.com/ticashop/backend/internal/models"
)

var (
	// ErrUnauthenticated means no identity could be resolved for the
	// request.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden means the resolved identity may not perform the
	// action.
	ErrForbidden = errors.New("forbidden")
)

// Action identifies a gated operation.
type Action string

const (
	ActionCreateTicket     Action = "ticket:create"
	ActionDeleteTicket     Action = "ticket:delete"
	ActionAssignTechnician Action = "ticket:assign"
	ActionCloseTicket      Action = "ticket:close"
	ActionEscalatePriority Action = "ticket:escalate"
	ActionCreateComment    Action = "comment:create"
	ActionDeleteComment    Action = "comment:delete"
)

// Target carries the resource context a rule may need. Only the fields
// relevant to the action have to be set.
type Target struct {
	TicketCreatorID int64
	CommentAuthorID int64
	AssigneeID      int64
	AssigneeRole    string
}

// Authorize decides whether actor may perform action on target. A nil
// actor always yields ErrUnauthenticated; a role or ownership mismatch
// yields ErrForbidden. Every rule of the access table lives here so
// enforcement cannot drift between handlers.
func Authorize(actor *models.User, action Action, target *Target) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if target == nil {
		target = &Target{}
	}

	switch action {
	case ActionCreateTicket, ActionEscalatePriority:
		if actor.Role == models.RoleAdmin || actor.Role == models.RoleSupport {
			return nil
		}
		return ErrForbidden

	case ActionDeleteTicket:
		if actor.Role == models.RoleAdmin {
			return nil
		}
		if actor.Role == models.RoleSupport && actor.ID == target.TicketCreatorID {
			return nil
		}
		return ErrForbidden

	case ActionAssignTechnician:
		switch actor.Role {
		case models.RoleAdmin:
			return nil
		case models.RoleSupport:
			// Support may only take a ticket for themselves.
			if target.AssigneeID == actor.ID {
				return nil
			}
			return ErrForbidden
		case models.RoleSpecialist:
			if target.AssigneeRole == models.RoleSupport {
				return nil
			}
			return ErrForbidden
		default:
			return ErrForbidden
		}

	case ActionCloseTicket, ActionCreateComment:
		// Any authenticated identity.
		return nil

	case ActionDeleteComment:
		if actor.Role == models.RoleAdmin || actor.ID == target.CommentAuthorID {
			return nil
		}
		return ErrForbidden
	}

	return ErrForbidden
}

// Permissions lists the UI areas available to a role. Advisory only:
// the frontend uses it to build its navigation, gating happens in
// Authorize.
func Permissions(role string) []string {
	switch role {
	case models.RoleAdmin:
		return []string{"dashboard", "tickets", "users", "bids", "reports", "comments"}
	case models.RoleSupport:
		return []string{"dashboard", "tickets", "bids", "reports", "comments"}
	case models.RoleSpecialist:
		return []string{"dashboard", "tickets", "comments"}
	case models.RoleTechnician:
		return []string{"dashboard", "tickets", "comments"}
	default:
		return nil
	}
}

// LoginAllowed reports whether a role may obtain a token at all.
func LoginAllowed(role string) bool {
	switch role {
	case models.RoleAdmin, models.RoleSupport, models.RoleSpecialist, models.RoleTechnician:
		return true
	}
	return false
}

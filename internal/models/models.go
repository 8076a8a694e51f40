package models

import (
	"encoding/json"
	"time"
)

// Roles known to the system. Access rules are evaluated in
// internal/service/policy.go.
const (
	RoleAdmin      = "admin"
	RoleSupport    = "support"
	RoleSpecialist = "specialist"
	RoleTechnician = "technician"
)

// Ticket priorities, lowest to highest. The stored value is always one
// of these four.
const (
	PriorityLow    = "baja"
	PriorityMedium = "media"
	PriorityHigh   = "alta"
	PriorityUrgent = "urgente"
)

// Ticket status markers. Closed is terminal; there is no reopen.
const (
	StatusOpen   = "Abierto"
	StatusClosed = "Cerrado"
)

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}

type Ticket struct {
	ID          int64      `json:"id"`
	CreatorID   int64      `json:"creator_id"`
	AssigneeID  *int64     `json:"assignee_id"`
	ClientName  string     `json:"client_name"`
	ClientEmail string     `json:"client_email"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at"`
}

// Bid is a "licitacion": a proposal record submitted by a user. The
// creation date is date-only and immutable after insert.
type Bid struct {
	ID          int64     `json:"id"`
	CreatorID   int64     `json:"creator_id"`
	Description string    `json:"description"`
	Proposal    string    `json:"proposal"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Report is a daily rollup snapshot written by an external aggregation
// job. The API exposes plain CRUD over it.
type Report struct {
	ID                 int64     `json:"id"`
	Date               time.Time `json:"date"`
	OpenTickets        int       `json:"open_tickets"`
	ClosedTickets      int       `json:"closed_tickets"`
	AvgResolutionHours float64   `json:"avg_resolution_hours"`
}

// Comment belongs to exactly one ticket and one authoring user.
// TechnicalSheet ("ficha técnica") is schema-less JSON stored and
// returned verbatim.
type Comment struct {
	ID             int64           `json:"id"`
	TicketID       int64           `json:"ticket_id"`
	AuthorID       int64           `json:"author_id"`
	Body           string          `json:"body"`
	TechnicalSheet json.RawMessage `json:"technical_sheet,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

package repository

import (
	"context"

	"github.com/ticashop/backend/internal/models"
)

// TicketFilter narrows ticket listings. Status is a substring match;
// results are always newest-created-first.
type TicketFilter struct {
	CreatorID  *int64
	AssigneeID *int64
	Status     string
}

// BidFilter narrows bid listings.
type BidFilter struct {
	CreatorID *int64
	Status    string
}

// ReportFilter narrows report listings. Ordering is a column name with
// an optional "-" prefix for descending; the default is "-date".
type ReportFilter struct {
	Date     string
	Ordering string
	Limit    int
}

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int64) error
}

type TicketRepository interface {
	Create(ctx context.Context, t *models.Ticket) error
	Get(ctx context.Context, id int64) (*models.Ticket, error)
	List(ctx context.Context, f TicketFilter) ([]models.Ticket, error)
	Update(ctx context.Context, t *models.Ticket) error
	Delete(ctx context.Context, id int64) error
}

type BidRepository interface {
	Create(ctx context.Context, b *models.Bid) error
	Get(ctx context.Context, id int64) (*models.Bid, error)
	List(ctx context.Context, f BidFilter) ([]models.Bid, error)
	Update(ctx context.Context, b *models.Bid) error
	Delete(ctx context.Context, id int64) error
}

type ReportRepository interface {
	Create(ctx context.Context, r *models.Report) error
	Get(ctx context.Context, id int64) (*models.Report, error)
	List(ctx context.Context, f ReportFilter) ([]models.Report, error)
	Update(ctx context.Context, r *models.Report) error
	Delete(ctx context.Context, id int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *models.Comment) error
	Get(ctx context.Context, id int64) (*models.Comment, error)
	List(ctx context.Context, ticketID *int64) ([]models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ticashop/backend/internal/models"
	"github.com/ticashop/backend/internal/repository"
)

type TicketRepo struct {
	pool *pgxpool.Pool
}

func NewTicketRepo(pool *pgxpool.Pool) *TicketRepo {
	return &TicketRepo{pool: pool}
}

const ticketColumns = `id, creator_id, assignee_id, client_name, client_email, title,
	description, category, priority, status, created_at, updated_at, closed_at`

func scanTicket(row pgx.Row) (*models.Ticket, error) {
	var t models.Ticket
	if err := row.Scan(
		&t.ID, &t.CreatorID, &t.AssigneeID, &t.ClientName, &t.ClientEmail, &t.Title,
		&t.Description, &t.Category, &t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt, &t.ClosedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepo) Create(ctx context.Context, t *models.Ticket) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO tickets (creator_id, assignee_id, client_name, client_email, title,
			description, category, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, t.CreatorID, t.AssigneeID, t.ClientName, t.ClientEmail, t.Title,
		t.Description, t.Category, t.Priority, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TicketRepo) Get(ctx context.Context, id int64) (*models.Ticket, error) {
	return scanTicket(r.pool.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id))
}

func (r *TicketRepo) List(ctx context.Context, f repository.TicketFilter) ([]models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets`
	var args []any
	var wheres []string
	if f.CreatorID != nil {
		args = append(args, *f.CreatorID)
		wheres = append(wheres, fmt.Sprintf("creator_id = $%d", len(args)))
	}
	if f.AssigneeID != nil {
		args = append(args, *f.AssigneeID)
		wheres = append(wheres, fmt.Sprintf("assignee_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, "%"+f.Status+"%")
		wheres = append(wheres, fmt.Sprintf("status ILIKE $%d", len(args)))
	}
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Ticket
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(
			&t.ID, &t.CreatorID, &t.AssigneeID, &t.ClientName, &t.ClientEmail, &t.Title,
			&t.Description, &t.Category, &t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt, &t.ClosedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update writes every mutable field and bumps updated_at.
func (r *TicketRepo) Update(ctx context.Context, t *models.Ticket) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE tickets
		SET assignee_id = $1, client_name = $2, client_email = $3, title = $4,
			description = $5, category = $6, priority = $7, status = $8,
			closed_at = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`, t.AssigneeID, t.ClientName, t.ClientEmail, t.Title,
		t.Description, t.Category, t.Priority, t.Status, t.ClosedAt, t.ID)
	return row.Scan(&t.UpdatedAt)
}

func (r *TicketRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ticashop/backend/internal/models"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

const commentColumns = `id, ticket_id, author_id, body, technical_sheet, created_at`

func (r *CommentRepo) Create(ctx context.Context, c *models.Comment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO comments (ticket_id, author_id, body, technical_sheet)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, c.TicketID, c.AuthorID, c.Body, c.TechnicalSheet).Scan(&c.ID, &c.CreatedAt)
}

func (r *CommentRepo) Get(ctx context.Context, id int64) (*models.Comment, error) {
	var c models.Comment
	err := r.pool.QueryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id).
		Scan(&c.ID, &c.TicketID, &c.AuthorID, &c.Body, &c.TechnicalSheet, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepo) List(ctx context.Context, ticketID *int64) ([]models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments`
	var args []any
	if ticketID != nil {
		args = append(args, *ticketID)
		query += ` WHERE ticket_id = $1`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.TicketID, &c.AuthorID, &c.Body, &c.TechnicalSheet, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CommentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

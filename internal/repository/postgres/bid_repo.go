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

type BidRepo struct {
	pool *pgxpool.Pool
}

func NewBidRepo(pool *pgxpool.Pool) *BidRepo {
	return &BidRepo{pool: pool}
}

const bidColumns = `id, creator_id, description, proposal, status, created_at`

func (r *BidRepo) Create(ctx context.Context, b *models.Bid) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO bids (creator_id, description, proposal, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, b.CreatorID, b.Description, b.Proposal, b.Status).Scan(&b.ID, &b.CreatedAt)
}

func (r *BidRepo) Get(ctx context.Context, id int64) (*models.Bid, error) {
	var b models.Bid
	err := r.pool.QueryRow(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = $1`, id).
		Scan(&b.ID, &b.CreatorID, &b.Description, &b.Proposal, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BidRepo) List(ctx context.Context, f repository.BidFilter) ([]models.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids`
	var args []any
	var wheres []string
	if f.CreatorID != nil {
		args = append(args, *f.CreatorID)
		wheres = append(wheres, fmt.Sprintf("creator_id = $%d", len(args)))
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

	var out []models.Bid
	for rows.Next() {
		var b models.Bid
		if err := rows.Scan(&b.ID, &b.CreatorID, &b.Description, &b.Proposal, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Update leaves created_at untouched: the creation date is immutable.
func (r *BidRepo) Update(ctx context.Context, b *models.Bid) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bids SET description = $1, proposal = $2, status = $3 WHERE id = $4
	`, b.Description, b.Proposal, b.Status, b.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *BidRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bids WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

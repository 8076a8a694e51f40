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

type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

const reportColumns = `id, date, open_tickets, closed_tickets, avg_resolution_hours`

// Ordering values accepted from the outside; anything else falls back
// to newest-first by date.
var reportOrderColumns = map[string]string{
	"id":                   "id",
	"date":                 "date",
	"open_tickets":         "open_tickets",
	"closed_tickets":       "closed_tickets",
	"avg_resolution_hours": "avg_resolution_hours",
}

// ReportOrder resolves an external ordering value into a whitelisted
// column and direction. A "-" prefix means descending; unknown columns
// fall back to date descending, so raw input never reaches the SQL.
func ReportOrder(ordering string) (column string, desc bool) {
	column, desc = "date", true
	if ordering == "" {
		return column, desc
	}
	name := ordering
	orderDesc := strings.HasPrefix(name, "-")
	name = strings.TrimPrefix(name, "-")
	if col, ok := reportOrderColumns[name]; ok {
		column, desc = col, orderDesc
	}
	return column, desc
}

func (r *ReportRepo) Create(ctx context.Context, rep *models.Report) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO reports (open_tickets, closed_tickets, avg_resolution_hours)
		VALUES ($1, $2, $3)
		RETURNING id, date
	`, rep.OpenTickets, rep.ClosedTickets, rep.AvgResolutionHours).Scan(&rep.ID, &rep.Date)
}

func (r *ReportRepo) Get(ctx context.Context, id int64) (*models.Report, error) {
	var rep models.Report
	err := r.pool.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id).
		Scan(&rep.ID, &rep.Date, &rep.OpenTickets, &rep.ClosedTickets, &rep.AvgResolutionHours)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *ReportRepo) List(ctx context.Context, f repository.ReportFilter) ([]models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports`
	var args []any
	if f.Date != "" {
		args = append(args, f.Date)
		query += fmt.Sprintf(" WHERE date = $%d::date", len(args))
	}

	column, desc := ReportOrder(f.Ordering)
	query += " ORDER BY " + column
	if desc {
		query += " DESC"
	} else {
		query += " ASC"
	}

	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Report
	for rows.Next() {
		var rep models.Report
		if err := rows.Scan(&rep.ID, &rep.Date, &rep.OpenTickets, &rep.ClosedTickets, &rep.AvgResolutionHours); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *ReportRepo) Update(ctx context.Context, rep *models.Report) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE reports SET open_tickets = $1, closed_tickets = $2, avg_resolution_hours = $3
		WHERE id = $4
	`, rep.OpenTickets, rep.ClosedTickets, rep.AvgResolutionHours, rep.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ReportRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

package handlers

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ticashop/backend/internal/models"
	"github.com/ticashop/backend/internal/repository"
	"github.com/ticashop/backend/internal/repository/postgres"
)

// In-memory repositories backing the handler tests. They mirror the
// postgres implementations' contract: pgx.ErrNoRows for missing rows,
// newest-first listings.

type fakeUsers struct {
	seq   int64
	items map[int64]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{items: map[int64]*models.User{}}
}

func (f *fakeUsers) add(u models.User) *models.User {
	if u.ID == 0 {
		f.seq++
		u.ID = f.seq
	} else if u.ID > f.seq {
		f.seq = u.ID
	}
	f.items[u.ID] = &u
	return &u
}

func (f *fakeUsers) Create(ctx context.Context, u *models.User) error {
	f.seq++
	u.ID = f.seq
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

func (f *fakeUsers) Get(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUsers) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.items {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUsers) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.items {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUsers) Update(ctx context.Context, u *models.User) error {
	if _, ok := f.items[u.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

func (f *fakeUsers) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.items, id)
	return nil
}

type fakeTickets struct {
	seq   int64
	items map[int64]*models.Ticket
}

func newFakeTickets() *fakeTickets {
	return &fakeTickets{items: map[int64]*models.Ticket{}}
}

func (f *fakeTickets) Create(ctx context.Context, t *models.Ticket) error {
	f.seq++
	t.ID = f.seq
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	cp := *t
	f.items[t.ID] = &cp
	return nil
}

func (f *fakeTickets) Get(ctx context.Context, id int64) (*models.Ticket, error) {
	t, ok := f.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTickets) List(ctx context.Context, flt repository.TicketFilter) ([]models.Ticket, error) {
	var out []models.Ticket
	for _, t := range f.items {
		if flt.CreatorID != nil && t.CreatorID != *flt.CreatorID {
			continue
		}
		if flt.AssigneeID != nil && (t.AssigneeID == nil || *t.AssigneeID != *flt.AssigneeID) {
			continue
		}
		if flt.Status != "" && !strings.Contains(strings.ToLower(t.Status), strings.ToLower(flt.Status)) {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeTickets) Update(ctx context.Context, t *models.Ticket) error {
	if _, ok := f.items[t.ID]; !ok {
		return pgx.ErrNoRows
	}
	t.UpdatedAt = time.Now().UTC()
	cp := *t
	f.items[t.ID] = &cp
	return nil
}

func (f *fakeTickets) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.items, id)
	return nil
}

type fakeComments struct {
	seq   int64
	items map[int64]*models.Comment
}

func newFakeComments() *fakeComments {
	return &fakeComments{items: map[int64]*models.Comment{}}
}

func (f *fakeComments) Create(ctx context.Context, c *models.Comment) error {
	f.seq++
	c.ID = f.seq
	c.CreatedAt = time.Now().UTC()
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeComments) Get(ctx context.Context, id int64) (*models.Comment, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *c
	return &cp, nil
}

func (f *fakeComments) List(ctx context.Context, ticketID *int64) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range f.items {
		if ticketID != nil && c.TicketID != *ticketID {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeComments) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.items, id)
	return nil
}

type fakeBids struct {
	seq   int64
	items map[int64]*models.Bid
}

func newFakeBids() *fakeBids {
	return &fakeBids{items: map[int64]*models.Bid{}}
}

func (f *fakeBids) Create(ctx context.Context, b *models.Bid) error {
	f.seq++
	b.ID = f.seq
	b.CreatedAt = time.Now().UTC()
	cp := *b
	f.items[b.ID] = &cp
	return nil
}

func (f *fakeBids) Get(ctx context.Context, id int64) (*models.Bid, error) {
	b, ok := f.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBids) List(ctx context.Context, flt repository.BidFilter) ([]models.Bid, error) {
	var out []models.Bid
	for _, b := range f.items {
		if flt.CreatorID != nil && b.CreatorID != *flt.CreatorID {
			continue
		}
		if flt.Status != "" && !strings.Contains(strings.ToLower(b.Status), strings.ToLower(flt.Status)) {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeBids) Update(ctx context.Context, b *models.Bid) error {
	if _, ok := f.items[b.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *b
	f.items[b.ID] = &cp
	return nil
}

func (f *fakeBids) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.items, id)
	return nil
}

type fakeReports struct {
	seq   int64
	items map[int64]*models.Report
}

func newFakeReports() *fakeReports {
	return &fakeReports{items: map[int64]*models.Report{}}
}

func (f *fakeReports) Create(ctx context.Context, r *models.Report) error {
	f.seq++
	r.ID = f.seq
	r.Date = time.Now().UTC().Truncate(24 * time.Hour)
	cp := *r
	f.items[r.ID] = &cp
	return nil
}

func (f *fakeReports) Get(ctx context.Context, id int64) (*models.Report, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReports) List(ctx context.Context, flt repository.ReportFilter) ([]models.Report, error) {
	var out []models.Report
	for _, r := range f.items {
		if flt.Date != "" && r.Date.Format("2006-01-02") != flt.Date {
			continue
		}
		out = append(out, *r)
	}
	// Same ordering contract as the SQL implementation.
	column, desc := postgres.ReportOrder(flt.Ordering)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if desc {
			a, b = b, a
		}
		switch column {
		case "id":
			return a.ID < b.ID
		case "open_tickets":
			return a.OpenTickets < b.OpenTickets
		case "closed_tickets":
			return a.ClosedTickets < b.ClosedTickets
		case "avg_resolution_hours":
			return a.AvgResolutionHours < b.AvgResolutionHours
		default:
			if a.Date.Equal(b.Date) {
				return a.ID < b.ID
			}
			return a.Date.Before(b.Date)
		}
	})
	if flt.Limit > 0 && len(out) > flt.Limit {
		out = out[:flt.Limit]
	}
	return out, nil
}

func (f *fakeReports) Update(ctx context.Context, r *models.Report) error {
	if _, ok := f.items[r.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *r
	f.items[r.ID] = &cp
	return nil
}

func (f *fakeReports) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.items, id)
	return nil
}

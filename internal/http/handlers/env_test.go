package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ticashop/backend/internal/auth"
	"github.com/ticashop/backend/internal/http/middleware"
	"github.com/ticashop/backend/internal/models"
	"github.com/ticashop/backend/internal/service"
)

const testSecret = "handler-test-secret"

type testEnv struct {
	router   *gin.Engine
	users    *fakeUsers
	tickets  *fakeTickets
	comments *fakeComments
	bids     *fakeBids
	reports  *fakeReports

	admin      *models.User
	support    *models.User
	support2   *models.User
	specialist *models.User
	technician *models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	e := &testEnv{
		users:    newFakeUsers(),
		tickets:  newFakeTickets(),
		comments: newFakeComments(),
		bids:     newFakeBids(),
		reports:  newFakeReports(),
	}
	e.admin = e.users.add(models.User{Name: "Ana", Email: "ana@example.com", Role: models.RoleAdmin})
	e.support = e.users.add(models.User{Name: "Sam", Email: "sam@example.com", Role: models.RoleSupport})
	e.support2 = e.users.add(models.User{Name: "Sol", Email: "sol@example.com", Role: models.RoleSupport})
	e.specialist = e.users.add(models.User{Name: "Eva", Email: "eva@example.com", Role: models.RoleSpecialist})
	e.technician = e.users.add(models.User{Name: "Tom", Email: "tom@example.com", Role: models.RoleTechnician})

	authSvc := service.NewAuthService(e.users, testSecret, time.Hour)
	h := &Handler{
		Users:     e.users,
		Tickets:   e.tickets,
		Bids:      e.bids,
		Reports:   e.reports,
		Comments:  e.comments,
		Auth:      authSvc,
		Validator: validator.New(),
		Logger:    zerolog.Nop(),
	}

	r := gin.New()
	r.Use(middleware.Identity(authSvc))

	api := r.Group("/api/v1")
	api.POST("/auth/login", h.Login)
	api.GET("/users", h.UsersList)
	api.POST("/users", h.UserCreate)
	api.GET("/users/by-email", h.UsersByEmail)
	api.GET("/users/by-role", h.UsersByRole)
	api.GET("/users/:id", h.UserGet)
	api.PUT("/users/:id", h.UserUpdate)
	api.DELETE("/users/:id", h.UserDelete)
	api.GET("/tickets", h.TicketsList)
	api.POST("/tickets", h.TicketCreate)
	api.GET("/tickets/:id", h.TicketGet)
	api.PATCH("/tickets/:id", h.TicketUpdate)
	api.DELETE("/tickets/:id", h.TicketDelete)
	api.PATCH("/tickets/:id/close", h.TicketClose)
	api.PATCH("/tickets/:id/assign-technician", h.TicketAssignTechnician)
	api.PATCH("/tickets/:id/escalate-priority", h.TicketEscalatePriority)
	api.GET("/bids", h.BidsList)
	api.POST("/bids", h.BidCreate)
	api.GET("/reports", h.ReportsList)
	api.POST("/reports", h.ReportCreate)
	api.GET("/comments", h.CommentsList)
	api.POST("/comments", h.CommentCreate)
	api.DELETE("/comments/:id", h.CommentDelete)

	e.router = r
	return e
}

func (e *testEnv) token(t *testing.T, u *models.User) string {
	t.Helper()
	tok, err := auth.Sign(testSecret, u.ID, u.Role, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func (e *testEnv) seedTicket(t *testing.T, creatorID int64) *models.Ticket {
	t.Helper()
	tk := &models.Ticket{CreatorID: creatorID}
	service.NormalizeNewTicket(tk, creatorID)
	if err := e.tickets.Create(context.Background(), tk); err != nil {
		t.Fatalf("seed ticket: %v", err)
	}
	return tk
}

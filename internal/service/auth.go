package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ticashop/backend/internal/auth"
	"github.com/ticashop/backend/internal/models"
	"github.com/ticashop/backend/internal/repository"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleNotAllowed     = errors.New("role has no access")
)

type AuthService struct {
	users  repository.UserRepository
	secret string
	ttl    time.Duration
}

func NewAuthService(users repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, ttl: ttl}
}

// Login validates email+password and issues a signed token. Lookup is
// by exact email; the password check is a bcrypt comparison against the
// stored hash.
func (a *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.TrimSpace(email)
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}
	if !LoginAllowed(u.Role) {
		return "", nil, ErrRoleNotAllowed
	}
	tok, err := auth.Sign(a.secret, u.ID, u.Role, a.ttl)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

// Resolve maps a bearer credential to a user. Any failure resolves to
// no identity, never an error: callers treat the request as anonymous.
func (a *AuthService) Resolve(ctx context.Context, credential string) *models.User {
	credential = strings.TrimSpace(credential)
	if len(credential) >= 7 && strings.EqualFold(credential[:7], "Bearer ") {
		credential = strings.TrimSpace(credential[7:])
	}
	if credential == "" {
		return nil
	}
	uid, _, err := auth.Parse(a.secret, credential)
	if err != nil {
		return nil
	}
	u, err := a.users.Get(ctx, uid)
	if err != nil {
		return nil
	}
	return u
}

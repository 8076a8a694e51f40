package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the bearer credential. The token is the only thing
// tying a request to a user: a valid token resolves to exactly one
// user id, anything else resolves to no identity.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func Sign(secret string, userID int64, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}).SignedString([]byte(secret))
}

// Parse verifies the token and returns the user id it points to.
func Parse(secret, token string) (int64, *Claims, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return 0, nil, jwt.ErrTokenInvalidClaims
	}
	uid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || uid <= 0 {
		return 0, nil, jwt.ErrTokenInvalidSubject
	}
	return uid, claims, nil
}

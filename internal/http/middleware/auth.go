package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ticashop/backend/internal/models"
	"github.com/ticashop/backend/internal/service"
)

const ctxUserKey = "current_user"

// Identity resolves the bearer credential into a user and stores it in
// the request context. It never rejects: an unresolvable credential
// leaves the request anonymous and the policy layer decides what that
// means per action.
func Identity(resolver *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u := resolver.Resolve(c.Request.Context(), c.GetHeader("Authorization")); u != nil {
			c.Set(ctxUserKey, u)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous
// requests.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

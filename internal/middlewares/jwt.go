package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	a "github.com/you/parking-booking/pkg/auth"
)

// JWTAuth resolves the principal once and stashes it on the context; handlers
// read "sub" and pass it down explicitly. Booking logic never consults the
// identity provider itself.
func JWTAuth(tokens *a.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		tok := strings.TrimPrefix(h, "Bearer ")
		claims, err := tokens.Parse(tok)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set("sub", claims.Sub)
		c.Set("role", claims.Role)
		c.Set("email", claims.Email)
		c.Next()
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		v, _ := c.Get("role")
		role, _ := v.(string)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// Subject returns the authenticated user id set by JWTAuth.
func Subject(c *gin.Context) string {
	v, _ := c.Get("sub")
	sub, _ := v.(string)
	return sub
}

// Role returns the authenticated role set by JWTAuth.
func Role(c *gin.Context) string {
	v, _ := c.Get("role")
	role, _ := v.(string)
	return role
}

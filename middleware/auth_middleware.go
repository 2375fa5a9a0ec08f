package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/auth"
	"github.com/demowin23/vilaw-be/lifecycle"
	"github.com/demowin23/vilaw-be/util"
)

type authRow struct {
	ID       int64  `db:"id"`
	Phone    string `db:"phone"`
	Role     string `db:"role"`
	IsActive bool   `db:"is_active"`
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}

// Auth validates the bearer token and loads the account from the database,
// so role changes and deactivation take effect on the next request.
func Auth(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			util.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			util.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		var row authRow
		err = db.GetContext(c.Request.Context(), &row,
			`SELECT id, phone, role, is_active FROM users WHERE id = $1`, claims.UserID)
		if err != nil || !row.IsActive {
			util.ErrorResponse(c, http.StatusUnauthorized, "Account not found or deactivated")
			c.Abort()
			return
		}

		c.Set("user_id", row.ID)
		c.Set("phone", row.Phone)
		c.Set("role", row.Role)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid token is present and
// continues anonymously otherwise. Listing endpoints use it to decide
// between public and privileged visibility.
func OptionalAuth(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		var row authRow
		err = db.GetContext(c.Request.Context(), &row,
			`SELECT id, phone, role, is_active FROM users WHERE id = $1`, claims.UserID)
		if err != nil || !row.IsActive {
			c.Next()
			return
		}

		c.Set("user_id", row.ID)
		c.Set("phone", row.Phone)
		c.Set("role", row.Role)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allow list.
// It must run after Auth.
func RequireRoles(roles ...lifecycle.Role) gin.HandlerFunc {
	allowed := make(map[lifecycle.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		if !allowed[CurrentRole(c)] {
			util.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, or 0 for anonymous callers.
func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}

// CurrentRole returns the caller's role, RoleNone for anonymous callers.
func CurrentRole(c *gin.Context) lifecycle.Role {
	return lifecycle.ParseRole(c.GetString("role"))
}

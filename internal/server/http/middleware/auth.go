package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/dribbleops/orderadmin/internal/pkg/auth"
	"github.com/dribbleops/orderadmin/internal/server/http/dto"
)

// UserIDContextKey is a gin context key for the authenticated operator id.
const UserIDContextKey = "userID"

// TokenParser validates bearer tokens and resolves their subject.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AuthRequired ensures the request carries a valid bearer token.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError("Not authenticated"))
			return
		}

		userID, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError("Invalid or expired token"))
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

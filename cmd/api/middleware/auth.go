package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"revana/cmd/api/auth"
	"revana/cmd/api/dto"
)

// ContextKeyUserEmail is the gin context key the auth middleware stores
// the verified subject email under.
const ContextKeyUserEmail = "userEmail"

// RequireAuth verifies the Bearer token and stores the subject email in
// the gin context. Requests without a valid token get 401.
func RequireAuth(manager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "missing bearer token"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		email, err := manager.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid token"})
			return
		}

		c.Set(ContextKeyUserEmail, email)
		c.Next()
	}
}

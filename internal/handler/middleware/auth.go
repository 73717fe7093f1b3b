package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"auction-house/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	authUseCase usecase.AuthUseCase
}

const (
	ctxAccountIDKey    = "account_id"
	ctxAccountEmailKey = "account_email"
)

func NewAuthMiddleware(authUseCase usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		accountID, email, err := m.authUseCase.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAccountIDKey, accountID)
		c.Set(ctxAccountEmailKey, email)
		c.Set("jwt_claims", map[string]any{
			"account_id": accountID.String(),
			"email":      email,
		})
		c.Next()
	}
}

// GetAccountID returns the authenticated account id from context.
func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, exists := c.Get(ctxAccountIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := accountID.(uuid.UUID)
	return id, ok
}

// GetAccountEmail returns the authenticated account email from context.
func GetAccountEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ctxAccountEmailKey)
	if !exists {
		return "", false
	}

	e, ok := email.(string)
	return e, ok
}

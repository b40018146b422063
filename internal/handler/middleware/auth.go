package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"court-booking/internal/domain/user"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errMissingToken     = errors.New("missing bearer token")
	errInvalidToken     = errors.New("invalid bearer token")
	errMissingActor     = errors.New("actor missing from context")
	errInsufficientRole = errors.New("insufficient role")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth admits staff requests carrying a valid bearer token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithCode(c, http.StatusUnauthorized, errMissingToken, httperr.CodeUnauthorized, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithCode(c, http.StatusUnauthorized, errInvalidToken, httperr.CodeUnauthorized, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingActor, "Internal server error", nil)
			return
		}

		if !actor.Role().AtLeast(minRole) {
			httperr.AbortWithCode(c, http.StatusForbidden, errInsufficientRole, httperr.CodeForbidden, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func GetActor(c *gin.Context) (user.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return user.Actor{}, false
	}
	actor, ok := v.(user.Actor)
	return actor, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

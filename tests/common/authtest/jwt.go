//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs a staff token for role. complexID scopes managers and
// owners to one complex and may be nil for super admins.
func (h *JWTHelper) GenerateToken(t *testing.T, role user.Role, complexID *uuid.UUID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(user.NewActor(uuid.New(), role, complexID))
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(user.NewActor(uuid.New(), role, nil))
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	complexID := uuid.New()
	actor := user.NewActor(uuid.New(), user.RoleManager, &complexID)

	token, err := svc.GenerateToken(actor)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, actor.ID(), claims.UserID)
	assert.Equal(t, "manager", claims.Role)
	require.NotNil(t, claims.ComplexID)
	assert.Equal(t, complexID, *claims.ComplexID)

	_, err = jwt.NewService("other-secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	expired, err := jwt.NewService("test-secret", -time.Minute).GenerateToken(actor)
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

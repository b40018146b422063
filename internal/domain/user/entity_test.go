//go:build unit

package user_test

import (
	"testing"

	"court-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	role, err := user.NewRole("owner")
	require.NoError(t, err)
	assert.True(t, role.AtLeast(user.RoleManager))
	assert.True(t, role.AtLeast(user.RoleOwner))
	assert.False(t, role.AtLeast(user.RoleSuperAdmin))

	_, err = user.NewRole("viewer")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
	assert.False(t, user.Role("viewer").AtLeast(user.RoleManager))
}

func TestActorCanManage(t *testing.T) {
	own := uuid.New()
	other := uuid.New()

	manager := user.NewActor(uuid.New(), user.RoleManager, &own)
	assert.True(t, manager.CanManage(own))
	assert.False(t, manager.CanManage(other))

	unbound := user.NewActor(uuid.New(), user.RoleOwner, nil)
	assert.False(t, unbound.CanManage(own))

	root := user.NewActor(uuid.New(), user.RoleSuperAdmin, nil)
	assert.True(t, root.CanManage(other))
}

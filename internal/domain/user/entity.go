package user

import (
	"github.com/google/uuid"
)

// Actor is an authenticated staff member acting on the back office.
type Actor struct {
	id        uuid.UUID
	role      Role
	complexID *uuid.UUID
}

func NewActor(id uuid.UUID, role Role, complexID *uuid.UUID) Actor {
	return Actor{id: id, role: role, complexID: complexID}
}

// CanManage reports whether the actor may operate on courts of complexID.
// Super admins are not bound to a complex.
func (a Actor) CanManage(complexID uuid.UUID) bool {
	if a.role == RoleSuperAdmin {
		return true
	}
	return a.complexID != nil && *a.complexID == complexID
}

func (a Actor) ID() uuid.UUID         { return a.id }
func (a Actor) Role() Role            { return a.role }
func (a Actor) ComplexID() *uuid.UUID { return a.complexID }

package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var roleLevels = map[Role]int{
	RoleUser:  1,
	RoleAdmin: 2,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r ranks at or above min in the role hierarchy.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleLevels[r]
	want, minOK := roleLevels[min]
	return ok && minOK && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the authenticated caller as supplied by the session context.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.AtLeast(RoleAdmin)
}

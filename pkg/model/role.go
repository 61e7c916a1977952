package model

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// RoleLength defines the byte length of a serialized Role.
const RoleLength = 1

// Role is a permission level scoped to a single (aircraft, identity) pair.
type Role uint8

const (
	// RoleNone is the implicit role of every identity without an assignment.
	RoleNone Role = iota
	// RoleOwner is held by the current owner of an aircraft and satisfies
	// every other role requirement.
	RoleOwner
	// RoleMechanic may append maintenance records.
	RoleMechanic
	// RoleInspector may append maintenance records.
	RoleInspector
)

func RoleFromBytes(bytes []byte) (Role, int, error) {
	if len(bytes) < RoleLength {
		return RoleNone, 0, ierrors.New("invalid role length")
	}

	role := Role(bytes[0])
	if role > RoleInspector {
		return RoleNone, 0, ierrors.Errorf("unknown role %d", bytes[0])
	}

	return role, RoleLength, nil
}

// RoleFromString parses a role name as produced by Role.String.
func RoleFromString(roleString string) (Role, error) {
	switch roleString {
	case "owner":
		return RoleOwner, nil
	case "mechanic":
		return RoleMechanic, nil
	case "inspector":
		return RoleInspector, nil
	default:
		return RoleNone, ierrors.Errorf("unknown role %q", roleString)
	}
}

func (r Role) Bytes() ([]byte, error) {
	return []byte{byte(r)}, nil
}

// Grantable returns true if the role can be assigned via a role grant.
// Ownership is only ever assumed through registration or transfer.
func (r Role) Grantable() bool {
	return r == RoleMechanic || r == RoleInspector
}

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleOwner:
		return "owner"
	case RoleMechanic:
		return "mechanic"
	case RoleInspector:
		return "inspector"
	default:
		return "unknown"
	}
}

package entities

import (
	"strings"
)

// Role identifies which part of the clinic an actor belongs to
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDoctor     Role = "doctor"
	RolePatient    Role = "patient"
	RolePharmacist Role = "pharmacist"

	// RoleNone is the zero state before login and after logout
	RoleNone Role = ""
)

// ParseRole parses a role string into one of the four fixed roles
func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleDoctor:
		return RoleDoctor, true
	case RolePatient:
		return RolePatient, true
	case RolePharmacist:
		return RolePharmacist, true
	}
	return RoleNone, false
}

// Identity is the acting user: a role plus a display name.
// There are no stable user ids; actors are identified by display name only.
type Identity struct {
	Role Role   `json:"role"`
	Name string `json:"name"`
}

// IsZero reports whether no identity is active
func (i Identity) IsZero() bool {
	return i.Role == RoleNone && i.Name == ""
}

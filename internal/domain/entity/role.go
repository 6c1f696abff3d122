// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a user holds.
type Role string

const (
	// RoleCreator is the default role assigned at registration.
	RoleCreator Role = "creator"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a recognized value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCreator, RoleAdmin:
		return true
	default:
		return false
	}
}

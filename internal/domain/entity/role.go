// Package entity contains the core business objects of the project.
package entity

// Role represents the kind of account in the system.
type Role string

const (
	// RoleStandard indicates a regular, approval-gated account.
	RoleStandard Role = "standard"
	// RoleAdmin indicates the single bootstrap administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStandard, RoleAdmin:
		return true
	default:
		return false
	}
}

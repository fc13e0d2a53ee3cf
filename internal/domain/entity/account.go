// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing one registered identity.
// It carries the credential hash, the role, and the approval lifecycle gate that
// decides whether a standard account may authenticate at all.
type Account struct {
	ID            uuid.UUID     // The Global Unique Identifier (GUID) for the account.
	Username      string        // The unique, case-sensitive login identifier. Immutable after creation.
	PasswordHash  string        // The bcrypt-hashed password. Never leaves the persistence boundary.
	Role          Role          // Either "standard" or "admin". Exactly one admin account exists.
	ApprovalState ApprovalState // The pending/approved/rejected gate. Admins bypass this field.
	CreatedAt     time.Time     // Timestamp of when this account was created. Immutable.
}

// IsAdmin reports whether the account holds the admin role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAuthenticate reports whether the account may pass the login gate.
// Admins are implicitly approved; standard accounts must be approved.
func (a *Account) CanAuthenticate() bool {
	return a.IsAdmin() || a.ApprovalState == ApprovalApproved
}

// HistoryRecord is one processed capture artifact owned by a single Account.
// Records are never shared across accounts and are evicted by the retention
// sweeper once they age past the retention window.
type HistoryRecord struct {
	ID         uuid.UUID // The unique ID for this history record.
	AccountID  uuid.UUID // Links the record to the Account that owns it.
	PayloadRef string    // Opaque reference to the externally stored capture content.
	ResultText string    // The recognized text produced by the external vision collaborator.
	CreatedAt  time.Time // Timestamp of when the record was created; drives retention eviction.
}

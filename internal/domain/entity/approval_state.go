// Package entity contains the core business objects of the project.
package entity

// ApprovalState represents the lifecycle gate on a standard account.
// New accounts start pending; an administrator moves them to approved or
// rejected and may re-review between those two at will. Pending is only
// ever entered at creation.
type ApprovalState string

const (
	// ApprovalPending indicates the account awaits administrator review.
	ApprovalPending ApprovalState = "pending"
	// ApprovalApproved indicates the account may authenticate.
	ApprovalApproved ApprovalState = "approved"
	// ApprovalRejected indicates the account was denied access.
	ApprovalRejected ApprovalState = "rejected"
)

// String returns the string representation of the ApprovalState.
func (s ApprovalState) String() string {
	return string(s)
}

// IsValid checks if the ApprovalState is a valid value.
func (s ApprovalState) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

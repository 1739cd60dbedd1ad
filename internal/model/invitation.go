package model

import "time"

// InvitationStatus tracks the lifecycle of an invitation.
type InvitationStatus string

const (
	// InvitationPending means the invite was sent but not yet acted on.
	InvitationPending InvitationStatus = "pending"
	// InvitationAccepted means the invitee registered an account.
	InvitationAccepted InvitationStatus = "accepted"
	// InvitationExpired means the invite is no longer usable.
	InvitationExpired InvitationStatus = "expired"
)

// Valid reports whether the status is one of the known statuses.
func (s InvitationStatus) Valid() bool {
	switch s {
	case InvitationPending, InvitationAccepted, InvitationExpired:
		return true
	}
	return false
}

// Invitation records an admin inviting an email address onto the team.
// Delivery is simulated; at most one pending invitation may exist per
// email at any time.
type Invitation struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Role      Role             `json:"role"`
	InvitedBy string           `json:"invitedBy"`
	CreatedAt time.Time        `json:"createdAt"`
	Status    InvitationStatus `json:"status"`
}

// Package model defines the core entities tracked by the dashboard.
package model

import "time"

// Role determines what an actor is allowed to do.
type Role string

const (
	// RoleAdmin can manage users, invitations, and every record.
	RoleAdmin Role = "admin"
	// RoleUser can record transactions and manage tasks.
	RoleUser Role = "user"
	// RoleViewer has read-only access.
	RoleViewer Role = "viewer"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleViewer:
		return true
	}
	return false
}

// User is a registered team member. The password is an opaque secret
// compared by exact match; there is deliberately no hashing here.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	InvitedBy string    `json:"invitedBy,omitempty"`
}

// Actor is the identity a permission check runs against.
type Actor struct {
	ID   string
	Role Role
}

// Actor returns the user's identity for permission checks.
func (u User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

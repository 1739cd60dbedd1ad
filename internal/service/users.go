package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"finboard/internal/common"
	"finboard/internal/model"
	"finboard/internal/permission"
	"finboard/internal/state"
	"finboard/internal/storage"
)

// UserService handles invitations and role administration.
type UserService struct {
	state *state.State
	blobs storage.BlobStore
}

// NewUserService creates a UserService.
func NewUserService(st *state.State, blobs storage.BlobStore) *UserService {
	return &UserService{state: st, blobs: blobs}
}

// Invite records an invitation for an email address. Delivery is
// simulated: the invitation simply sits in the store as pending. At most
// one pending invitation may exist per email, and already-registered
// emails cannot be invited.
func (s *UserService) Invite(ctx context.Context, actor model.Actor, email string, role model.Role) (*model.Invitation, error) {
	if strings.TrimSpace(email) == "" {
		return nil, common.Validationf("required fields missing: email")
	}
	if !role.Valid() {
		return nil, common.Validationf("unknown role %q", role)
	}
	if !permission.CanManageUsers(actor) {
		return nil, common.Permissionf("only administrators can invite users")
	}

	if _, exists := s.state.UserByEmail(email); exists {
		return nil, common.Conflictf("email %s is already registered", email)
	}
	if _, pending := s.state.PendingInvitationForEmail(email); pending {
		return nil, common.Conflictf("a pending invitation for %s already exists", email)
	}

	inv := model.Invitation{
		ID:        s.state.NextID(),
		Email:     email,
		Role:      role,
		InvitedBy: actor.ID,
		CreatedAt: time.Now(),
		Status:    model.InvitationPending,
	}
	s.state.AddInvitation(inv)
	persist(ctx, s.state, s.blobs, storage.KeyInvitations, storage.KeyIDCounter)

	slog.Info("invitation sent (simulated)", "email", inv.Email, "role", inv.Role)
	return &inv, nil
}

// UpdateRole changes a user's role. Only admins may do this, and never to
// themselves: self-demotion would let the last admin lock everyone out.
func (s *UserService) UpdateRole(ctx context.Context, actor model.Actor, userID string, role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, common.Validationf("unknown role %q", role)
	}
	if !permission.CanChangeUserRole(actor) {
		return nil, common.Permissionf("only administrators can change roles")
	}
	if userID == actor.ID {
		return nil, common.Permissionf("administrators cannot change their own role")
	}

	if !s.state.SetUserRole(userID, role) {
		return nil, common.NotFoundf("user %s not found", userID)
	}
	persist(ctx, s.state, s.blobs, storage.KeyUsers)

	user, _ := s.state.UserByID(userID)
	slog.Debug("user role changed", "id", userID, "role", role)
	return &user, nil
}

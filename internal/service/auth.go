package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"finboard/internal/common"
	"finboard/internal/model"
	"finboard/internal/session"
	"finboard/internal/state"
	"finboard/internal/storage"
)

// AuthService handles registration, login, and logout.
type AuthService struct {
	state   *state.State
	blobs   storage.BlobStore
	session *session.Session
}

// NewAuthService creates an AuthService bound to the given session.
func NewAuthService(st *state.State, blobs storage.BlobStore, sess *session.Session) *AuthService {
	return &AuthService{state: st, blobs: blobs, session: sess}
}

// RegisterInput is the registration form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register creates a new user account. The first account ever registered
// is unconditionally an admin; later ones default to the user role unless
// a pending invitation for the email says otherwise, in which case the
// invitation's role applies and the invitation is consumed.
//
// Registration does not log the new user in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, common.Validationf("required fields missing: %s", strings.Join(missing, ", "))
	}
	if in.Password != in.ConfirmPassword {
		return nil, common.Validationf("passwords do not match")
	}

	if _, exists := s.state.UserByEmail(in.Email); exists {
		return nil, common.Conflictf("email %s is already registered", in.Email)
	}

	user := model.User{
		ID:        s.state.NextID(),
		Email:     in.Email,
		Password:  in.Password,
		Name:      in.Name,
		Role:      model.RoleUser,
		CreatedAt: time.Now(),
	}

	invitationConsumed := false
	if s.state.UserCount() == 0 {
		// First-user bootstrap: someone has to be able to administer.
		user.Role = model.RoleAdmin
	} else if inv, ok := s.state.PendingInvitationForEmail(in.Email); ok {
		user.Role = inv.Role
		user.InvitedBy = inv.InvitedBy
		s.state.SetInvitationStatus(inv.ID, model.InvitationAccepted)
		invitationConsumed = true
	}

	s.state.AddUser(user)

	keys := []storage.Key{storage.KeyUsers, storage.KeyIDCounter}
	if invitationConsumed {
		keys = append(keys, storage.KeyInvitations)
	}
	persist(ctx, s.state, s.blobs, keys...)

	slog.Debug("user registered", "id", user.ID, "email", user.Email, "role", user.Role)
	return &user, nil
}

// Login authenticates by exact email and password match and establishes
// the session. There is no hashing, lockout, or rate limiting.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, ok := s.state.UserByEmail(email)
	if !ok || user.Password != password {
		return nil, common.Authenticationf("incorrect email or password")
	}

	s.session.Establish(ctx, user)
	slog.Debug("user logged in", "id", user.ID, "role", user.Role)
	return &user, nil
}

// Logout clears the session and its persisted snapshot.
func (s *AuthService) Logout(ctx context.Context) {
	s.session.Clear(ctx)
}

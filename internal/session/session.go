// Package session tracks the authenticated actor for the lifetime of the
// process and persists the login snapshot between runs.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"finboard/internal/model"
	"finboard/internal/permission"
	"finboard/internal/storage"
)

// Capabilities are the role-derived flags the rendering layer keys its
// controls off. They are a snapshot of the permission engine's role gates
// for the current actor.
type Capabilities struct {
	ManageUsers         bool
	AddTransactions     bool
	ViewAllTransactions bool
	ManageTasks         bool
}

// Session holds the current actor. The persisted snapshot is trusted as-is
// on restore; a role change only takes effect at next login, exactly like
// the original dashboard.
type Session struct {
	mu    sync.RWMutex
	blobs storage.BlobStore
	user  *model.User
}

// New creates a logged-out session.
func New(blobs storage.BlobStore) *Session {
	return &Session{blobs: blobs}
}

// Restore rebuilds the session from the persisted auth flag and
// current-user snapshot. Both must be present; otherwise the session
// starts logged out.
func Restore(ctx context.Context, blobs storage.BlobStore) (*Session, error) {
	s := New(blobs)

	_, hasAuth, err := blobs.Load(ctx, storage.KeyAuth)
	if err != nil {
		return nil, err
	}
	snapshot, hasUser, err := blobs.Load(ctx, storage.KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if !hasAuth || !hasUser {
		return s, nil
	}

	var u model.User
	if err := json.Unmarshal(snapshot, &u); err != nil {
		// A corrupt snapshot just means logging in again.
		slog.Warn("discarding unreadable session snapshot", "error", err)
		return s, nil
	}
	s.user = &u
	return s, nil
}

// Establish records a successful login and persists the snapshot.
func (s *Session) Establish(ctx context.Context, u model.User) {
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()

	if err := s.blobs.Save(ctx, storage.KeyAuth, []byte("true")); err != nil {
		slog.Error("failed to persist auth flag", "error", err)
	}
	snapshot, err := json.Marshal(u)
	if err == nil {
		err = s.blobs.Save(ctx, storage.KeyCurrentUser, snapshot)
	}
	if err != nil {
		slog.Error("failed to persist session snapshot", "error", err)
	}
}

// Clear logs out and removes the persisted snapshot.
func (s *Session) Clear(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.blobs.Delete(ctx, storage.KeyAuth); err != nil {
		slog.Error("failed to clear auth flag", "error", err)
	}
	if err := s.blobs.Delete(ctx, storage.KeyCurrentUser); err != nil {
		slog.Error("failed to clear session snapshot", "error", err)
	}
}

// LoggedIn reports whether an actor is authenticated.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// User returns the current user, if any.
func (s *Session) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// Actor returns the current identity for permission checks.
func (s *Session) Actor() (model.Actor, bool) {
	u, ok := s.User()
	if !ok {
		return model.Actor{}, false
	}
	return u.Actor(), true
}

// Capabilities returns the role-derived flags for the current actor. A
// logged-out session has no capabilities.
func (s *Session) Capabilities() Capabilities {
	actor, ok := s.Actor()
	if !ok {
		return Capabilities{}
	}
	return Capabilities{
		ManageUsers:         permission.CanManageUsers(actor),
		AddTransactions:     permission.CanAddTransactions(actor),
		ViewAllTransactions: permission.CanViewAllTransactions(actor),
		ManageTasks:         permission.CanManageTasks(actor),
	}
}

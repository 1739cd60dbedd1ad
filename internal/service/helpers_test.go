package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"finboard/internal/model"
	"finboard/internal/session"
	"finboard/internal/state"
	"finboard/internal/storage"
)

type testEnv struct {
	services *Services
	state    *state.State
	blobs    *storage.MemoryStore
	session  *session.Session
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := state.New()
	blobs := storage.NewMemoryStore()
	sess := session.New(blobs)
	return &testEnv{
		services: New(st, blobs, sess),
		state:    st,
		blobs:    blobs,
		session:  sess,
	}
}

// register creates an account with a known password and returns it.
func (e *testEnv) register(t *testing.T, name, email string) model.User {
	t.Helper()
	u, err := e.services.Auth.Register(context.Background(), RegisterInput{
		Name:            name,
		Email:           email,
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)
	return *u
}

// team registers the standard admin + user + viewer trio.
func (e *testEnv) team(t *testing.T) (admin, user, viewer model.User) {
	t.Helper()
	admin = e.register(t, "Ana", "ana@acme.com")
	user = e.register(t, "Bob", "bob@acme.com")

	viewerUser := e.register(t, "Vera", "vera@acme.com")
	_, err := e.services.Users.UpdateRole(context.Background(), admin.Actor(), viewerUser.ID, model.RoleViewer)
	require.NoError(t, err)
	viewerUser.Role = model.RoleViewer
	return admin, user, viewerUser
}

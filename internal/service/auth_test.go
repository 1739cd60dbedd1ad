package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/internal/common"
	"finboard/internal/model"
	"finboard/internal/state"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("first user becomes admin, later ones default to user", func(t *testing.T) {
		env := newTestEnv(t)

		first := env.register(t, "Ana", "ana@acme.com")
		assert.Equal(t, model.RoleAdmin, first.Role)
		assert.NotEmpty(t, first.ID)
		assert.False(t, first.CreatedAt.IsZero())

		second := env.register(t, "Bob", "bob@acme.com")
		assert.Equal(t, model.RoleUser, second.Role)

		third := env.register(t, "Carla", "carla@acme.com")
		assert.Equal(t, model.RoleUser, third.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		env := newTestEnv(t)
		env.register(t, "Ana", "ana@acme.com")

		_, err := env.services.Auth.Register(ctx, RegisterInput{
			Name: "Impostor", Email: "ana@acme.com",
			Password: "x", ConfirmPassword: "x",
		})
		assert.ErrorIs(t, err, common.ErrConflict)
		assert.Equal(t, 1, env.state.UserCount())
	})

	t.Run("missing fields", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.services.Auth.Register(ctx, RegisterInput{Email: "ana@acme.com"})
		require.ErrorIs(t, err, common.ErrValidation)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "password")
		assert.Zero(t, env.state.UserCount())
	})

	t.Run("password confirmation mismatch", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.services.Auth.Register(ctx, RegisterInput{
			Name: "Ana", Email: "ana@acme.com",
			Password: "secret123", ConfirmPassword: "secret124",
		})
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("registration does not log in", func(t *testing.T) {
		env := newTestEnv(t)
		env.register(t, "Ana", "ana@acme.com")
		assert.False(t, env.session.LoggedIn())
	})

	t.Run("registration is persisted", func(t *testing.T) {
		env := newTestEnv(t)
		env.register(t, "Ana", "ana@acme.com")

		reloaded, err := state.Load(ctx, env.blobs)
		require.NoError(t, err)
		require.Len(t, reloaded.Users(), 1)
		assert.Equal(t, "ana@acme.com", reloaded.Users()[0].Email)
		// The counter resumes past the allocated id.
		assert.Equal(t, "2", reloaded.NextID())
	})
}

func TestRegisterWithInvitation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	admin, _, _ := env.team(t)

	inv, err := env.services.Users.Invite(ctx, admin.Actor(), "dora@acme.com", model.RoleViewer)
	require.NoError(t, err)

	dora := env.register(t, "Dora", "dora@acme.com")
	assert.Equal(t, model.RoleViewer, dora.Role, "invitation role wins over the default")
	assert.Equal(t, admin.ID, dora.InvitedBy)

	// The invitation is consumed.
	invitations := env.state.Invitations()
	require.Len(t, invitations, 1)
	assert.Equal(t, inv.ID, invitations[0].ID)
	assert.Equal(t, model.InvitationAccepted, invitations[0].Status)

	_, pending := env.state.PendingInvitationForEmail("dora@acme.com")
	assert.False(t, pending)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("exact credential match", func(t *testing.T) {
		env := newTestEnv(t)
		ana := env.register(t, "Ana", "ana@acme.com")

		got, err := env.services.Auth.Login(ctx, "ana@acme.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, ana.ID, got.ID)
		require.True(t, env.session.LoggedIn())

		current, _ := env.session.User()
		assert.Equal(t, ana.ID, current.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		env := newTestEnv(t)
		env.register(t, "Ana", "ana@acme.com")

		_, err := env.services.Auth.Login(ctx, "ana@acme.com", "wrong")
		assert.ErrorIs(t, err, common.ErrAuthentication)
		assert.False(t, env.session.LoggedIn())
	})

	t.Run("unknown email", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.services.Auth.Login(ctx, "ghost@acme.com", "secret123")
		assert.ErrorIs(t, err, common.ErrAuthentication)
	})

	t.Run("logout clears the session", func(t *testing.T) {
		env := newTestEnv(t)
		env.register(t, "Ana", "ana@acme.com")

		_, err := env.services.Auth.Login(ctx, "ana@acme.com", "secret123")
		require.NoError(t, err)

		env.services.Auth.Logout(ctx)
		assert.False(t, env.session.LoggedIn())
	})
}

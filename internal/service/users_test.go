package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/internal/common"
	"finboard/internal/model"
)

func TestInvite(t *testing.T) {
	ctx := context.Background()

	t.Run("admin invites", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _, _ := env.team(t)

		inv, err := env.services.Users.Invite(ctx, admin.Actor(), "x@y.com", model.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, model.InvitationPending, inv.Status)
		assert.Equal(t, admin.ID, inv.InvitedBy)
		assert.NotEmpty(t, inv.ID)
	})

	t.Run("second pending invitation for the same email", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _, _ := env.team(t)

		_, err := env.services.Users.Invite(ctx, admin.Actor(), "x@y.com", model.RoleUser)
		require.NoError(t, err)

		_, err = env.services.Users.Invite(ctx, admin.Actor(), "x@y.com", model.RoleViewer)
		assert.ErrorIs(t, err, common.ErrConflict)
		assert.Len(t, env.state.Invitations(), 1)
	})

	t.Run("email already registered", func(t *testing.T) {
		env := newTestEnv(t)
		admin, user, _ := env.team(t)

		_, err := env.services.Users.Invite(ctx, admin.Actor(), user.Email, model.RoleUser)
		assert.ErrorIs(t, err, common.ErrConflict)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		env := newTestEnv(t)
		_, user, viewer := env.team(t)

		_, err := env.services.Users.Invite(ctx, user.Actor(), "x@y.com", model.RoleUser)
		assert.ErrorIs(t, err, common.ErrPermission)

		_, err = env.services.Users.Invite(ctx, viewer.Actor(), "x@y.com", model.RoleUser)
		assert.ErrorIs(t, err, common.ErrPermission)

		assert.Empty(t, env.state.Invitations())
	})

	t.Run("validation", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _, _ := env.team(t)

		_, err := env.services.Users.Invite(ctx, admin.Actor(), "", model.RoleUser)
		assert.ErrorIs(t, err, common.ErrValidation)

		_, err = env.services.Users.Invite(ctx, admin.Actor(), "x@y.com", "owner")
		assert.ErrorIs(t, err, common.ErrValidation)
	})
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("admin promotes a user", func(t *testing.T) {
		env := newTestEnv(t)
		admin, user, _ := env.team(t)

		updated, err := env.services.Users.UpdateRole(ctx, admin.Actor(), user.ID, model.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, updated.Role)

		stored, _ := env.state.UserByID(user.ID)
		assert.Equal(t, model.RoleAdmin, stored.Role)
	})

	t.Run("non-admin denied, state unchanged", func(t *testing.T) {
		env := newTestEnv(t)
		admin, user, _ := env.team(t)

		_, err := env.services.Users.UpdateRole(ctx, user.Actor(), admin.ID, model.RoleViewer)
		assert.ErrorIs(t, err, common.ErrPermission)

		stored, _ := env.state.UserByID(admin.ID)
		assert.Equal(t, model.RoleAdmin, stored.Role)
	})

	t.Run("self-demotion blocked", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _, _ := env.team(t)

		_, err := env.services.Users.UpdateRole(ctx, admin.Actor(), admin.ID, model.RoleUser)
		assert.ErrorIs(t, err, common.ErrPermission)

		stored, _ := env.state.UserByID(admin.ID)
		assert.Equal(t, model.RoleAdmin, stored.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _, _ := env.team(t)

		_, err := env.services.Users.UpdateRole(ctx, admin.Actor(), "999", model.RoleUser)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("unknown role", func(t *testing.T) {
		env := newTestEnv(t)
		admin, user, _ := env.team(t)

		_, err := env.services.Users.UpdateRole(ctx, admin.Actor(), user.ID, "superuser")
		assert.ErrorIs(t, err, common.ErrValidation)
	})
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/internal/common"
	"finboard/internal/model"
)

func validTxn() AddTransactionInput {
	return AddTransactionInput{
		Type:          model.TypeEntrada,
		Category:      "Vendas",
		Description:   "venda de pacote",
		Amount:        1000,
		PaymentMethod: "PIX",
	}
}

func TestAddTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("owner is denormalized and frozen", func(t *testing.T) {
		env := newTestEnv(t)
		_, user, _ := env.team(t)

		txn, err := env.services.Transactions.Add(ctx, user.Actor(), validTxn())
		require.NoError(t, err)
		assert.Equal(t, user.ID, txn.UserID)
		assert.Equal(t, "Bob", txn.UserName)
		assert.NotEmpty(t, txn.ID)
		assert.False(t, txn.Date.IsZero())
	})

	t.Run("explicit date is kept", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _, _ := env.team(t)

		in := validTxn()
		in.Date = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		txn, err := env.services.Transactions.Add(ctx, admin.Actor(), in)
		require.NoError(t, err)
		assert.True(t, txn.Date.Equal(in.Date))
	})

	t.Run("missing fields are named", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _, _ := env.team(t)

		_, err := env.services.Transactions.Add(ctx, admin.Actor(), AddTransactionInput{Type: model.TypeEntrada})
		require.ErrorIs(t, err, common.ErrValidation)
		for _, field := range []string{"category", "description", "amount", "paymentMethod"} {
			assert.Contains(t, err.Error(), field)
		}
		assert.Empty(t, env.state.Transactions())
	})

	t.Run("zero or negative amount rejected", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _, _ := env.team(t)

		in := validTxn()
		in.Amount = 0
		_, err := env.services.Transactions.Add(ctx, admin.Actor(), in)
		assert.ErrorIs(t, err, common.ErrValidation)

		in.Amount = -50
		_, err = env.services.Transactions.Add(ctx, admin.Actor(), in)
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _, _ := env.team(t)

		in := validTxn()
		in.Type = "transferencia"
		_, err := env.services.Transactions.Add(ctx, admin.Actor(), in)
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("viewer denied", func(t *testing.T) {
		env := newTestEnv(t)
		_, _, viewer := env.team(t)

		_, err := env.services.Transactions.Add(ctx, viewer.Actor(), validTxn())
		assert.ErrorIs(t, err, common.ErrPermission)
		assert.Empty(t, env.state.Transactions())
	})

	t.Run("unknown actor", func(t *testing.T) {
		env := newTestEnv(t)
		env.team(t)

		ghost := model.Actor{ID: "999", Role: model.RoleUser}
		_, err := env.services.Transactions.Add(ctx, ghost, validTxn())
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes own", func(t *testing.T) {
		env := newTestEnv(t)
		_, user, _ := env.team(t)

		txn, err := env.services.Transactions.Add(ctx, user.Actor(), validTxn())
		require.NoError(t, err)

		require.NoError(t, env.services.Transactions.Delete(ctx, user.Actor(), txn.ID))
		assert.Empty(t, env.state.Transactions())
	})

	t.Run("another user is denied and nothing changes", func(t *testing.T) {
		env := newTestEnv(t)
		admin, userA, _ := env.team(t)
		userB := env.register(t, "Beto", "beto@acme.com")

		txn, err := env.services.Transactions.Add(ctx, userA.Actor(), validTxn())
		require.NoError(t, err)

		err = env.services.Transactions.Delete(ctx, userB.Actor(), txn.ID)
		assert.ErrorIs(t, err, common.ErrPermission)
		assert.Len(t, env.state.Transactions(), 1)

		// The same attempt by an admin succeeds.
		require.NoError(t, env.services.Transactions.Delete(ctx, admin.Actor(), txn.ID))
		assert.Empty(t, env.state.Transactions())
	})

	t.Run("unknown transaction", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _, _ := env.team(t)

		err := env.services.Transactions.Delete(ctx, admin.Actor(), "999")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

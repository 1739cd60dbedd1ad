package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/internal/metrics"
	"finboard/internal/model"
	"finboard/internal/state"
)

// Full walk through the main dashboard flow: bootstrap, record, measure,
// reload.
func TestDashboardFlow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// U1 registers first and is forced admin; U2 defaults to user.
	u1 := env.register(t, "Ana", "ana@acme.com")
	u2 := env.register(t, "Bob", "bob@acme.com")
	require.Equal(t, model.RoleAdmin, u1.Role)
	require.Equal(t, model.RoleUser, u2.Role)

	_, err := env.services.Transactions.Add(ctx, u1.Actor(), AddTransactionInput{
		Type: model.TypeEntrada, Category: "Vendas",
		Description: "venda de pacote", Amount: 1000, PaymentMethod: "PIX",
	})
	require.NoError(t, err)

	_, err = env.services.Transactions.Add(ctx, u2.Actor(), AddTransactionInput{
		Type: model.TypeSaida, Category: "Ferramentas",
		Description: "tráfego pago", Amount: 300, PaymentMethod: "PIX",
		IsAdvertising: true,
	})
	require.NoError(t, err)

	s := metrics.Summarize(env.state.Transactions())
	assert.InDelta(t, 700, s.Balance, 1e-9)
	assert.InDelta(t, 700, s.NetProfit, 1e-9)
	assert.InDelta(t, 300, s.AdSpend, 1e-9)
	assert.InDelta(t, 233.33, s.ROI, 0.01)
	assert.InDelta(t, 3.33, s.ROAS, 0.01)

	// Everything survives a restart, including the id counter.
	reloaded, err := state.Load(ctx, env.blobs)
	require.NoError(t, err)
	assert.Len(t, reloaded.Users(), 2)
	assert.Len(t, reloaded.Transactions(), 2)

	nextID := reloaded.NextID()
	for _, txn := range reloaded.Transactions() {
		assert.NotEqual(t, nextID, txn.ID)
	}
	for _, u := range reloaded.Users() {
		assert.NotEqual(t, nextID, u.ID)
	}
}

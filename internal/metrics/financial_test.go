package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finboard/internal/model"
)

func TestSummarize(t *testing.T) {
	t.Run("dashboard scenario", func(t *testing.T) {
		// Admin records R$1000 of sales, a user spends R$300 on ads.
		txns := []model.Transaction{
			{ID: "3", Type: model.TypeEntrada, Category: "Vendas", Amount: 1000, UserID: "1"},
			{ID: "4", Type: model.TypeSaida, Category: "Ferramentas", Amount: 300, IsAdvertising: true, UserID: "2"},
		}

		s := Summarize(txns)
		assert.InDelta(t, 700, s.Balance, 1e-9)
		assert.InDelta(t, 700, s.NetProfit, 1e-9)
		assert.InDelta(t, 300, s.AdSpend, 1e-9)
		assert.InDelta(t, 233.33, s.ROI, 0.01)
		assert.InDelta(t, 3.33, s.ROAS, 0.01)
	})

	t.Run("balance counts contributions, net profit does not", func(t *testing.T) {
		txns := []model.Transaction{
			{Type: model.TypeEntrada, Amount: 500},
			{Type: model.TypeSaida, Amount: 200},
			{Type: model.TypeAporte, Amount: 1000},
		}

		s := Summarize(txns)
		assert.InDelta(t, 1300, s.Balance, 1e-9)
		assert.InDelta(t, 300, s.NetProfit, 1e-9)
		assert.InDelta(t, 500, s.TotalIncome, 1e-9)
		assert.InDelta(t, 200, s.TotalExpense, 1e-9)
		assert.InDelta(t, 1000, s.TotalContribution, 1e-9)
	})

	t.Run("roi and roas are zero without ad spend", func(t *testing.T) {
		txns := []model.Transaction{
			{Type: model.TypeEntrada, Category: "Vendas", Amount: 900},
			{Type: model.TypeSaida, Category: "Salários", Amount: 400},
		}

		s := Summarize(txns)
		assert.Zero(t, s.AdSpend)
		assert.Zero(t, s.ROI)
		assert.Zero(t, s.ROAS)
	})

	t.Run("empty collection", func(t *testing.T) {
		s := Summarize(nil)
		assert.Zero(t, s.Balance)
		assert.Zero(t, s.ROI)
		assert.Zero(t, s.ROAS)
	})
}

func TestAdSpendHeuristic(t *testing.T) {
	txns := []model.Transaction{
		// Flagged explicitly.
		{Type: model.TypeSaida, Category: "Ferramentas", Amount: 50, IsAdvertising: true},
		// Caught by category name even without the flag.
		{Type: model.TypeSaida, Category: "Anúncios Google", Amount: 120},
		{Type: model.TypeSaida, Category: "Anúncios Facebook", Amount: 80},
		// Neither.
		{Type: model.TypeSaida, Category: "Salários", Amount: 3000},
	}

	assert.InDelta(t, 250, AdSpend(txns), 1e-9)
}

func TestPlatformSpend(t *testing.T) {
	txns := []model.Transaction{
		{Category: "Anúncios Google", Amount: 100},
		{Category: "Ferramentas", Platform: "Google", Amount: 40},
		{Category: "Anúncios Facebook", Amount: 70},
		{Category: "Vendas", Amount: 500},
	}

	assert.InDelta(t, 140, PlatformSpend(txns, "Google"), 1e-9)
	assert.InDelta(t, 70, PlatformSpend(txns, "Facebook"), 1e-9)
	assert.Zero(t, PlatformSpend(txns, "TikTok"))
}

func TestTotalsByCategory(t *testing.T) {
	txns := []model.Transaction{
		{Category: "Vendas", Amount: 100},
		{Category: "Vendas", Amount: 50},
		{Category: "Ferramentas", Amount: 25},
	}

	totals := TotalsByCategory(txns)
	assert.InDelta(t, 150, totals["Vendas"], 1e-9)
	assert.InDelta(t, 25, totals["Ferramentas"], 1e-9)
	assert.Len(t, totals, 2)
}

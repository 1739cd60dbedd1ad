// Package metrics derives KPIs from transaction and task collections.
//
// Everything here is a pure function over whatever subset the caller hands
// in, so the same computations serve both the unfiltered dashboard cards
// and the filtered report views.
package metrics

import (
	"strings"

	"finboard/internal/model"
)

// adCategoryMarker flags ad spend by category name. When a transaction's
// IsAdvertising flag is unset, substring containment against the category
// name is authoritative.
const adCategoryMarker = "Anúncios"

// TotalByType sums the amounts of all transactions of the given type.
func TotalByType(txns []model.Transaction, typ model.TransactionType) float64 {
	var sum float64
	for _, t := range txns {
		if t.Type == typ {
			sum += t.Amount
		}
	}
	return sum
}

// AdSpend sums advertising outlays: transactions flagged IsAdvertising or
// whose category name contains the ad marker.
func AdSpend(txns []model.Transaction) float64 {
	var sum float64
	for _, t := range txns {
		if t.IsAdvertising || strings.Contains(t.Category, adCategoryMarker) {
			sum += t.Amount
		}
	}
	return sum
}

// PlatformSpend sums amounts attributed to a platform, either via the
// platform field or via category-name containment ("Anúncios Google"
// counts toward Google even without a platform set).
func PlatformSpend(txns []model.Transaction, platform string) float64 {
	var sum float64
	for _, t := range txns {
		if t.Platform == platform || strings.Contains(t.Category, platform) {
			sum += t.Amount
		}
	}
	return sum
}

// TotalsByCategory sums amounts per category name.
func TotalsByCategory(txns []model.Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range txns {
		totals[t.Category] += t.Amount
	}
	return totals
}

// Summary bundles the financial KPIs for a transaction set.
type Summary struct {
	TotalIncome       float64
	TotalExpense      float64
	TotalContribution float64
	Balance           float64
	NetProfit         float64
	AdSpend           float64
	ROI               float64 // percent; 0 when there is no ad spend
	ROAS              float64 // multiple; 0 when there is no ad spend
}

// Summarize computes every financial KPI in one pass over the collection.
// Contributions count toward the balance but not toward net profit.
func Summarize(txns []model.Transaction) Summary {
	s := Summary{
		TotalIncome:       TotalByType(txns, model.TypeEntrada),
		TotalExpense:      TotalByType(txns, model.TypeSaida),
		TotalContribution: TotalByType(txns, model.TypeAporte),
		AdSpend:           AdSpend(txns),
	}
	s.Balance = s.TotalIncome - s.TotalExpense + s.TotalContribution
	s.NetProfit = s.TotalIncome - s.TotalExpense

	if s.AdSpend > 0 {
		s.ROI = s.NetProfit / s.AdSpend * 100
		s.ROAS = s.TotalIncome / s.AdSpend
	}
	return s
}

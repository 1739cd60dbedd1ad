// Package query filters the transaction and task collections.
//
// Filtering is stateless and order-preserving: results keep the insertion
// order of the underlying store. Active filter fields are ANDed.
package query

import (
	"time"

	"finboard/internal/model"
)

// All is the wildcard filter value. The zero value of a field means the
// same thing, so an empty filter matches everything.
const All = "all"

// TransactionFilter selects a subset of transactions.
type TransactionFilter struct {
	Type      string // transaction type, or All
	Category  string // exact category name, or All
	Platform  string // exact platform, or All
	UserID    string // exact owner id, or All
	StartDate *time.Time
	EndDate   *time.Time
}

// TaskFilter selects a subset of tasks.
type TaskFilter struct {
	Status     string // task status, or All
	AssignedTo string // exact assignee id, or All
}

func wildcard(v string) bool {
	return v == "" || v == All
}

// Transactions returns the transactions matching the filter.
func Transactions(txns []model.Transaction, f TransactionFilter) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if !wildcard(f.Type) && string(t.Type) != f.Type {
			continue
		}
		if !wildcard(f.Category) && t.Category != f.Category {
			continue
		}
		if !wildcard(f.Platform) && t.Platform != f.Platform {
			continue
		}
		if !wildcard(f.UserID) && t.UserID != f.UserID {
			continue
		}
		// Bounds are inclusive: only strictly-outside dates are excluded.
		if f.StartDate != nil && t.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && t.Date.After(*f.EndDate) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Tasks returns the tasks matching the filter.
func Tasks(tasks []model.Task, f TaskFilter) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if !wildcard(f.Status) && string(t.Status) != f.Status {
			continue
		}
		if !wildcard(f.AssignedTo) && t.AssignedTo != f.AssignedTo {
			continue
		}
		out = append(out, t)
	}
	return out
}

package model

import "time"

// TransactionType classifies money movement. The Portuguese names are
// load-bearing: they are the values persisted by the dashboard since its
// first release.
type TransactionType string

const (
	// TypeEntrada is income.
	TypeEntrada TransactionType = "entrada"
	// TypeSaida is an expense.
	TypeSaida TransactionType = "saida"
	// TypeAporte is a capital contribution: an inflow for balance
	// purposes, excluded from net profit.
	TypeAporte TransactionType = "aporte"
)

// Valid reports whether the type is one of the known types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeEntrada, TypeSaida, TypeAporte:
		return true
	}
	return false
}

// Transaction is a single financial record. Amount is always a positive
// magnitude; sign semantics derive from Type at aggregation time.
// UserID/UserName denormalize the owner at creation time and never change
// afterward, even if the user is later renamed.
type Transaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        float64         `json:"amount"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"paymentMethod"`
	Platform      string          `json:"platform,omitempty"`
	IsAdvertising bool            `json:"isAdvertising,omitempty"`
	UserID        string          `json:"userId"`
	UserName      string          `json:"userName"`
}

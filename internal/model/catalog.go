package model

// Category labels transactions. Names are referenced by value from
// transactions, and uniqueness is not enforced.
type Category struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Type TransactionType `json:"type"`
}

// PaymentMethod is a way money changed hands (PIX, card, cash, ...).
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

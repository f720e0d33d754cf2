package payment

import "github.com/vaibhavdhanawade/mystore/internal/jsonutil"

type Payment struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId"`
	Amount     float64 `json:"amount"`
	Datetime   string  `json:"datetime"`
}

type CreateInput struct {
	CustomerID string          `json:"customerId"`
	Amount     jsonutil.Number `json:"amount"`
	Datetime   string          `json:"datetime"`
}

// CreateRecord is the validated, normalized form handed to the store.
type CreateRecord struct {
	CustomerID string
	Amount     float64
	Datetime   string
}

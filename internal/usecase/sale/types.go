package sale

import "github.com/vaibhavdhanawade/mystore/internal/jsonutil"

type Sale struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId"`
	Amount     float64 `json:"amount"`
	Paid       float64 `json:"paid"`
	Datetime   string  `json:"datetime"`
	Photo      *string `json:"photo,omitempty"`
}

type CreateInput struct {
	CustomerID string          `json:"customerId"`
	Amount     jsonutil.Number `json:"amount"`
	Paid       jsonutil.Number `json:"paid"`
	Datetime   string          `json:"datetime"`
	Photo      *string         `json:"photo"`
}

// CreateRecord is the validated, normalized form handed to the store.
// Paid is informational; it is never checked against Amount.
type CreateRecord struct {
	CustomerID string
	Amount     float64
	Paid       float64
	Datetime   string
	Photo      *string
}

package sale

import (
	"context"
	"errors"
	"strings"
	"time"

	paymentuc "github.com/vaibhavdhanawade/mystore/internal/usecase/payment"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Store interface {
	List(ctx context.Context) ([]Sale, error)
	// Create persists the sale and, when rec.Paid > 0, a matching
	// auto-payment as one unit: both records or neither.
	Create(ctx context.Context, rec CreateRecord) (*Sale, *paymentuc.Payment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) List(ctx context.Context) ([]Sale, error) {
	return u.store.List(ctx)
}

// Create records a sale. The customer id must be present but is not checked
// for existence: the reference is weak, and the ledger resolves dangling ids
// to "Unknown". The amount already paid at sale time, if any, comes back as
// an auto-payment created alongside the sale.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*Sale, *paymentuc.Payment, error) {
	if strings.TrimSpace(in.CustomerID) == "" {
		return nil, nil, ErrInvalidInput
	}
	rec := CreateRecord{
		CustomerID: strings.TrimSpace(in.CustomerID),
		Amount:     in.Amount.Float64(),
		Paid:       in.Paid.Float64(),
		Datetime:   normalizeDatetime(in.Datetime),
		Photo:      in.Photo,
	}
	return u.store.Create(ctx, rec)
}

func (u *Usecase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	ok, err := u.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// normalizeDatetime accepts RFC3339 or a bare calendar date and returns
// RFC3339 UTC. Empty or unparsable input defaults to the current time.
func normalizeDatetime(s string) string {
	s = strings.TrimSpace(s)
	if s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

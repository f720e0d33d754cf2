package payment

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Store interface {
	List(ctx context.Context) ([]Payment, error)
	Create(ctx context.Context, rec CreateRecord) (*Payment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) List(ctx context.Context) ([]Payment, error) {
	return u.store.List(ctx)
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*Payment, error) {
	if strings.TrimSpace(in.CustomerID) == "" {
		return nil, ErrInvalidInput
	}
	rec := CreateRecord{
		CustomerID: strings.TrimSpace(in.CustomerID),
		Amount:     in.Amount.Float64(),
		Datetime:   normalizeDatetime(in.Datetime),
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

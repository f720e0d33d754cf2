package customer

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Store interface {
	List(ctx context.Context) ([]Customer, error)
	Create(ctx context.Context, in CreateInput) (*Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) List(ctx context.Context) ([]Customer, error) {
	return u.store.List(ctx)
}

// Create fills missing fields with empty strings rather than rejecting them;
// customers are plain display records with no required shape beyond the id.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*Customer, error) {
	in.First = strings.TrimSpace(in.First)
	in.Last = strings.TrimSpace(in.Last)
	in.Mobile = strings.TrimSpace(in.Mobile)
	return u.store.Create(ctx, in)
}

// Delete removes the customer only. Sales and payments that reference it are
// left in place and resolve to the "Unknown" display name in the ledger.
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

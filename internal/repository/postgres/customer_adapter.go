package postgres

import (
	"context"

	customeruc "github.com/vaibhavdhanawade/mystore/internal/usecase/customer"
)

type CustomerStoreAdapter struct {
	repo *CustomerRepo
}

func NewCustomerStoreAdapter(repo *CustomerRepo) *CustomerStoreAdapter {
	return &CustomerStoreAdapter{repo: repo}
}

func (a *CustomerStoreAdapter) Create(ctx context.Context, in customeruc.CreateInput) (*customeruc.Customer, error) {
	row, err := a.repo.Insert(ctx, CustomerRow{
		FirstName: in.First,
		LastName:  in.Last,
		Mobile:    in.Mobile,
	})
	if err != nil {
		return nil, err
	}
	return mapCustomer(row), nil
}

func (a *CustomerStoreAdapter) List(ctx context.Context) ([]customeruc.Customer, error) {
	rows, err := a.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]customeruc.Customer, 0, len(rows))
	for i := range rows {
		out = append(out, *mapCustomer(&rows[i]))
	}
	return out, nil
}

func (a *CustomerStoreAdapter) Delete(ctx context.Context, id string) (bool, error) {
	return a.repo.Delete(ctx, id)
}

func mapCustomer(r *CustomerRow) *customeruc.Customer {
	return &customeruc.Customer{
		ID:     r.ID,
		First:  r.FirstName,
		Last:   r.LastName,
		Mobile: r.Mobile,
	}
}

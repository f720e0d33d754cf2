package postgres

import (
	"context"
	"time"

	paymentuc "github.com/vaibhavdhanawade/mystore/internal/usecase/payment"
)

type PaymentStoreAdapter struct {
	repo *PaymentRepo
}

func NewPaymentStoreAdapter(repo *PaymentRepo) *PaymentStoreAdapter {
	return &PaymentStoreAdapter{repo: repo}
}

func (a *PaymentStoreAdapter) Create(ctx context.Context, rec paymentuc.CreateRecord) (*paymentuc.Payment, error) {
	dt, err := time.Parse(time.RFC3339, rec.Datetime)
	if err != nil {
		dt = time.Now().UTC()
	}
	row, err := a.repo.Insert(ctx, PaymentRow{
		CustomerID: rec.CustomerID,
		Amount:     rec.Amount,
		Datetime:   dt,
	})
	if err != nil {
		return nil, err
	}
	return mapPayment(row), nil
}

func (a *PaymentStoreAdapter) List(ctx context.Context) ([]paymentuc.Payment, error) {
	rows, err := a.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]paymentuc.Payment, 0, len(rows))
	for i := range rows {
		out = append(out, *mapPayment(&rows[i]))
	}
	return out, nil
}

func (a *PaymentStoreAdapter) Delete(ctx context.Context, id string) (bool, error) {
	return a.repo.Delete(ctx, id)
}

func mapPayment(r *PaymentRow) *paymentuc.Payment {
	return &paymentuc.Payment{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		Datetime:   r.Datetime.UTC().Format(time.RFC3339),
	}
}

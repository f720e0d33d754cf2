package postgres

import (
	"context"
	"time"

	paymentuc "github.com/vaibhavdhanawade/mystore/internal/usecase/payment"
	saleuc "github.com/vaibhavdhanawade/mystore/internal/usecase/sale"
)

type SaleStoreAdapter struct {
	repo *SaleRepo
}

func NewSaleStoreAdapter(repo *SaleRepo) *SaleStoreAdapter {
	return &SaleStoreAdapter{repo: repo}
}

func (a *SaleStoreAdapter) Create(ctx context.Context, rec saleuc.CreateRecord) (*saleuc.Sale, *paymentuc.Payment, error) {
	dt, err := time.Parse(time.RFC3339, rec.Datetime)
	if err != nil {
		dt = time.Now().UTC()
	}
	row, autoPay, err := a.repo.Insert(ctx, SaleRow{
		CustomerID: rec.CustomerID,
		Amount:     rec.Amount,
		Paid:       rec.Paid,
		Datetime:   dt,
		Photo:      rec.Photo,
	})
	if err != nil {
		return nil, nil, err
	}

	var p *paymentuc.Payment
	if autoPay != nil {
		p = mapPayment(autoPay)
	}
	return mapSale(row), p, nil
}

func (a *SaleStoreAdapter) List(ctx context.Context) ([]saleuc.Sale, error) {
	rows, err := a.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]saleuc.Sale, 0, len(rows))
	for i := range rows {
		out = append(out, *mapSale(&rows[i]))
	}
	return out, nil
}

func (a *SaleStoreAdapter) Delete(ctx context.Context, id string) (bool, error) {
	return a.repo.Delete(ctx, id)
}

func mapSale(r *SaleRow) *saleuc.Sale {
	return &saleuc.Sale{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		Paid:       r.Paid,
		Datetime:   r.Datetime.UTC().Format(time.RFC3339),
		Photo:      r.Photo,
	}
}

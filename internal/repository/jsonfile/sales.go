package jsonfile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vaibhavdhanawade/mystore/internal/jsonutil"
	paymentuc "github.com/vaibhavdhanawade/mystore/internal/usecase/payment"
	saleuc "github.com/vaibhavdhanawade/mystore/internal/usecase/sale"
)

type saleRec struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Amount     jsonutil.Number `json:"amount"`
	Paid       jsonutil.Number `json:"paid"`
	Datetime   string          `json:"datetime"`
	Photo      *string         `json:"photo,omitempty"`
}

func (r saleRec) toSale() saleuc.Sale {
	return saleuc.Sale{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Amount:     r.Amount.Float64(),
		Paid:       r.Paid.Float64(),
		Datetime:   r.Datetime,
		Photo:      r.Photo,
	}
}

type SaleStore struct {
	s *Store
}

func (ss *SaleStore) List(ctx context.Context) ([]saleuc.Sale, error) {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()
	return ss.listLocked()
}

func (ss *SaleStore) listLocked() ([]saleuc.Sale, error) {
	recs, err := readList[saleRec](ss.s, salesFile)
	if err != nil {
		return nil, err
	}
	out := make([]saleuc.Sale, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toSale())
	}
	return out, nil
}

// Create writes the sale and then, when rec.Paid > 0, the auto-payment.
// The two files cannot share one atomic write, so a failed payment write
// triggers a compensating delete of the sale before the error returns.
func (ss *SaleStore) Create(ctx context.Context, rec saleuc.CreateRecord) (*saleuc.Sale, *paymentuc.Payment, error) {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	sales, err := readList[saleRec](ss.s, salesFile)
	if err != nil {
		return nil, nil, err
	}
	sr := saleRec{
		ID:         uuid.New().String(),
		CustomerID: rec.CustomerID,
		Amount:     jsonutil.Number(rec.Amount),
		Paid:       jsonutil.Number(rec.Paid),
		Datetime:   rec.Datetime,
		Photo:      rec.Photo,
	}
	sales = append(sales, sr)
	if err := writeList(ss.s, salesFile, sales); err != nil {
		return nil, nil, err
	}

	var autoPay *paymentuc.Payment
	if rec.Paid > 0 {
		pr := paymentRec{
			ID:         "auto-" + uuid.New().String(),
			CustomerID: rec.CustomerID,
			Amount:     jsonutil.Number(rec.Paid),
			Datetime:   rec.Datetime,
		}
		if err := ss.appendPaymentLocked(pr); err != nil {
			// roll the sale back so the collections stay consistent
			if rbErr := writeList(ss.s, salesFile, sales[:len(sales)-1]); rbErr != nil {
				return nil, nil, fmt.Errorf("write auto-payment: %w (sale rollback also failed, store inconsistent: %v)", err, rbErr)
			}
			return nil, nil, fmt.Errorf("write auto-payment: %w", err)
		}
		p := pr.toPayment()
		autoPay = &p
	}

	s := sr.toSale()
	return &s, autoPay, nil
}

func (ss *SaleStore) appendPaymentLocked(pr paymentRec) error {
	payments, err := readList[paymentRec](ss.s, paymentsFile)
	if err != nil {
		return err
	}
	return writeList(ss.s, paymentsFile, append(payments, pr))
}

func (ss *SaleStore) Delete(ctx context.Context, id string) (bool, error) {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	recs, err := readList[saleRec](ss.s, salesFile)
	if err != nil {
		return false, err
	}
	kept := recs[:0]
	found := false
	for _, r := range recs {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return false, nil
	}
	if err := writeList(ss.s, salesFile, kept); err != nil {
		return false, err
	}
	return true, nil
}

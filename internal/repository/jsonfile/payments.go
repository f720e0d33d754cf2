package jsonfile

import (
	"context"

	"github.com/google/uuid"

	"github.com/vaibhavdhanawade/mystore/internal/jsonutil"
	paymentuc "github.com/vaibhavdhanawade/mystore/internal/usecase/payment"
)

// paymentRec decodes amounts leniently so hand-edited or legacy files with
// malformed numbers load as 0 instead of failing the whole collection.
type paymentRec struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Amount     jsonutil.Number `json:"amount"`
	Datetime   string          `json:"datetime"`
}

func (r paymentRec) toPayment() paymentuc.Payment {
	return paymentuc.Payment{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Amount:     r.Amount.Float64(),
		Datetime:   r.Datetime,
	}
}

type PaymentStore struct {
	s *Store
}

func (ps *PaymentStore) List(ctx context.Context) ([]paymentuc.Payment, error) {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()
	return ps.listLocked()
}

func (ps *PaymentStore) listLocked() ([]paymentuc.Payment, error) {
	recs, err := readList[paymentRec](ps.s, paymentsFile)
	if err != nil {
		return nil, err
	}
	out := make([]paymentuc.Payment, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toPayment())
	}
	return out, nil
}

func (ps *PaymentStore) Create(ctx context.Context, rec paymentuc.CreateRecord) (*paymentuc.Payment, error) {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	recs, err := readList[paymentRec](ps.s, paymentsFile)
	if err != nil {
		return nil, err
	}
	r := paymentRec{
		ID:         uuid.New().String(),
		CustomerID: rec.CustomerID,
		Amount:     jsonutil.Number(rec.Amount),
		Datetime:   rec.Datetime,
	}
	recs = append(recs, r)
	if err := writeList(ps.s, paymentsFile, recs); err != nil {
		return nil, err
	}
	p := r.toPayment()
	return &p, nil
}

func (ps *PaymentStore) Delete(ctx context.Context, id string) (bool, error) {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	recs, err := readList[paymentRec](ps.s, paymentsFile)
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
	if err := writeList(ps.s, paymentsFile, kept); err != nil {
		return false, err
	}
	return true, nil
}

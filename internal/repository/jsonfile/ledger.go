package jsonfile

import (
	"context"

	customeruc "github.com/vaibhavdhanawade/mystore/internal/usecase/customer"
	paymentuc "github.com/vaibhavdhanawade/mystore/internal/usecase/payment"
	saleuc "github.com/vaibhavdhanawade/mystore/internal/usecase/sale"
)

// LedgerStore reads all three collections for the report. Each list takes
// the store lock once, so a report sees per-collection snapshots.
type LedgerStore struct {
	s *Store
}

func (ls *LedgerStore) ListCustomers(ctx context.Context) ([]customeruc.Customer, error) {
	ls.s.mu.Lock()
	defer ls.s.mu.Unlock()
	return (&CustomerStore{s: ls.s}).listLocked()
}

func (ls *LedgerStore) ListSales(ctx context.Context) ([]saleuc.Sale, error) {
	ls.s.mu.Lock()
	defer ls.s.mu.Unlock()
	return (&SaleStore{s: ls.s}).listLocked()
}

func (ls *LedgerStore) ListPayments(ctx context.Context) ([]paymentuc.Payment, error) {
	ls.s.mu.Lock()
	defer ls.s.mu.Unlock()
	return (&PaymentStore{s: ls.s}).listLocked()
}

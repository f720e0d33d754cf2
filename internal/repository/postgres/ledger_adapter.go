package postgres

import (
	"context"

	customeruc "github.com/vaibhavdhanawade/mystore/internal/usecase/customer"
	paymentuc "github.com/vaibhavdhanawade/mystore/internal/usecase/payment"
	saleuc "github.com/vaibhavdhanawade/mystore/internal/usecase/sale"
)

// LedgerStoreAdapter gives the ledger usecase read access to all three
// collections through the per-collection adapters.
type LedgerStoreAdapter struct {
	customers *CustomerStoreAdapter
	sales     *SaleStoreAdapter
	payments  *PaymentStoreAdapter
}

func NewLedgerStoreAdapter(c *CustomerStoreAdapter, s *SaleStoreAdapter, p *PaymentStoreAdapter) *LedgerStoreAdapter {
	return &LedgerStoreAdapter{customers: c, sales: s, payments: p}
}

func (a *LedgerStoreAdapter) ListCustomers(ctx context.Context) ([]customeruc.Customer, error) {
	return a.customers.List(ctx)
}

func (a *LedgerStoreAdapter) ListSales(ctx context.Context) ([]saleuc.Sale, error) {
	return a.sales.List(ctx)
}

func (a *LedgerStoreAdapter) ListPayments(ctx context.Context) ([]paymentuc.Payment, error) {
	return a.payments.List(ctx)
}

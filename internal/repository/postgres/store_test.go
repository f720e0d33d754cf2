package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vaibhavdhanawade/mystore/internal/repository/postgres/testutil"
	customeruc "github.com/vaibhavdhanawade/mystore/internal/usecase/customer"
	ledgeruc "github.com/vaibhavdhanawade/mystore/internal/usecase/ledger"
	saleuc "github.com/vaibhavdhanawade/mystore/internal/usecase/sale"
)

func TestSale_CreateWithAutoPayment(t *testing.T) {
	pool := testutil.MustOpenDB(t)
	testutil.TruncateAll(t, pool)
	ctx := context.Background()

	custID := testutil.MustInsertCustomer(t, pool, "Asha", "Patil", "98765")

	store := NewSaleStoreAdapter(NewSaleRepo(pool))

	sale, autoPay, err := store.Create(ctx, saleuc.CreateRecord{
		CustomerID: custID,
		Amount:     100,
		Paid:       40,
		Datetime:   "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	require.NotEmpty(t, sale.ID)
	require.Equal(t, 100.0, sale.Amount)
	require.NotNil(t, autoPay)
	require.True(t, strings.HasPrefix(autoPay.ID, "auto-"))
	require.Equal(t, 40.0, autoPay.Amount)

	payments, err := NewPaymentStoreAdapter(NewPaymentRepo(pool)).List(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.Equal(t, autoPay.ID, payments[0].ID)
}

func TestSale_AutoPaymentFailureRollsBackSale(t *testing.T) {
	pool := testutil.MustOpenDB(t)
	testutil.TruncateAll(t, pool)
	ctx := context.Background()

	custID := testutil.MustInsertCustomer(t, pool, "Asha", "Patil", "98765")

	// reject auto-payment ids so the second insert fails mid-transaction
	_, err := pool.Exec(ctx, `ALTER TABLE payments ADD CONSTRAINT payments_reject_auto CHECK (id NOT LIKE 'auto-%');`)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `ALTER TABLE payments DROP CONSTRAINT IF EXISTS payments_reject_auto;`)
	})

	store := NewSaleStoreAdapter(NewSaleRepo(pool))

	_, _, err = store.Create(ctx, saleuc.CreateRecord{
		CustomerID: custID,
		Amount:     100,
		Paid:       40,
		Datetime:   "2024-01-01T00:00:00Z",
	})
	require.Error(t, err)

	sales, err := store.List(ctx)
	require.NoError(t, err)
	require.Empty(t, sales, "sale and auto-payment commit together or not at all")

	payments, err := NewPaymentStoreAdapter(NewPaymentRepo(pool)).List(ctx)
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestSale_UnpaidCreatesNoPayment(t *testing.T) {
	pool := testutil.MustOpenDB(t)
	testutil.TruncateAll(t, pool)
	ctx := context.Background()

	custID := testutil.MustInsertCustomer(t, pool, "Ravi", "", "")

	store := NewSaleStoreAdapter(NewSaleRepo(pool))

	_, autoPay, err := store.Create(ctx, saleuc.CreateRecord{
		CustomerID: custID,
		Amount:     100,
		Datetime:   "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	require.Nil(t, autoPay)

	payments, err := NewPaymentStoreAdapter(NewPaymentRepo(pool)).List(ctx)
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestCustomer_DeleteDoesNotCascade(t *testing.T) {
	pool := testutil.MustOpenDB(t)
	testutil.TruncateAll(t, pool)
	ctx := context.Background()

	custID := testutil.MustInsertCustomer(t, pool, "Asha", "Patil", "98765")
	testutil.MustInsertSale(t, pool, custID, 100, 0, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	testutil.MustInsertPayment(t, pool, custID, 30, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	customers := NewCustomerStoreAdapter(NewCustomerRepo(pool))

	ok, err := customers.Delete(ctx, custID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = customers.Delete(ctx, custID)
	require.NoError(t, err)
	require.False(t, ok)

	sales, err := NewSaleStoreAdapter(NewSaleRepo(pool)).List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)

	payments, err := NewPaymentStoreAdapter(NewPaymentRepo(pool)).List(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
}

// End to end through the ledger usecase: records in, running balances out.
func TestLedger_ReportFromPostgres(t *testing.T) {
	pool := testutil.MustOpenDB(t)
	testutil.TruncateAll(t, pool)
	ctx := context.Background()

	customers := NewCustomerStoreAdapter(NewCustomerRepo(pool))
	sales := NewSaleStoreAdapter(NewSaleRepo(pool))
	payments := NewPaymentStoreAdapter(NewPaymentRepo(pool))

	cust, err := customers.Create(ctx, customeruc.CreateInput{First: "A", Last: "B"})
	require.NoError(t, err)

	_, _, err = sales.Create(ctx, saleuc.CreateRecord{
		CustomerID: cust.ID,
		Amount:     100,
		Paid:       40,
		Datetime:   "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)

	uc := ledgeruc.New(NewLedgerStoreAdapter(customers, sales, payments))

	rep, err := uc.Report(ctx, ledgeruc.Filter{CustomerID: cust.ID})
	require.NoError(t, err)
	require.Len(t, rep.Rows, 2, "sale plus its auto-payment")
	require.Equal(t, 100.0, rep.Rows[0].Debit)
	require.Equal(t, 40.0, rep.Rows[1].Credit)
	require.Equal(t, 60.0, rep.Rows[1].Balance)
	require.Equal(t, "A B", rep.Rows[0].CustomerName)
	require.Equal(t, 100.0, rep.TotalSales)
	require.Equal(t, 40.0, rep.TotalPayments)
}

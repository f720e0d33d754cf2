package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	customeruc "github.com/vaibhavdhanawade/mystore/internal/usecase/customer"
	paymentuc "github.com/vaibhavdhanawade/mystore/internal/usecase/payment"
	saleuc "github.com/vaibhavdhanawade/mystore/internal/usecase/sale"
)

func TestBuild_WorkedExample(t *testing.T) {
	customers := []customeruc.Customer{
		{ID: "1", First: "A", Last: "B"},
	}
	sales := []saleuc.Sale{
		{ID: "s1", CustomerID: "1", Amount: 100, Paid: 40, Datetime: "2024-01-01T00:00:00Z"},
	}
	payments := []paymentuc.Payment{
		{ID: "p1", CustomerID: "1", Amount: 40, Datetime: "2024-01-01T00:00:00Z"},
		{ID: "p2", CustomerID: "1", Amount: 30, Datetime: "2024-01-05T00:00:00Z"},
	}

	rep := Build(Normalize(sales, payments), customers, Filter{CustomerID: "all"})

	require.Len(t, rep.Rows, 3)

	require.Equal(t, "sale-s1", rep.Rows[0].ID)
	require.Equal(t, 100.0, rep.Rows[0].Debit)
	require.Equal(t, 0.0, rep.Rows[0].Credit)
	require.Equal(t, 100.0, rep.Rows[0].Balance)

	require.Equal(t, "pay-p1", rep.Rows[1].ID)
	require.Equal(t, 40.0, rep.Rows[1].Credit)
	require.Equal(t, 60.0, rep.Rows[1].Balance)

	require.Equal(t, "pay-p2", rep.Rows[2].ID)
	require.Equal(t, 30.0, rep.Rows[2].Credit)
	require.Equal(t, 30.0, rep.Rows[2].Balance)

	require.Equal(t, 100.0, rep.TotalSales)
	require.Equal(t, 70.0, rep.TotalPayments)

	for _, r := range rep.Rows {
		require.Equal(t, "A B", r.CustomerName)
	}
}

func TestBuild_RowCountAndLastBalance(t *testing.T) {
	var sales []saleuc.Sale
	var payments []paymentuc.Payment
	for i := 0; i < 7; i++ {
		sales = append(sales, saleuc.Sale{
			ID:         fmt.Sprintf("s%d", i),
			CustomerID: "c1",
			Amount:     float64(10 * (i + 1)),
			Datetime:   fmt.Sprintf("2024-02-%02dT10:00:00Z", i+1),
		})
	}
	for i := 0; i < 4; i++ {
		payments = append(payments, paymentuc.Payment{
			ID:         fmt.Sprintf("p%d", i),
			CustomerID: "c1",
			Amount:     float64(5 * (i + 1)),
			Datetime:   fmt.Sprintf("2024-02-%02dT18:00:00Z", i+1),
		})
	}

	rep := Build(Normalize(sales, payments), nil, Filter{})

	require.Len(t, rep.Rows, len(sales)+len(payments))
	last := rep.Rows[len(rep.Rows)-1]
	require.Equal(t, rep.TotalSales-rep.TotalPayments, last.Balance)
}

func TestBuild_ChronologicalOrder(t *testing.T) {
	sales := []saleuc.Sale{
		{ID: "s1", CustomerID: "c1", Amount: 1, Datetime: "2024-03-05T12:00:00Z"},
		{ID: "s2", CustomerID: "c1", Amount: 1, Datetime: "2024-03-01T12:00:00Z"},
	}
	payments := []paymentuc.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 1, Datetime: "2024-03-03T12:00:00Z"},
		{ID: "p2", CustomerID: "c1", Amount: 1, Datetime: "2024-02-28T12:00:00Z"},
	}

	rep := Build(Normalize(sales, payments), nil, Filter{})

	require.Len(t, rep.Rows, 4)
	for i := 1; i < len(rep.Rows); i++ {
		require.False(t, dateLess(rep.Rows[i].Date, rep.Rows[i-1].Date),
			"rows must be non-decreasing by timestamp")
	}
	require.Equal(t, "pay-p2", rep.Rows[0].ID)
	require.Equal(t, "sale-s1", rep.Rows[3].ID)
}

func TestBuild_TieKeepsSalesBeforePayments(t *testing.T) {
	// identical timestamps: stable sort keeps normalizer emission order
	sales := []saleuc.Sale{
		{ID: "s1", CustomerID: "c1", Amount: 50, Datetime: "2024-04-01T09:00:00Z"},
	}
	payments := []paymentuc.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 50, Datetime: "2024-04-01T09:00:00Z"},
	}

	rep := Build(Normalize(sales, payments), nil, Filter{})

	require.Equal(t, "sale-s1", rep.Rows[0].ID)
	require.Equal(t, "pay-p1", rep.Rows[1].ID)
	require.Equal(t, 0.0, rep.Rows[1].Balance)
}

func TestBuild_CustomerFilter(t *testing.T) {
	sales := []saleuc.Sale{
		{ID: "s1", CustomerID: "c1", Amount: 10, Datetime: "2024-01-01T00:00:00Z"},
		{ID: "s2", CustomerID: "c2", Amount: 20, Datetime: "2024-01-02T00:00:00Z"},
	}
	payments := []paymentuc.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 5, Datetime: "2024-01-03T00:00:00Z"},
		{ID: "p2", CustomerID: "c2", Amount: 5, Datetime: "2024-01-04T00:00:00Z"},
	}

	rep := Build(Normalize(sales, payments), nil, Filter{CustomerID: "c2"})

	require.Len(t, rep.Rows, 2)
	for _, r := range rep.Rows {
		require.Equal(t, "c2", r.CustomerID)
	}
	require.Equal(t, 20.0, rep.TotalSales)
	require.Equal(t, 5.0, rep.TotalPayments)
	require.Equal(t, 15.0, rep.Rows[1].Balance)
}

func TestBuild_DateRangeInclusive(t *testing.T) {
	sales := []saleuc.Sale{
		{ID: "before", CustomerID: "c1", Amount: 1, Datetime: "2024-01-09T23:59:59Z"},
		{ID: "start", CustomerID: "c1", Amount: 1, Datetime: "2024-01-10T00:00:00Z"},
		{ID: "mid", CustomerID: "c1", Amount: 1, Datetime: "2024-01-15T12:00:00Z"},
		{ID: "end", CustomerID: "c1", Amount: 1, Datetime: "2024-01-20T23:00:00Z"},
		{ID: "after", CustomerID: "c1", Amount: 1, Datetime: "2024-01-21T00:00:00Z"},
	}

	rep := Build(Normalize(sales, nil), nil, Filter{
		StartDate: "2024-01-10",
		EndDate:   "2024-01-20",
	})

	require.Len(t, rep.Rows, 3)
	require.Equal(t, "sale-start", rep.Rows[0].ID)
	require.Equal(t, "sale-mid", rep.Rows[1].ID)
	require.Equal(t, "sale-end", rep.Rows[2].ID)
}

func TestBuild_UnknownCustomerName(t *testing.T) {
	customers := []customeruc.Customer{
		{ID: "c1", First: "Asha", Last: "Patil"},
	}
	sales := []saleuc.Sale{
		{ID: "s1", CustomerID: "c1", Amount: 10, Datetime: "2024-01-01T00:00:00Z"},
		{ID: "s2", CustomerID: "deleted", Amount: 10, Datetime: "2024-01-02T00:00:00Z"},
	}

	rep := Build(Normalize(sales, nil), customers, Filter{})

	require.Equal(t, "Asha Patil", rep.Rows[0].CustomerName)
	require.Equal(t, "Unknown", rep.Rows[1].CustomerName)
}

func TestBuild_Idempotent(t *testing.T) {
	sales := []saleuc.Sale{
		{ID: "s1", CustomerID: "c1", Amount: 12.5, Datetime: "2024-05-01T00:00:00Z"},
	}
	payments := []paymentuc.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 2.5, Datetime: "2024-05-02T00:00:00Z"},
	}
	customers := []customeruc.Customer{{ID: "c1", First: "X"}}
	f := Filter{CustomerID: "all", StartDate: "2024-05-01", EndDate: "2024-05-31"}

	first := Build(Normalize(sales, payments), customers, f)
	second := Build(Normalize(sales, payments), customers, f)

	require.Equal(t, first, second)
}

func TestBuild_EmptyInput(t *testing.T) {
	rep := Build(nil, nil, Filter{})

	require.Empty(t, rep.Rows)
	require.Equal(t, 0.0, rep.TotalSales)
	require.Equal(t, 0.0, rep.TotalPayments)
}

func TestPaginate(t *testing.T) {
	rows := make([]Row, 25)
	for i := range rows {
		rows[i].ID = fmt.Sprintf("r%d", i)
	}

	t.Run("first page", func(t *testing.T) {
		pg := Paginate(rows, 10, 1)
		require.Len(t, pg.Rows, 10)
		require.Equal(t, 1, pg.CurrentPage)
		require.Equal(t, 3, pg.TotalPages)
		require.Equal(t, 0, pg.StartIndex)
	})

	t.Run("last partial page", func(t *testing.T) {
		pg := Paginate(rows, 10, 3)
		require.Len(t, pg.Rows, 5)
		require.Equal(t, 20, pg.StartIndex)
		require.Equal(t, "r20", pg.Rows[0].ID)
	})

	t.Run("out of range resets to page 1", func(t *testing.T) {
		pg := Paginate(rows, 10, 4)
		require.Equal(t, 1, pg.CurrentPage)
		require.Len(t, pg.Rows, 10)
		require.Equal(t, "r0", pg.Rows[0].ID)
	})

	t.Run("page zero resets to page 1", func(t *testing.T) {
		pg := Paginate(rows, 10, 0)
		require.Equal(t, 1, pg.CurrentPage)
	})

	t.Run("empty rows still one page", func(t *testing.T) {
		pg := Paginate(nil, 10, 1)
		require.Empty(t, pg.Rows)
		require.Equal(t, 1, pg.TotalPages)
		require.Equal(t, 1, pg.CurrentPage)
	})
}

// --- Report error surfacing ----------------------------------------------

type stubStore struct {
	customers []customeruc.Customer
	sales     []saleuc.Sale
	payments  []paymentuc.Payment
	err       error
}

func (s *stubStore) ListCustomers(ctx context.Context) ([]customeruc.Customer, error) {
	return s.customers, s.err
}

func (s *stubStore) ListSales(ctx context.Context) ([]saleuc.Sale, error) {
	return s.sales, s.err
}

func (s *stubStore) ListPayments(ctx context.Context) ([]paymentuc.Payment, error) {
	return s.payments, s.err
}

func TestReport_SurfacesStoreErrors(t *testing.T) {
	boom := errors.New("disk gone")
	uc := New(&stubStore{err: boom})

	rep, err := uc.Report(context.Background(), Filter{})
	require.Nil(t, rep)
	require.ErrorIs(t, err, boom)
}

func TestReport_DerivesFromStore(t *testing.T) {
	uc := New(&stubStore{
		customers: []customeruc.Customer{{ID: "c1", First: "Mira"}},
		sales: []saleuc.Sale{
			{ID: "s1", CustomerID: "c1", Amount: 80, Datetime: "2024-06-01T00:00:00Z"},
		},
		payments: []paymentuc.Payment{
			{ID: "p1", CustomerID: "c1", Amount: 30, Datetime: "2024-06-02T00:00:00Z"},
		},
	})

	rep, err := uc.Report(context.Background(), Filter{CustomerID: "all"})
	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)
	require.Equal(t, 50.0, rep.Rows[1].Balance)
	require.Equal(t, "Mira", rep.Rows[0].CustomerName)
}

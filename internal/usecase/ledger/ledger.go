package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	customeruc "github.com/vaibhavdhanawade/mystore/internal/usecase/customer"
	paymentuc "github.com/vaibhavdhanawade/mystore/internal/usecase/payment"
	saleuc "github.com/vaibhavdhanawade/mystore/internal/usecase/sale"
)

// Normalize converts the sale and payment collections into the uniform
// transaction set the builder consumes. No ordering is guaranteed here.
func Normalize(sales []saleuc.Sale, payments []paymentuc.Payment) []Transaction {
	out := make([]Transaction, 0, len(sales)+len(payments))
	for _, s := range sales {
		out = append(out, Transaction{
			ID:         "sale-" + s.ID,
			Type:       TypeSale,
			Date:       s.Datetime,
			CustomerID: s.CustomerID,
			Amount:     s.Amount,
		})
	}
	for _, p := range payments {
		out = append(out, Transaction{
			ID:         "pay-" + p.ID,
			Type:       TypePayment,
			Date:       p.Datetime,
			CustomerID: p.CustomerID,
			Amount:     p.Amount,
		})
	}
	return out
}

// Build filters, sorts, and folds transactions into a running-balance report.
// It is a pure derivation: same inputs, same output, no hidden state.
//
// One global running accumulator is used whether or not a customer filter is
// active; with a filter every retained transaction belongs to that customer,
// so the fold reduces to the same thing.
func Build(txs []Transaction, customers []customeruc.Customer, f Filter) Report {
	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.ID] = strings.TrimSpace(c.First + " " + c.Last)
	}

	filtered := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if f.matches(t) {
			filtered = append(filtered, t)
		}
	}

	// Stable, so transactions with identical timestamps keep the
	// normalizer's emission order (sales before payments).
	sort.SliceStable(filtered, func(i, j int) bool {
		return dateLess(filtered[i].Date, filtered[j].Date)
	})

	rows := make([]Row, 0, len(filtered))
	var running float64
	for _, t := range filtered {
		name, ok := names[t.CustomerID]
		if !ok {
			name = "Unknown"
		}
		row := Row{Transaction: t, CustomerName: name}
		switch t.Type {
		case TypeSale:
			running += t.Amount
			row.Debit = t.Amount
		case TypePayment:
			running -= t.Amount
			row.Credit = t.Amount
		}
		row.Balance = running
		rows = append(rows, row)
	}

	// Totals are recomputed from the rows rather than read off the last
	// balance, as an independent cross-check.
	var totalSales, totalPayments float64
	for _, r := range rows {
		totalSales += r.Debit
		totalPayments += r.Credit
	}

	return Report{Rows: rows, TotalSales: totalSales, TotalPayments: totalPayments}
}

func (f Filter) matches(t Transaction) bool {
	if f.CustomerID != "" && f.CustomerID != "all" && t.CustomerID != f.CustomerID {
		return false
	}
	d := day(t.Date)
	if f.StartDate != "" && d < f.StartDate {
		return false
	}
	if f.EndDate != "" && d > f.EndDate {
		return false
	}
	return true
}

// day returns the calendar-day portion of an ISO-8601 timestamp. ISO dates
// compare lexicographically in chronological order, so the filter works on
// plain strings.
func day(iso string) string {
	if len(iso) >= 10 {
		return iso[:10]
	}
	return iso
}

// dateLess orders by full timestamp. Unparsable dates fall back to string
// comparison, which for well-formed UTC timestamps is equivalent anyway.
func dateLess(a, b string) bool {
	ta, errA := time.Parse(time.RFC3339, a)
	tb, errB := time.Parse(time.RFC3339, b)
	if errA == nil && errB == nil {
		return ta.Before(tb)
	}
	return a < b
}

// Paginate slices rows into a fixed-size page. A requested page outside
// [1, totalPages] resets to page 1 instead of rendering an empty page.
func Paginate(rows []Row, pageSize, page int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := (len(rows) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 || page > totalPages {
		page = 1
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return Page{
		Rows:        rows[start:end],
		CurrentPage: page,
		TotalPages:  totalPages,
		StartIndex:  start,
	}
}

// Store is the read side of the three record collections the report is
// derived from.
type Store interface {
	ListCustomers(ctx context.Context) ([]customeruc.Customer, error)
	ListSales(ctx context.Context) ([]saleuc.Sale, error)
	ListPayments(ctx context.Context) ([]paymentuc.Payment, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

// Report fetches the current collections and derives the ledger. Store
// failures surface to the caller; an unreachable store never degrades to an
// empty ledger.
func (u *Usecase) Report(ctx context.Context, f Filter) (*Report, error) {
	customers, err := u.store.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	sales, err := u.store.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	payments, err := u.store.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	r := Build(Normalize(sales, payments), customers, f)
	return &r, nil
}

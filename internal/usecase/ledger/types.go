package ledger

// DefaultPageSize is the fixed page size of the ledger report.
const DefaultPageSize = 10

const (
	TypeSale    = "sale"
	TypePayment = "payment"
)

// Transaction is the uniform representation a sale or payment record is
// normalized into before the ledger is built. It is derived, never persisted.
type Transaction struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Date       string  `json:"date"`
	CustomerID string  `json:"customerId"`
	Amount     float64 `json:"amount"`
}

// Filter selects which transactions enter the ledger. CustomerID "all" (or
// empty) matches every customer; empty dates leave that bound open. Dates are
// inclusive calendar days in YYYY-MM-DD form.
type Filter struct {
	CustomerID string
	StartDate  string
	EndDate    string
}

// Row is one transaction annotated with the running balance. Exactly one of
// Debit and Credit carries the amount; the other is zero.
type Row struct {
	Transaction
	CustomerName string  `json:"customerName"`
	Debit        float64 `json:"debit"`
	Credit       float64 `json:"credit"`
	Balance      float64 `json:"balance"`
}

type Report struct {
	Rows          []Row   `json:"rows"`
	TotalSales    float64 `json:"totalSales"`
	TotalPayments float64 `json:"totalPayments"`
}

// Page is one slice of the report rows. StartIndex is the zero-based offset
// of the first row, so displayed row numbers stay continuous across pages.
type Page struct {
	Rows        []Row `json:"rows"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	StartIndex  int   `json:"startIndex"`
}

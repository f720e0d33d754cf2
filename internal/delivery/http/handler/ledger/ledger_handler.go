package ledger

import (
	"time"

	"github.com/gofiber/fiber/v2"

	ledgeruc "github.com/vaibhavdhanawade/mystore/internal/usecase/ledger"
)

type Handler struct {
	uc *ledgeruc.Usecase
}

func New(uc *ledgeruc.Usecase) *Handler {
	return &Handler{uc: uc}
}

// Report derives the ledger for the requested filter and returns one page of
// rows plus the report-wide totals.
func (h *Handler) Report(c *fiber.Ctx) error {
	f := ledgeruc.Filter{
		CustomerID: c.Query("customerId", "all"),
		StartDate:  dateParam(c.Query("start")),
		EndDate:    dateParam(c.Query("end")),
	}
	page := c.QueryInt("page", 1)

	rep, err := h.uc.Report(c.Context(), f)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "record store read failed")
	}

	pg := ledgeruc.Paginate(rep.Rows, ledgeruc.DefaultPageSize, page)

	return c.JSON(fiber.Map{
		"rows":          pg.Rows,
		"currentPage":   pg.CurrentPage,
		"totalPages":    pg.TotalPages,
		"startIndex":    pg.StartIndex,
		"totalRows":     len(rep.Rows),
		"totalSales":    rep.TotalSales,
		"totalPayments": rep.TotalPayments,
		"balance":       rep.TotalSales - rep.TotalPayments,
	})
}

// dateParam keeps only well-formed YYYY-MM-DD bounds; anything else falls
// back to an open bound rather than rejecting the report.
func dateParam(s string) string {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ""
	}
	return s
}

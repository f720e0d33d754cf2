package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SaleRow struct {
	ID         string
	CustomerID string
	Amount     float64
	Paid       float64
	Datetime   time.Time
	Photo      *string
	CreatedAt  time.Time
}

type SaleRepo struct {
	db *pgxpool.Pool
}

func NewSaleRepo(db *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{db: db}
}

// Insert persists the sale and, when in.Paid > 0, its auto-payment in a
// single database transaction so the two records commit or roll back
// together.
func (r *SaleRepo) Insert(ctx context.Context, in SaleRow) (*SaleRow, *PaymentRow, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO sales (id, customer_id, amount, paid, datetime, photo)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, customer_id, amount, paid, datetime, photo, created_at;
`
	id := uuid.New().String()

	var out SaleRow
	err = tx.QueryRow(ctx, q,
		id,
		in.CustomerID,
		in.Amount,
		in.Paid,
		in.Datetime,
		in.Photo,
	).Scan(
		&out.ID,
		&out.CustomerID,
		&out.Amount,
		&out.Paid,
		&out.Datetime,
		&out.Photo,
		&out.CreatedAt,
	)
	if err != nil {
		return nil, nil, err
	}

	var autoPay *PaymentRow
	if in.Paid > 0 {
		autoPay, err = insertPayment(ctx, tx, PaymentRow{
			ID:         "auto-" + uuid.New().String(),
			CustomerID: in.CustomerID,
			Amount:     in.Paid,
			Datetime:   in.Datetime,
		})
		if err != nil {
			return nil, nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}
	return &out, autoPay, nil
}

func (r *SaleRepo) List(ctx context.Context) ([]SaleRow, error) {
	const q = `
SELECT id, customer_id, amount, paid, datetime, photo, created_at
FROM sales
ORDER BY created_at ASC, id ASC;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SaleRow, 0, 16)
	for rows.Next() {
		var s SaleRow
		if err := rows.Scan(
			&s.ID,
			&s.CustomerID,
			&s.Amount,
			&s.Paid,
			&s.Datetime,
			&s.Photo,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes the sale only. An auto-payment spawned by the sale is a
// standalone payment record and stays in the ledger.
func (r *SaleRepo) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM sales WHERE id = $1;`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

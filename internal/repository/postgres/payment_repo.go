package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRow struct {
	ID         string
	CustomerID string
	Amount     float64
	Datetime   time.Time
	CreatedAt  time.Time
}

type PaymentRepo struct {
	db *pgxpool.Pool
}

func NewPaymentRepo(db *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// rowQuerier lets insertPayment run against the pool or inside the sale
// repo's transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertPayment(ctx context.Context, q rowQuerier, in PaymentRow) (*PaymentRow, error) {
	const sql = `
INSERT INTO payments (id, customer_id, amount, datetime)
VALUES ($1, $2, $3, $4)
RETURNING id, customer_id, amount, datetime, created_at;
`
	var out PaymentRow
	err := q.QueryRow(ctx, sql,
		in.ID,
		in.CustomerID,
		in.Amount,
		in.Datetime,
	).Scan(
		&out.ID,
		&out.CustomerID,
		&out.Amount,
		&out.Datetime,
		&out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PaymentRepo) Insert(ctx context.Context, in PaymentRow) (*PaymentRow, error) {
	in.ID = uuid.New().String()
	return insertPayment(ctx, r.db, in)
}

func (r *PaymentRepo) List(ctx context.Context) ([]PaymentRow, error) {
	const q = `
SELECT id, customer_id, amount, datetime, created_at
FROM payments
ORDER BY created_at ASC, id ASC;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PaymentRow, 0, 16)
	for rows.Next() {
		var p PaymentRow
		if err := rows.Scan(
			&p.ID,
			&p.CustomerID,
			&p.Amount,
			&p.Datetime,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PaymentRepo) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM payments WHERE id = $1;`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

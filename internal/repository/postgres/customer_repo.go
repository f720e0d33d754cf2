package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRow struct {
	ID        string
	FirstName string
	LastName  string
	Mobile    string
	CreatedAt time.Time
}

type CustomerRepo struct {
	db *pgxpool.Pool
}

func NewCustomerRepo(db *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) Insert(ctx context.Context, in CustomerRow) (*CustomerRow, error) {
	const q = `
INSERT INTO customers (id, first_name, last_name, mobile)
VALUES ($1, $2, $3, $4)
RETURNING id, first_name, last_name, mobile, created_at;
`
	id := uuid.New().String()

	var out CustomerRow
	err := r.db.QueryRow(ctx, q,
		id,
		in.FirstName,
		in.LastName,
		in.Mobile,
	).Scan(
		&out.ID,
		&out.FirstName,
		&out.LastName,
		&out.Mobile,
		&out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]CustomerRow, error) {
	const q = `
SELECT id, first_name, last_name, mobile, created_at
FROM customers
ORDER BY created_at ASC, id ASC;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CustomerRow, 0, 16)
	for rows.Next() {
		var c CustomerRow
		if err := rows.Scan(
			&c.ID,
			&c.FirstName,
			&c.LastName,
			&c.Mobile,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CustomerRepo) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM customers WHERE id = $1;`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

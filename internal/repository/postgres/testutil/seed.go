package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func MustInsertCustomer(t *testing.T, db *pgxpool.Pool, first, last, mobile string) string {
	t.Helper()

	id := uuid.New().String()
	_, err := db.Exec(context.Background(), `
		INSERT INTO customers (id, first_name, last_name, mobile)
		VALUES ($1, $2, $3, $4)
	`, id, first, last, mobile)

	require.NoError(t, err)
	return id
}

func MustInsertSale(t *testing.T, db *pgxpool.Pool, customerID string, amount, paid float64, at time.Time) string {
	t.Helper()

	id := uuid.New().String()
	_, err := db.Exec(context.Background(), `
		INSERT INTO sales (id, customer_id, amount, paid, datetime)
		VALUES ($1, $2, $3, $4, $5)
	`, id, customerID, amount, paid, at)

	require.NoError(t, err)
	return id
}

func MustInsertPayment(t *testing.T, db *pgxpool.Pool, customerID string, amount float64, at time.Time) string {
	t.Helper()

	id := uuid.New().String()
	_, err := db.Exec(context.Background(), `
		INSERT INTO payments (id, customer_id, amount, datetime)
		VALUES ($1, $2, $3, $4)
	`, id, customerID, amount, at)

	require.NoError(t, err)
	return id
}

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// Migrate creates the record tables when missing. customer_id is not a
// foreign key: deleting a customer orphans its sales and payments, and the
// ledger resolves the dangling reference to "Unknown".
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const schema = `
CREATE TABLE IF NOT EXISTS customers (
  id         text PRIMARY KEY,
  first_name text NOT NULL DEFAULT '',
  last_name  text NOT NULL DEFAULT '',
  mobile     text NOT NULL DEFAULT '',
  created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS sales (
  id          text PRIMARY KEY,
  customer_id text NOT NULL,
  amount      double precision NOT NULL DEFAULT 0,
  paid        double precision NOT NULL DEFAULT 0,
  datetime    timestamptz NOT NULL DEFAULT now(),
  photo       text,
  created_at  timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_sales_customer ON sales (customer_id);

CREATE TABLE IF NOT EXISTS payments (
  id          text PRIMARY KEY,
  customer_id text NOT NULL,
  amount      double precision NOT NULL DEFAULT 0,
  datetime    timestamptz NOT NULL DEFAULT now(),
  created_at  timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_payments_customer ON payments (customer_id);
`
	_, err := pool.Exec(ctx, schema)
	return err
}

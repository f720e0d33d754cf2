// Package jsonfile persists the three record collections as flat JSON array
// files, one per collection, rewritten whole on every change. It backs the
// file store driver and keeps the on-disk format readable by hand.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	customersFile = "customers.json"
	salesFile     = "sales.json"
	paymentsFile  = "payments.json"
)

// Store serializes all file access behind one mutex: the record files are
// whole-collection snapshots with a single active writer.
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Customers() *CustomerStore { return &CustomerStore{s: s} }
func (s *Store) Sales() *SaleStore         { return &SaleStore{s: s} }
func (s *Store) Payments() *PaymentStore   { return &PaymentStore{s: s} }
func (s *Store) Ledger() *LedgerStore      { return &LedgerStore{s: s} }

// readList returns an empty collection for a file that does not exist yet.
// Unreadable or corrupt files are surfaced as errors, never as an empty
// ledger.
func readList[T any](s *Store, name string) ([]T, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func writeList[T any](s *Store, name string, items []T) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

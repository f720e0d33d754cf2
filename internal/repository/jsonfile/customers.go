package jsonfile

import (
	"context"

	"github.com/google/uuid"

	customeruc "github.com/vaibhavdhanawade/mystore/internal/usecase/customer"
)

type customerRec struct {
	ID     string `json:"id"`
	First  string `json:"first"`
	Last   string `json:"last"`
	Mobile string `json:"mobile"`
}

type CustomerStore struct {
	s *Store
}

func (cs *CustomerStore) List(ctx context.Context) ([]customeruc.Customer, error) {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()
	return cs.listLocked()
}

func (cs *CustomerStore) listLocked() ([]customeruc.Customer, error) {
	recs, err := readList[customerRec](cs.s, customersFile)
	if err != nil {
		return nil, err
	}
	out := make([]customeruc.Customer, 0, len(recs))
	for _, r := range recs {
		out = append(out, customeruc.Customer(r))
	}
	return out, nil
}

func (cs *CustomerStore) Create(ctx context.Context, in customeruc.CreateInput) (*customeruc.Customer, error) {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	recs, err := readList[customerRec](cs.s, customersFile)
	if err != nil {
		return nil, err
	}
	rec := customerRec{
		ID:     uuid.New().String(),
		First:  in.First,
		Last:   in.Last,
		Mobile: in.Mobile,
	}
	recs = append(recs, rec)
	if err := writeList(cs.s, customersFile, recs); err != nil {
		return nil, err
	}
	c := customeruc.Customer(rec)
	return &c, nil
}

func (cs *CustomerStore) Delete(ctx context.Context, id string) (bool, error) {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	recs, err := readList[customerRec](cs.s, customersFile)
	if err != nil {
		return false, err
	}
	kept := recs[:0]
	found := false
	for _, r := range recs {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return false, nil
	}
	if err := writeList(cs.s, customersFile, kept); err != nil {
		return false, err
	}
	return true, nil
}

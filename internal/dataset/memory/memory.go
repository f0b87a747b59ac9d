package memory

import (
	"context"
	"fmt"

	"leton/internal/core"
	"leton/internal/dataset"
)

// Store is an immutable in-memory dataset. Readers get copies.
type Store struct {
	items   []core.LineItem
	entries []core.CashFlowEntry
}

// New validates the dataset and keeps private copies of both slices.
func New(items []core.LineItem, entries []core.CashFlowEntry) (*Store, error) {
	if err := dataset.ValidateLineItems(items); err != nil {
		return nil, fmt.Errorf("load line items: %w", err)
	}
	if err := dataset.ValidateSeries(entries); err != nil {
		return nil, fmt.Errorf("load cash flow: %w", err)
	}
	return &Store{
		items:   append([]core.LineItem(nil), items...),
		entries: append([]core.CashFlowEntry(nil), entries...),
	}, nil
}

// NewSample returns the built-in sample dataset.
func NewSample() *Store {
	s, err := New(SampleLineItems(), SampleCashFlow())
	if err != nil {
		panic("memory: invalid sample dataset: " + err.Error())
	}
	return s
}

// LineItems implements dataset.LineItemReader.
func (s *Store) LineItems(_ context.Context) ([]core.LineItem, error) {
	return append([]core.LineItem(nil), s.items...), nil
}

// CashFlow implements dataset.CashFlowReader.
func (s *Store) CashFlow(_ context.Context) ([]core.CashFlowEntry, error) {
	return append([]core.CashFlowEntry(nil), s.entries...), nil
}

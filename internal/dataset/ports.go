// Package dataset defines where line items and the cash-flow series come
// from and the load-time checks every source applies.
package dataset

import (
	"context"
	"fmt"

	"leton/internal/core"
)

// Ports for dataset sources.
type (
	LineItemReader interface {
		// LineItems returns the items in dataset order.
		LineItems(ctx context.Context) ([]core.LineItem, error)
	}

	CashFlowReader interface {
		// CashFlow returns the series in chronological order.
		CashFlow(ctx context.Context) ([]core.CashFlowEntry, error)
	}

	Source interface {
		LineItemReader
		CashFlowReader
	}
)

// ValidateLineItems rejects malformed items and duplicate ids.
func ValidateLineItems(items []core.LineItem) error {
	seen := make(map[string]struct{}, len(items))
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return err
		}
		if _, ok := seen[li.ID]; ok {
			return fmt.Errorf("%w: duplicate id %s", core.ErrMalformedLineItem, li.ID)
		}
		seen[li.ID] = struct{}{}
	}
	return nil
}

// ValidateSeries rejects malformed entries and periods that are not
// strictly increasing.
func ValidateSeries(entries []core.CashFlowEntry) error {
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
		if i > 0 && !entries[i-1].Period.Before(e.Period) {
			return fmt.Errorf("%w: %s does not follow %s", core.ErrMalformedCashFlow, e.Period, entries[i-1].Period)
		}
	}
	return nil
}

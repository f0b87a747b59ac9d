// Package ledger aggregates estimate vs actual line items: filtered views,
// field totals and profitability.
//
// Every function is pure. Callers own the filter state and pass it in.
package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"leton/internal/core"
)

// Field selects one monetary attribute of a line item.
type Field int

const (
	FieldEstimatedCost Field = iota + 1
	FieldActualCost
	FieldEstimatedRevenue
	FieldActualRevenue
)

func (f Field) String() string {
	switch f {
	case FieldEstimatedCost:
		return "estimated_cost"
	case FieldActualCost:
		return "actual_cost"
	case FieldEstimatedRevenue:
		return "estimated_revenue"
	case FieldActualRevenue:
		return "actual_revenue"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Of returns the selected amount of li. Unknown fields read as zero.
func (f Field) Of(li core.LineItem) core.Money {
	switch f {
	case FieldEstimatedCost:
		return li.EstimatedCost
	case FieldActualCost:
		return li.ActualCost
	case FieldEstimatedRevenue:
		return li.EstimatedRevenue
	case FieldActualRevenue:
		return li.ActualRevenue
	}
	return core.Money{}
}

// ParseStatusFilter maps user input onto a StatusFilter.
// Empty input means all; any other unknown value is rejected.
func ParseStatusFilter(s string) (core.StatusFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return core.FilterAll, nil
	}
	f := core.StatusFilter(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q (want one of %v)", core.ErrInvalidFilterValue, s, core.StatusFilters)
	}
	return f, nil
}

// Filter returns the items whose label contains searchTerm, ignoring case,
// and whose status passes status. Input order is preserved and the input
// slice is not modified.
func Filter(items []core.LineItem, searchTerm string, status core.StatusFilter) []core.LineItem {
	needle := strings.ToLower(searchTerm)
	out := make([]core.LineItem, 0, len(items))
	for _, li := range items {
		if !strings.Contains(strings.ToLower(li.Label), needle) {
			continue
		}
		if !status.Matches(li.Status) {
			continue
		}
		out = append(out, li)
	}
	return out
}

// SumField adds up field across items.
func SumField(items []core.LineItem, field Field) core.Money {
	var total core.Money
	for _, li := range items {
		total = total.Add(field.Of(li))
	}
	return total
}

// effective returns actual when it has been incurred, otherwise estimate.
func effective(estimate, actual core.Money) core.Money {
	if core.Incurred(actual) {
		return actual
	}
	return estimate
}

// ProfitabilityPercent computes (revenue - cost) / cost * 100 over the
// effective figures. It returns exactly 0 when the effective cost is 0.
func ProfitabilityPercent(estCost, actCost, estRev, actRev core.Money) decimal.Decimal {
	cost := effective(estCost, actCost)
	revenue := effective(estRev, actRev)
	return core.Percent(revenue.Sub(cost), cost)
}

// ItemProfitability is ProfitabilityPercent applied to a single item.
func ItemProfitability(li core.LineItem) decimal.Decimal {
	return ProfitabilityPercent(li.EstimatedCost, li.ActualCost, li.EstimatedRevenue, li.ActualRevenue)
}

// Totals holds the four raw field sums of a set of items.
type Totals struct {
	EstimatedCost    core.Money
	ActualCost       core.Money
	EstimatedRevenue core.Money
	ActualRevenue    core.Money
}

// Summary is the totals of a set of items and their overall profitability.
type Summary struct {
	Totals
	Profitability decimal.Decimal
}

// SummaryTotals sums each field and applies the profitability formula once
// to the sums. It never averages per-item percentages.
func SummaryTotals(items []core.LineItem) Summary {
	t := Totals{
		EstimatedCost:    SumField(items, FieldEstimatedCost),
		ActualCost:       SumField(items, FieldActualCost),
		EstimatedRevenue: SumField(items, FieldEstimatedRevenue),
		ActualRevenue:    SumField(items, FieldActualRevenue),
	}
	return Summary{
		Totals:        t,
		Profitability: ProfitabilityPercent(t.EstimatedCost, t.ActualCost, t.EstimatedRevenue, t.ActualRevenue),
	}
}

// Row is one line of the detailed view.
type Row struct {
	Item          core.LineItem
	Profitability decimal.Decimal
}

// Detailed is the per-item table plus its totals row.
type Detailed struct {
	Rows   []Row
	Totals Summary
}

// DetailedRows annotates every item with its own profitability. The totals
// row is computed exactly as SummaryTotals over the same items.
func DetailedRows(items []core.LineItem) Detailed {
	rows := make([]Row, 0, len(items))
	for _, li := range items {
		rows = append(rows, Row{Item: li, Profitability: ItemProfitability(li)})
	}
	return Detailed{Rows: rows, Totals: SummaryTotals(items)}
}

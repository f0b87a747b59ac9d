package ledger

import (
	"github.com/shopspring/decimal"

	"leton/internal/core"
)

// ProjectOverview counts items per status.
type ProjectOverview struct {
	Total      int
	Completed  int
	InProgress int
	Planned    int
}

// Overview tallies items by status.
func Overview(items []core.LineItem) ProjectOverview {
	o := ProjectOverview{Total: len(items)}
	for _, li := range items {
		switch li.Status {
		case core.StatusCompleted:
			o.Completed++
		case core.StatusInProgress:
			o.InProgress++
		case core.StatusPlanned:
			o.Planned++
		}
	}
	return o
}

// Count returns the number of items with status s.
func (o ProjectOverview) Count(s core.Status) int {
	switch s {
	case core.StatusCompleted:
		return o.Completed
	case core.StatusInProgress:
		return o.InProgress
	case core.StatusPlanned:
		return o.Planned
	}
	return 0
}

// CompletionPercent is completed / total * 100, or 0 with no items.
func (o ProjectOverview) CompletionPercent() decimal.Decimal {
	if o.Total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(o.Completed)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(o.Total)))
}

// Variance is the percent change from estimated to actual, 0 when nothing
// was estimated.
func Variance(estimated, actual core.Money) decimal.Decimal {
	return core.Percent(actual.Sub(estimated), estimated)
}

// Budget compares estimated totals with effective totals, where an item
// counts its actual once incurred and its estimate until then.
type Budget struct {
	EstimatedCost    core.Money
	EffectiveCost    core.Money
	EstimatedRevenue core.Money
	EffectiveRevenue core.Money
}

// BudgetOf sums estimated and effective figures across items.
func BudgetOf(items []core.LineItem) Budget {
	var b Budget
	for _, li := range items {
		b.EstimatedCost = b.EstimatedCost.Add(li.EstimatedCost)
		b.EstimatedRevenue = b.EstimatedRevenue.Add(li.EstimatedRevenue)
		if li.CostIncurred() {
			b.EffectiveCost = b.EffectiveCost.Add(li.ActualCost)
		} else {
			b.EffectiveCost = b.EffectiveCost.Add(li.EstimatedCost)
		}
		if li.RevenueIncurred() {
			b.EffectiveRevenue = b.EffectiveRevenue.Add(li.ActualRevenue)
		} else {
			b.EffectiveRevenue = b.EffectiveRevenue.Add(li.EstimatedRevenue)
		}
	}
	return b
}

// CostVariance is the percent overrun of effective cost over estimate.
func (b Budget) CostVariance() decimal.Decimal {
	return Variance(b.EstimatedCost, b.EffectiveCost)
}

// RevenueVariance is the percent change of effective revenue from estimate.
func (b Budget) RevenueVariance() decimal.Decimal {
	return Variance(b.EstimatedRevenue, b.EffectiveRevenue)
}

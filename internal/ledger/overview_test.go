package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leton/internal/core"
	"leton/internal/dataset/memory"
)

func TestOverview(t *testing.T) {
	o := Overview(memory.SampleLineItems())
	assert.Equal(t, ProjectOverview{Total: 12, Completed: 4, InProgress: 3, Planned: 5}, o)
	assert.Equal(t, 3, o.Count(core.StatusInProgress))
	assert.Equal(t, 0, o.Count("unknown"))
	assert.Equal(t, "33.3", o.CompletionPercent().StringFixed(1))
}

func TestOverview_Empty(t *testing.T) {
	o := Overview(nil)
	assert.Zero(t, o.Total)
	assert.True(t, o.CompletionPercent().IsZero())
}

func TestVariance(t *testing.T) {
	assert.Equal(t, "9.6", Variance(core.FromUnits(125000), core.FromUnits(137000)).StringFixed(1))
	assert.Equal(t, "-20.4", Variance(core.FromUnits(125000), core.FromUnits(99500)).StringFixed(1))
	assert.True(t, Variance(core.Money{}, core.FromUnits(10)).IsZero())
}

func TestBudgetOf_SampleIsOverBudget(t *testing.T) {
	b := BudgetOf(memory.SampleLineItems())

	assert.Equal(t, core.FromUnits(125000), b.EstimatedCost)
	assert.Equal(t, core.FromUnits(131500), b.EffectiveCost)
	assert.Equal(t, core.FromUnits(184000), b.EstimatedRevenue)
	assert.Equal(t, core.FromUnits(190000), b.EffectiveRevenue)
	assert.Equal(t, "5.2", b.CostVariance().StringFixed(1))
	assert.Equal(t, "3.3", b.RevenueVariance().StringFixed(1))
}

func TestBudgetOf_NotIncurredFallsBackToEstimate(t *testing.T) {
	planned := item("7", "Testing", 10000, 0, 15000, 0, core.StatusPlanned)
	b := BudgetOf([]core.LineItem{planned})
	assert.Equal(t, b.EstimatedCost, b.EffectiveCost)
	assert.True(t, b.CostVariance().IsZero())
	assert.True(t, b.RevenueVariance().IsZero())
}

func TestBudgetOf_Empty(t *testing.T) {
	b := BudgetOf(nil)
	assert.Equal(t, Budget{}, b)
	assert.True(t, b.CostVariance().IsZero())
}

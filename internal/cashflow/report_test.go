package cashflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leton/internal/core"
	"leton/internal/dataset/memory"
)

func TestBuildReport_Sample(t *testing.T) {
	r := BuildReport(memory.SampleCashFlow(), 2)

	assert.Len(t, r.Entries, 8)
	assert.Equal(t, core.FromUnits(105500), r.Totals.Net)
	assert.Equal(t, core.FromUnits(45000), r.Status.ProjectedQuarter)
	require.Len(t, r.Outlook.Strongest, 2)
	assert.True(t, r.Outlook.AlwaysPositive)
	assert.Empty(t, r.Warnings)
}

func TestBuildReport_CarriesWarnings(t *testing.T) {
	entries := []core.CashFlowEntry{
		{Period: core.NewPeriod(2025, 1), Inflow: core.FromUnits(10), Outflow: core.FromUnits(-4), Net: core.FromUnits(7)},
	}
	r := BuildReport(entries, 0)
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, core.FromUnits(7), r.Totals.Net, "totals use stored net")
	assert.Empty(t, r.Outlook.Strongest)
}

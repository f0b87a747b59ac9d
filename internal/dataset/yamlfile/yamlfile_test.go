package yamlfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leton/assets"
	"leton/internal/core"
	"leton/internal/dataset/memory"
)

func TestParse_EmbeddedSampleMatchesMemorySample(t *testing.T) {
	ctx := context.Background()
	s, err := Parse(ctx, assets.SampleDataset)
	require.NoError(t, err)

	items, err := s.LineItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, memory.SampleLineItems(), items)

	entries, err := s.CashFlow(ctx)
	require.NoError(t, err)
	assert.Equal(t, memory.SampleCashFlow(), entries)
}

func TestParse_DecimalAndQuotedAmounts(t *testing.T) {
	doc := `
line_items:
  - id: a
    label: Design
    estimated_cost: "1200.50"
    actual_cost: 0
    estimated_revenue: 2000,25
    actual_revenue: ~
    status: planned
cash_flow:
  - period: Jan 2025
    inflow: 10
    outflow: "-4.5"
    net: 5.5
    projected: true
`
	s, err := Parse(context.Background(), []byte(doc))
	require.NoError(t, err)
	items, _ := s.LineItems(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, core.Money{Cents: 120050}, items[0].EstimatedCost)
	assert.Equal(t, core.Money{Cents: 200025}, items[0].EstimatedRevenue)
	assert.False(t, items[0].RevenueIncurred())

	entries, _ := s.CashFlow(context.Background())
	require.Len(t, entries, 1)
	assert.Equal(t, core.Money{Cents: -450}, entries[0].Outflow)
	assert.True(t, entries[0].Consistent())
	assert.True(t, entries[0].Projected)
}

func TestParse_MissingSections(t *testing.T) {
	s, err := Parse(context.Background(), []byte("line_items: []\n"))
	require.NoError(t, err)
	entries, _ := s.CashFlow(context.Background())
	assert.Empty(t, entries)
}

func TestParse_Rejections(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		is   error
	}{
		{
			name: "unknown status",
			doc:  "line_items:\n  - {id: a, label: x, estimated_cost: 1, status: done}\n",
			is:   core.ErrMalformedLineItem,
		},
		{
			name: "negative cost",
			doc:  "line_items:\n  - {id: a, label: x, estimated_cost: -1, status: planned}\n",
			is:   core.ErrMalformedLineItem,
		},
		{
			name: "bad period",
			doc:  "cash_flow:\n  - {period: 2025-01, inflow: 1, outflow: 0, net: 1}\n",
			is:   core.ErrInvalidPeriod,
		},
		{
			name: "outflow sign",
			doc:  "cash_flow:\n  - {period: Jan 2025, inflow: 1, outflow: 2, net: 3}\n",
			is:   core.ErrMalformedCashFlow,
		},
		{
			name: "unordered",
			doc:  "cash_flow:\n  - {period: Feb 2025, inflow: 1, outflow: 0, net: 1}\n  - {period: Jan 2025, inflow: 1, outflow: 0, net: 1}\n",
			is:   core.ErrMalformedCashFlow,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(context.Background(), []byte(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.is), "got %v", err)
		})
	}
}

func TestParse_BadAmountAndSyntax(t *testing.T) {
	_, err := Parse(context.Background(), []byte("line_items:\n  - {id: a, label: x, estimated_cost: abc, status: planned}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")

	_, err = Parse(context.Background(), []byte("line_items: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode dataset")
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.yaml")
	require.NoError(t, os.WriteFile(path, assets.SampleDataset, 0o644))

	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	items, _ := s.LineItems(context.Background())
	assert.Len(t, items, 12)

	_, err = Open(context.Background(), filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parse(ctx, assets.SampleDataset)
	assert.ErrorIs(t, err, context.Canceled)
}

package render

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"leton/internal/core"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   core.Money
		want string
	}{
		{core.FromUnits(25000), "€25,000"},
		{core.FromUnits(-18000), "-€18,000"},
		{core.FromUnits(0), "€0"},
		{core.Money{Cents: 120050}, "€1,200.50"},
		{core.Money{Cents: 5}, "€0.05"},
		{core.FromUnits(1250000), "€1,250,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.in), "cents=%d", tt.in.Cents)
	}
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+€12,000", FormatSigned(core.FromUnits(12000)))
	assert.Equal(t, "-€500", FormatSigned(core.FromUnits(-500)))
	assert.Equal(t, "€0", FormatSigned(core.Money{}))
}

func TestFormatActual(t *testing.T) {
	assert.Equal(t, "-", FormatActual(core.Money{}))
	assert.Equal(t, "€4,800", FormatActual(core.FromUnits(4800)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "41.7%", FormatPercent(decimal.RequireFromString("41.666")))
	assert.Equal(t, "+41.7%", FormatSignedPercent(decimal.RequireFromString("41.666")))
	assert.Equal(t, "-20.4%", FormatSignedPercent(decimal.RequireFromString("-20.4")))
	assert.Equal(t, "0.0%", FormatSignedPercent(decimal.Zero))
	assert.Equal(t, "0.0%", FormatSignedPercent(decimal.RequireFromString("0.01")))
}

package render

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"leton/internal/core"
)

var printer = message.NewPrinter(language.English)

// FormatMoney formats an amount as euros with grouped thousands
// (e.g. "€25,000", "-€18,000", "€1,200.50"). Cents are shown only when
// non-zero.
func FormatMoney(m core.Money) string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := "€" + printer.Sprintf("%d", cents/100)
	if rem := cents % 100; rem != 0 {
		s += fmt.Sprintf(".%02d", rem)
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatSigned is FormatMoney with an explicit "+" on positive amounts.
func FormatSigned(m core.Money) string {
	if m.Cents > 0 {
		return "+" + FormatMoney(m)
	}
	return FormatMoney(m)
}

// FormatActual renders an actual amount, or "-" when nothing was incurred.
func FormatActual(m core.Money) string {
	if !core.Incurred(m) {
		return "-"
	}
	return FormatMoney(m)
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

// FormatSignedPercent is FormatPercent with an explicit "+" on positive values.
func FormatSignedPercent(d decimal.Decimal) string {
	s := FormatPercent(d)
	if d.Round(1).IsPositive() {
		return "+" + s
	}
	return s
}

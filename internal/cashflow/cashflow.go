// Package cashflow summarizes a chronological monthly cash-flow series.
package cashflow

import (
	"fmt"

	"leton/internal/core"
)

// Classification tags an entry as profit or loss.
type Classification string

const (
	Profit Classification = "profit"
	Loss   Classification = "loss"
)

// Summary holds the three independent reductions of a series.
type Summary struct {
	Inflow  core.Money
	Outflow core.Money // non-positive
	Net     core.Money
}

// Totals sums inflow, outflow and net separately. Net is summed from the
// stored values, not rederived from inflow and outflow.
func Totals(entries []core.CashFlowEntry) Summary {
	var s Summary
	for _, e := range entries {
		s.Inflow = s.Inflow.Add(e.Inflow)
		s.Outflow = s.Outflow.Add(e.Outflow)
		s.Net = s.Net.Add(e.Net)
	}
	return s
}

// Classify returns Profit when net >= 0 and Loss otherwise.
func Classify(e core.CashFlowEntry) Classification {
	if e.Net.Cents >= 0 {
		return Profit
	}
	return Loss
}

// IntegrityWarning reports an entry whose stored net disagrees with
// inflow + outflow.
type IntegrityWarning struct {
	Period   core.Period
	Expected core.Money
	Actual   core.Money
}

func (w IntegrityWarning) String() string {
	return fmt.Sprintf("%s: net %d != inflow + outflow %d (cents)", w.Period, w.Actual.Cents, w.Expected.Cents)
}

// CheckIntegrity returns one warning per inconsistent entry, in series order.
func CheckIntegrity(entries []core.CashFlowEntry) []IntegrityWarning {
	var out []IntegrityWarning
	for _, e := range entries {
		if e.Consistent() {
			continue
		}
		out = append(out, IntegrityWarning{Period: e.Period, Expected: e.ExpectedNet(), Actual: e.Net})
	}
	return out
}

// Split separates historical entries from projected ones, keeping order.
func Split(entries []core.CashFlowEntry) (historical, projected []core.CashFlowEntry) {
	for _, e := range entries {
		if e.Projected {
			projected = append(projected, e)
		} else {
			historical = append(historical, e)
		}
	}
	return historical, projected
}

package cashflow

import (
	"sort"

	"leton/internal/core"
)

// QuarterMonths is the number of projected months in the projected quarter.
const QuarterMonths = 3

// StatusCard is the at-a-glance cash position.
type StatusCard struct {
	Current    core.CashFlowEntry // last historical month
	HasCurrent bool
	Next       core.CashFlowEntry // first projected month
	HasNext    bool

	// ProjectedQuarter sums the net of up to QuarterMonths projected
	// entries; QuarterCovered says how many were available.
	ProjectedQuarter core.Money
	QuarterCovered   int
}

// Status builds the status card from a chronological series.
func Status(entries []core.CashFlowEntry) StatusCard {
	var c StatusCard
	historical, projected := Split(entries)
	if n := len(historical); n > 0 {
		c.Current, c.HasCurrent = historical[n-1], true
	}
	if len(projected) > 0 {
		c.Next, c.HasNext = projected[0], true
	}
	for i := 0; i < len(projected) && i < QuarterMonths; i++ {
		c.ProjectedQuarter = c.ProjectedQuarter.Add(projected[i].Net)
		c.QuarterCovered++
	}
	return c
}

// LiquidityOutlook summarizes the projected part of a series.
type LiquidityOutlook struct {
	ProjectedMonths int
	AlwaysPositive  bool // every projected net >= 0
	FirstLoss       core.Period
	HasLoss         bool
	Strongest       []core.CashFlowEntry // highest projected nets, best first
}

// Outlook inspects projected entries and picks the n strongest by net.
// Ties keep chronological order.
func Outlook(entries []core.CashFlowEntry, n int) LiquidityOutlook {
	_, projected := Split(entries)
	o := LiquidityOutlook{ProjectedMonths: len(projected), AlwaysPositive: true}
	for _, e := range projected {
		if Classify(e) == Loss {
			o.AlwaysPositive = false
			if !o.HasLoss {
				o.FirstLoss, o.HasLoss = e.Period, true
			}
		}
	}
	if n <= 0 || len(projected) == 0 {
		return o
	}
	ranked := append([]core.CashFlowEntry(nil), projected...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Net.Cents > ranked[j].Net.Cents
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	o.Strongest = ranked
	return o
}

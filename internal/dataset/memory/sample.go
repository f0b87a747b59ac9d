package memory

import (
	"time"

	"leton/internal/core"
)

func li(id, label string, estCost, actCost, estRev, actRev int64, st core.Status) core.LineItem {
	return core.LineItem{
		ID:               id,
		Label:            label,
		EstimatedCost:    core.FromUnits(estCost),
		ActualCost:       core.FromUnits(actCost),
		EstimatedRevenue: core.FromUnits(estRev),
		ActualRevenue:    core.FromUnits(actRev),
		Status:           st,
	}
}

func cf(year int, month time.Month, in, out, net int64, projected bool) core.CashFlowEntry {
	return core.CashFlowEntry{
		Period:    core.NewPeriod(year, month),
		Inflow:    core.FromUnits(in),
		Outflow:   core.FromUnits(out),
		Net:       core.FromUnits(net),
		Projected: projected,
	}
}

// SampleLineItems returns a fresh copy of the sample project ledger.
func SampleLineItems() []core.LineItem {
	return []core.LineItem{
		li("1", "Project Planning & Analysis", 5000, 4800, 8000, 8200, core.StatusCompleted),
		li("2", "UI/UX Design Development", 12000, 13500, 18000, 19000, core.StatusCompleted),
		li("3", "Frontend Development", 25000, 26800, 35000, 36500, core.StatusInProgress),
		li("4", "Backend Infrastructure", 20000, 22000, 28000, 29000, core.StatusInProgress),
		li("5", "Database Design & Setup", 8000, 7500, 12000, 12500, core.StatusCompleted),
		li("6", "API Development", 15000, 16200, 22000, 23000, core.StatusInProgress),
		li("7", "Testing & Quality Assurance", 10000, 0, 15000, 0, core.StatusPlanned),
		li("8", "Security Implementation", 8000, 8700, 12000, 12800, core.StatusCompleted),
		li("9", "Performance Optimization", 6000, 0, 9000, 0, core.StatusPlanned),
		li("10", "Documentation & Training", 5000, 0, 8000, 0, core.StatusPlanned),
		li("11", "Deployment & Launch", 7000, 0, 10000, 0, core.StatusPlanned),
		li("12", "Post-Launch Support", 4000, 0, 7000, 0, core.StatusPlanned),
	}
}

// SampleCashFlow returns a fresh copy of the sample monthly series.
func SampleCashFlow() []core.CashFlowEntry {
	return []core.CashFlowEntry{
		cf(2024, time.October, 25000, -18000, 7000, false),
		cf(2024, time.November, 32000, -22000, 10000, false),
		cf(2024, time.December, 28000, -16000, 12000, false),
		cf(2025, time.January, 35000, -26500, 8500, true),
		cf(2025, time.February, 42000, -28000, 14000, true),
		cf(2025, time.March, 48000, -25500, 22500, true),
		cf(2025, time.April, 38000, -23000, 15000, true),
		cf(2025, time.May, 45000, -28500, 16500, true),
	}
}

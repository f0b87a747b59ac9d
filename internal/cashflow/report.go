package cashflow

import "leton/internal/core"

// Report bundles everything a cash-flow view shows for one series.
type Report struct {
	Entries  []core.CashFlowEntry
	Totals   Summary
	Status   StatusCard
	Outlook  LiquidityOutlook
	Warnings []IntegrityWarning
}

// BuildReport computes every cash-flow reduction over entries, ranking the
// strongest n projected months.
func BuildReport(entries []core.CashFlowEntry, strongest int) Report {
	return Report{
		Entries:  entries,
		Totals:   Totals(entries),
		Status:   Status(entries),
		Outlook:  Outlook(entries, strongest),
		Warnings: CheckIntegrity(entries),
	}
}

// Package render turns ledger and cash-flow results into terminal text
// and a static HTML dashboard.
package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"leton/internal/cashflow"
	"leton/internal/core"
	"leton/internal/ledger"
)

// Query is the active search term and status filter of an estimates view.
type Query struct {
	Search string
	Status core.StatusFilter
}

// Active reports whether the query narrows the item list.
func (q Query) Active() bool {
	return strings.TrimSpace(q.Search) != "" || (q.Status != "" && q.Status != core.FilterAll)
}

func (q Query) String() string {
	status := q.Status
	if status == "" {
		status = core.FilterAll
	}
	if strings.TrimSpace(q.Search) == "" {
		return fmt.Sprintf("status: %s", status)
	}
	return fmt.Sprintf("search: %q, status: %s", q.Search, status)
}

func (t *Theme) percent(d decimal.Decimal) string {
	s := FormatSignedPercent(d)
	if d.IsNegative() {
		return t.Loss.Render(s)
	}
	return t.Profit.Render(s)
}

func (t *Theme) money(m core.Money) string {
	if m.Cents < 0 {
		return t.Loss.Render(FormatMoney(m))
	}
	return t.Profit.Render(FormatMoney(m))
}

// Summary renders the four totals and the overall profitability.
func (t *Theme) Summary(s ledger.Summary, q Query) string {
	var b strings.Builder
	b.WriteString(t.Section("Estimates vs actuals"))
	if q.Active() {
		b.WriteString(t.Dim.Render(q.String()) + "\n")
	}
	b.WriteString(t.Pairs([][2]string{
		{"Estimated cost", FormatMoney(s.EstimatedCost)},
		{"Actual cost", FormatMoney(s.ActualCost)},
		{"Estimated revenue", FormatMoney(s.EstimatedRevenue)},
		{"Actual revenue", FormatMoney(s.ActualRevenue)},
		{"Profitability", t.percent(s.Profitability)},
	}))
	return b.String()
}

// Detailed renders one row per item followed by the totals row.
func (t *Theme) Detailed(d ledger.Detailed, q Query) string {
	var b strings.Builder
	b.WriteString(t.Section("Detailed estimates vs actuals"))
	if q.Active() {
		b.WriteString(t.Dim.Render(q.String()) + "\n")
	}
	if len(d.Rows) == 0 {
		b.WriteString(t.Dim.Render("No line items match the current filters.") + "\n")
	}

	tbl := Table{
		Headers: []string{"ID", "Item", "Status", "Est. cost", "Act. cost", "Est. revenue", "Act. revenue", "Profit"},
		Right:   []int{3, 4, 5, 6, 7},
	}
	for _, r := range d.Rows {
		li := r.Item
		tbl.Rows = append(tbl.Rows, []string{
			li.ID,
			li.Label,
			t.status(li.Status),
			FormatMoney(li.EstimatedCost),
			FormatActual(li.ActualCost),
			FormatMoney(li.EstimatedRevenue),
			FormatActual(li.ActualRevenue),
			t.percent(r.Profitability),
		})
	}
	tot := d.Totals
	tbl.Footer = []string{
		"",
		"Total",
		"",
		FormatMoney(tot.EstimatedCost),
		FormatMoney(tot.ActualCost),
		FormatMoney(tot.EstimatedRevenue),
		FormatMoney(tot.ActualRevenue),
		t.percent(tot.Profitability),
	}
	b.WriteString(t.Table(tbl))
	return b.String()
}

func (t *Theme) status(s core.Status) string {
	switch s {
	case core.StatusCompleted:
		return t.Profit.Render(s.Label())
	case core.StatusInProgress:
		return t.Accent.Render(s.Label())
	default:
		return t.Dim.Render(s.Label())
	}
}

// Overview renders the project overview card and the budget variance.
// Variance compares estimates with effective figures, so items that have
// not incurred anything yet count at their estimate.
func (t *Theme) Overview(o ledger.ProjectOverview, b ledger.Budget, s ledger.Summary) string {
	pairs := [][2]string{{"Total line items", fmt.Sprintf("%d", o.Total)}}
	for _, st := range core.Statuses {
		label := st.Label()
		pairs = append(pairs, [2]string{strings.ToUpper(label[:1]) + label[1:], fmt.Sprintf("%d/%d", o.Count(st), o.Total)})
	}
	pairs = append(pairs, [2]string{"Completion", FormatPercent(o.CompletionPercent())})

	var sb strings.Builder
	sb.WriteString(t.Section("Project overview"))
	sb.WriteString(t.Pairs(pairs))
	sb.WriteString("\n")
	sb.WriteString(t.Section("Estimates vs actuals"))
	sb.WriteString(t.Pairs([][2]string{
		{"Estimated cost", FormatMoney(b.EstimatedCost)},
		{"Effective cost", FormatMoney(b.EffectiveCost)},
		{"Cost variance", t.variance(b.CostVariance(), true)},
		{"Estimated revenue", FormatMoney(b.EstimatedRevenue)},
		{"Effective revenue", FormatMoney(b.EffectiveRevenue)},
		{"Revenue variance", t.variance(b.RevenueVariance(), false)},
		{"Profitability", t.percent(s.Profitability)},
	}))
	return sb.String()
}

// variance colours an overrun as a loss for costs and as a profit for revenue.
func (t *Theme) variance(d decimal.Decimal, cost bool) string {
	s := FormatSignedPercent(d)
	if d.IsPositive() == cost && !d.IsZero() {
		return t.Loss.Render(s)
	}
	return t.Profit.Render(s)
}

// CashFlow renders the monthly series, its totals, the status card and the
// liquidity outlook.
func (t *Theme) CashFlow(r cashflow.Report) string {
	var b strings.Builder
	b.WriteString(t.Section("Monthly cash flow"))
	if len(r.Entries) == 0 {
		b.WriteString(t.Dim.Render("No cash flow entries.") + "\n")
	}

	tbl := Table{
		Headers: []string{"Month", "Kind", "Inflow", "Outflow", "Net", "Result"},
		Right:   []int{2, 3, 4},
	}
	for _, e := range r.Entries {
		kind := "actual"
		if e.Projected {
			kind = t.Dim.Render("projected")
		}
		tbl.Rows = append(tbl.Rows, []string{
			e.Period.String(),
			kind,
			FormatMoney(e.Inflow),
			FormatMoney(e.Outflow),
			t.money(e.Net),
			t.classification(cashflow.Classify(e)),
		})
	}
	tbl.Footer = []string{
		"Total",
		"",
		FormatMoney(r.Totals.Inflow),
		FormatMoney(r.Totals.Outflow),
		FormatMoney(r.Totals.Net),
		"",
	}
	b.WriteString(t.Table(tbl))

	if len(r.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range r.Warnings {
			b.WriteString(t.Warn.Render("! "+w.String()) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(t.StatusCard(r.Status))
	b.WriteString("\n")
	b.WriteString(t.Outlook(r.Outlook))
	return b.String()
}

func (t *Theme) classification(c cashflow.Classification) string {
	if c == cashflow.Loss {
		return t.Loss.Render("LOSS")
	}
	return t.Profit.Render("PROFIT")
}

// StatusCard renders the current month, next month and projected quarter.
func (t *Theme) StatusCard(c cashflow.StatusCard) string {
	current, next := "n/a", "n/a"
	currentLabel, nextLabel := "Current month", "Next month"
	if c.HasCurrent {
		currentLabel += " (" + c.Current.Period.String() + ")"
		current = t.money(c.Current.Net)
	}
	if c.HasNext {
		nextLabel += " (" + c.Next.Period.String() + ")"
		next = t.money(c.Next.Net)
	}
	quarter := "n/a"
	if c.QuarterCovered > 0 {
		quarter = t.money(c.ProjectedQuarter)
		if c.QuarterCovered < cashflow.QuarterMonths {
			quarter += t.Dim.Render(fmt.Sprintf(" (%d of %d months)", c.QuarterCovered, cashflow.QuarterMonths))
		}
	}

	var b strings.Builder
	b.WriteString(t.Section("Cash flow status"))
	b.WriteString(t.Pairs([][2]string{
		{currentLabel, current},
		{nextLabel, next},
		{"Projected quarter", quarter},
	}))
	return b.String()
}

// Outlook renders the liquidity outlook of the projected months.
func (t *Theme) Outlook(o cashflow.LiquidityOutlook) string {
	var b strings.Builder
	b.WriteString(t.Section("Liquidity outlook"))
	if o.ProjectedMonths == 0 {
		b.WriteString(t.Dim.Render("No projected months.") + "\n")
		return b.String()
	}

	health := t.Profit.Render("positive cash flow in every projected month")
	if o.HasLoss {
		health = t.Loss.Render("first projected loss in " + o.FirstLoss.String())
	}
	strongest := make([]string, 0, len(o.Strongest))
	for _, e := range o.Strongest {
		strongest = append(strongest, fmt.Sprintf("%s (%s)", e.Period, FormatSigned(e.Net)))
	}
	pairs := [][2]string{
		{"Projected months", fmt.Sprintf("%d", o.ProjectedMonths)},
		{"Liquidity", health},
	}
	if len(strongest) > 0 {
		pairs = append(pairs, [2]string{"Strongest months", strings.Join(strongest, ", ")})
	}
	b.WriteString(t.Pairs(pairs))
	return b.String()
}

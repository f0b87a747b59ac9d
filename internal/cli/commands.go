package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"leton/internal/cashflow"
	"leton/internal/ledger"
	"leton/internal/log"
	"leton/internal/render"
	"leton/internal/tui"
)

// ErrNotInteractive is returned by the tui command without a terminal.
var ErrNotInteractive = errors.New("the tui command needs an interactive terminal")

type queryFlags struct {
	search string
	status string
}

func (q *queryFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&q.search, "search", "", "Case-insensitive substring match on item labels")
	fs.StringVar(&q.status, "status", "all", "Status filter: all, completed, in-progress, planned")
}

func (q *queryFlags) query() (render.Query, error) {
	status, err := ledger.ParseStatusFilter(q.status)
	if err != nil {
		return render.Query{}, err
	}
	return render.Query{Search: q.search, Status: status}, nil
}

func newSummaryCmd(app *App) *cobra.Command {
	var qf queryFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show estimate and actual totals with overall profitability",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := qf.query()
			if err != nil {
				return err
			}
			items, _, err := app.load(cmd.Context())
			if err != nil {
				return err
			}
			filtered := ledger.Filter(items, q.Search, q.Status)
			app.Logger.WithComponent(log.ComponentLedger).DebugContext(cmd.Context(), "Items filtered",
				append(log.NewFields().WithOperation(log.OpFilter).WithFilter(q.Search, string(q.Status)).ToSlice(),
					log.FieldItems, len(filtered))...)

			fmt.Fprint(cmd.OutOrStdout(), app.theme().Summary(ledger.SummaryTotals(filtered), q))
			return nil
		},
	}
	qf.register(cmd.Flags())

	return cmd
}

func newDetailedCmd(app *App) *cobra.Command {
	var qf queryFlags

	cmd := &cobra.Command{
		Use:   "detailed",
		Short: "Show every line item with its profitability and a totals row",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := qf.query()
			if err != nil {
				return err
			}
			items, _, err := app.load(cmd.Context())
			if err != nil {
				return err
			}
			filtered := ledger.Filter(items, q.Search, q.Status)
			fmt.Fprint(cmd.OutOrStdout(), app.theme().Detailed(ledger.DetailedRows(filtered), q))
			return nil
		},
	}
	qf.register(cmd.Flags())

	return cmd
}

func newCashFlowCmd(app *App) *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Show the monthly cash-flow series, totals and liquidity outlook",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, entries, err := app.load(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("months") {
				months = app.Config.StrongestMonths
			}
			report := cashflow.BuildReport(entries, months)
			logIntegrity(cmd, app, report)

			fmt.Fprint(cmd.OutOrStdout(), app.theme().CashFlow(report))
			return nil
		},
	}
	cmd.Flags().IntVar(&months, "months", 2, "Number of strongest projected months to list")

	return cmd
}

func logIntegrity(cmd *cobra.Command, app *App, r cashflow.Report) {
	l := app.Logger.WithComponent(log.ComponentCashFlow)
	for _, w := range r.Warnings {
		l.WarnContext(cmd.Context(), "Cash flow entry net does not match inflow plus outflow",
			log.FieldOperation, log.OpValidate,
			log.FieldPeriod, w.Period.String(),
			log.FieldExpected, w.Expected.Cents,
			log.FieldActual, w.Actual.Cents)
	}
}

func newOverviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show item counts per status and estimate variance",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, _, err := app.load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), app.theme().Overview(ledger.Overview(items), ledger.BudgetOf(items), ledger.SummaryTotals(items)))
			return nil
		},
	}
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return ErrNotInteractive
			}
			items, entries, err := app.load(cmd.Context())
			if err != nil {
				return err
			}
			report := cashflow.BuildReport(entries, app.Config.StrongestMonths)
			logIntegrity(cmd, app, report)

			app.Logger.WithComponent(log.ComponentTUI).InfoContext(cmd.Context(), "Starting dashboard",
				log.NewFields().WithOperation(log.OpStartup).WithDataset(len(items), len(entries)).ToSlice()...)

			run := app.RunTUI
			if run == nil {
				run = RunProgram
			}
			return run(tui.New(items, report, render.NewTheme(app.Out, true)))
		},
	}
}

func newHTMLCmd(app *App) *cobra.Command {
	var (
		qf  queryFlags
		out string
	)

	cmd := &cobra.Command{
		Use:   "html",
		Short: "Write a self-contained HTML dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := qf.query()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("out") {
				out = app.Config.HTMLOut
			}
			items, entries, err := app.load(cmd.Context())
			if err != nil {
				return err
			}
			report := cashflow.BuildReport(entries, app.Config.StrongestMonths)
			logIntegrity(cmd, app, report)

			filtered := ledger.Filter(items, q.Search, q.Status)
			d := render.Dashboard{
				GeneratedAt: time.Now(),
				Query:       q,
				Summary:     ledger.SummaryTotals(filtered),
				Detailed:    ledger.DetailedRows(filtered),
				Overview:    ledger.Overview(items),
				CashFlow:    report,
			}
			start := time.Now()
			if err := writeDashboard(out, d); err != nil {
				return err
			}
			app.Logger.WithComponent(log.ComponentRender).DebugContext(cmd.Context(), "Dashboard rendered",
				log.FieldOperation, log.OpRender,
				log.FieldDuration, time.Since(start).Milliseconds())

			app.Logger.WithComponent(log.ComponentExport).InfoContext(cmd.Context(), "Dashboard written",
				log.FieldOperation, log.OpExport,
				log.FieldPath, out)
			fmt.Fprintf(cmd.OutOrStdout(), "Dashboard written to %s\n", out)
			return nil
		},
	}
	qf.register(cmd.Flags())
	cmd.Flags().StringVar(&out, "out", "dashboard.html", "Output file")

	return cmd
}

func writeDashboard(path string, d render.Dashboard) error {
	return writeRendered(path, func(w io.Writer) error {
		return render.WriteHTML(w, d)
	})
}

// writeRendered renders into memory first, so a failed render leaves no
// file behind and an existing file untouched.
func writeRendered(path string, fill func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fill(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"leton/internal/config"
	"leton/internal/core"
	"leton/internal/dataset"
	"leton/internal/log"
	"leton/internal/render"
)

// App holds what every subcommand needs.
type App struct {
	Config *config.Config
	Logger *log.Logger
	Out    io.Writer

	// Color enables styled output on Out.
	Color bool
	// IsInteractive reports whether a terminal is attached for the TUI.
	IsInteractive func() bool
	// RunTUI starts the interactive program. Defaults to RunProgram.
	RunTUI func(m tea.Model) error

	// Open returns the dataset source. Defaults to OpenDataset.
	Open func(ctx context.Context, cfg *config.Config, logger *log.Logger) (dataset.Source, error)
}

// RunProgram runs m full screen until it quits.
func RunProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (a *App) theme() *render.Theme {
	return render.NewTheme(a.Out, a.Color)
}

func (a *App) load(ctx context.Context) ([]core.LineItem, []core.CashFlowEntry, error) {
	open := a.Open
	if open == nil {
		open = OpenDataset
	}
	src, err := open(ctx, a.Config, a.Logger)
	if err != nil {
		return nil, nil, err
	}
	items, err := src.LineItems(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("read line items: %w", err)
	}
	entries, err := src.CashFlow(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("read cash flow: %w", err)
	}
	a.Logger.WithComponent(log.ComponentDataset).DebugContext(ctx, "Dataset read",
		log.NewFields().WithOperation(log.OpLoad).WithDataset(len(items), len(entries)).ToSlice()...)
	return items, entries, nil
}

// NewRootCmd creates the top-level "leton" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "leton",
		Short:         "Project estimates, actuals and cash-flow reporting",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.Logger.WithComponent(log.ComponentCLI).DebugContext(cmd.Context(), "Command started",
				log.FieldOperation, log.OpStartup,
				log.FieldCommand, cmd.Name(),
				log.FieldBackend, app.Config.DataBackend)
		},
	}
	root.SetOut(app.Out)

	root.AddCommand(
		newSummaryCmd(app),
		newDetailedCmd(app),
		newCashFlowCmd(app),
		newOverviewCmd(app),
		newTUICmd(app),
		newHTMLCmd(app),
	)

	return root
}

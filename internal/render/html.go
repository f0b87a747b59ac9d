package render

import (
	"fmt"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"leton/internal/cashflow"
	"leton/internal/core"
	"leton/internal/ledger"
	appweb "leton/web"
)

// Dashboard is the data behind the static HTML export.
type Dashboard struct {
	Title       string
	GeneratedAt time.Time
	Query       Query
	Summary     ledger.Summary
	Detailed    ledger.Detailed
	Overview    ledger.ProjectOverview
	CashFlow    cashflow.Report
}

var templateFuncs = template.FuncMap{
	"money":         FormatMoney,
	"signedMoney":   FormatSigned,
	"actual":        FormatActual,
	"percent":       FormatPercent,
	"signedPercent": FormatSignedPercent,
	"tone": func(d decimal.Decimal) string {
		if d.IsNegative() {
			return "loss"
		}
		return "profit"
	},
	"moneyTone": func(m core.Money) string {
		if m.Cents < 0 {
			return "loss"
		}
		return "profit"
	},
	"classify": func(e core.CashFlowEntry) string {
		return string(cashflow.Classify(e))
	},
}

var (
	templatesOnce sync.Once
	templates     *template.Template
	templatesErr  error
)

func parsedTemplates() (*template.Template, error) {
	templatesOnce.Do(func() {
		templates, templatesErr = template.New("").Funcs(templateFuncs).ParseFS(appweb.TemplatesFS, "templates/*.html")
	})
	return templates, templatesErr
}

// WriteHTML renders the dashboard as a self-contained HTML page.
func WriteHTML(w io.Writer, d Dashboard) error {
	t, err := parsedTemplates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	if d.Title == "" {
		d.Title = "Project Dashboard"
	}
	if err := t.ExecuteTemplate(w, "dashboard.html", d); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldCommand   = "command"
	FieldSearch    = "search"
	FieldStatus    = "status"
	FieldItems     = "items"
	FieldEntries   = "entries"
	FieldPeriod    = "period"
	FieldExpected  = "expected_cents"
	FieldActual    = "actual_cents"
	FieldDuration  = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentCLI      = "cli"
	ComponentDataset  = "dataset"
	ComponentLedger   = "ledger"
	ComponentCashFlow = "cashflow"
	ComponentRender   = "render"
	ComponentTUI      = "tui"
	ComponentExport   = "export"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpValidate = "validate"
	OpFilter   = "filter"
	OpRender   = "render"
	OpExport   = "export"
	OpStartup  = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithFilter adds the active search term and status filter
func (f LogFields) WithFilter(search, status string) LogFields {
	f[FieldSearch] = search
	f[FieldStatus] = status
	return f
}

// WithDataset adds dataset size fields
func (f LogFields) WithDataset(items, entries int) LogFields {
	f[FieldItems] = items
	f[FieldEntries] = entries
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}

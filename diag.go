package gviz

// Warning codes emitted by pedantic validation.
const (
	// WarnIDCharset flags a column id containing characters outside
	// [A-Za-z0-9_].
	WarnIDCharset = "id-charset"

	// WarnIDReserved flags a column id that collides with a JavaScript
	// reserved word.
	WarnIDReserved = "id-reserved"

	// WarnCellKey flags an unrecognized key in a map-form cell.
	WarnCellKey = "cell-key"

	// WarnRowWidth flags a positional row carrying more entries than there
	// are columns.
	WarnRowWidth = "row-width"
)

// Warning is a non-fatal pedantic diagnostic. Warnings never affect control
// flow: they flow to the sink configured at construction, and TableOpt.Quiet
// suppresses them entirely.
type Warning struct {
	Code    string
	Column  string // column id, when the warning concerns one
	Message string
}

func (t *Table) warn(code, column, message string) {
	t.emit(Warning{Code: code, Column: column, Message: message})
}

func (t *Table) emit(w Warning) {
	if t.quiet {
		return
	}
	t.sink(w)
}

// Warnings returns a copy of the warnings collected by the default sink.
// Always empty when a custom Warn sink or Quiet is configured.
func (t *Table) Warnings() []Warning {
	out := make([]Warning, len(t.warnings))
	copy(out, t.warnings)
	return out
}

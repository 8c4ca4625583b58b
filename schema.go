package gviz

import "fmt"

// schemaDoc is the shared shape of declarative column-definition documents.
// The decoders reject non-scalar id/label/type/pattern values; "p" stays
// opaque and is validated for JSON-encodability at AddColumns.
type schemaDoc struct {
	Columns []columnDef `json:"columns" yaml:"columns" toml:"columns"`
}

type columnDef struct {
	ID      string `json:"id" yaml:"id" toml:"id"`
	Label   string `json:"label" yaml:"label" toml:"label"`
	Type    string `json:"type" yaml:"type" toml:"type"`
	Pattern string `json:"pattern" yaml:"pattern" toml:"pattern"`
	P       any    `json:"p" yaml:"p" toml:"p"`
}

func (d schemaDoc) columns() ([]Column, error) {
	if len(d.Columns) == 0 {
		return nil, fmt.Errorf("%w: document defines no columns", ErrSchema)
	}
	out := make([]Column, len(d.Columns))
	for i, def := range d.Columns {
		ct, err := ParseColumnType(def.Type)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		out[i] = Column{
			ID:      def.ID,
			Label:   def.Label,
			Type:    ct,
			Pattern: def.Pattern,
			P:       def.P,
		}
	}
	return out, nil
}

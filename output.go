package gviz

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// FormatOpt configures Write and Marshal. The zero value means defaults;
// later options override earlier ones field by field.
type FormatOpt struct {
	// Pretty indents the output by 4 spaces per nesting level. Default is
	// compact output with no whitespace between structural tokens.
	Pretty bool

	// Columns selects and orders the exported columns by id. Default is all
	// columns in registration order. Each id must exist; duplicates are
	// honored, so a column may be exported more than once.
	Columns []string
}

// Write serializes the table to w. The output is a JSON-like envelope with
// exactly two keys, "cols" then "rows"; each row is {"c":[...]}; the "v" of
// date-typed cells is raw literal text rather than JSON. Write never mutates
// the table: projection operates on derived views of the cached fragments.
func (t *Table) Write(w io.Writer, opts ...FormatOpt) error {
	var o FormatOpt
	for _, opt := range opts {
		if opt.Pretty {
			o.Pretty = true
		}
		if opt.Columns != nil {
			o.Columns = opt.Columns
		}
	}
	idx, err := t.projection(o.Columns)
	if err != nil {
		return err
	}
	var sb strings.Builder
	if o.Pretty {
		t.composePretty(&sb, idx)
	} else {
		t.composeCompact(&sb, idx)
	}
	_, err = io.WriteString(w, sb.String())
	return err
}

// Marshal serializes the table and returns the bytes.
func (t *Table) Marshal(opts ...FormatOpt) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Write(&buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// projection maps a column filter to column indexes. Selection is by
// position splice, not set membership, so requesting an id twice exports
// that column twice.
func (t *Table) projection(ids []string) ([]int, error) {
	if ids == nil {
		idx := make([]int, len(t.cols))
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}
	idx := make([]int, len(ids))
	for i, id := range ids {
		j, ok := t.idIndex[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown column %q", ErrSchema, id)
		}
		idx[i] = j
	}
	return idx, nil
}

func (t *Table) composeCompact(sb *strings.Builder, idx []int) {
	sb.WriteString(`{"cols":[`)
	for i, j := range idx {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(t.colJSON[j])
	}
	sb.WriteString(`],"rows":[`)
	for i, r := range t.rows {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(`{"c":[`)
		for k, j := range idx {
			if k > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(r.frags[j])
		}
		sb.WriteString(`]}`)
	}
	sb.WriteString(`]}`)
}

// composePretty emits the indented form: 4 spaces per nesting level, empty
// arrays inline, no trailing newline. Cached fragments are spliced in as-is
// and never re-formatted internally.
func (t *Table) composePretty(sb *strings.Builder, idx []int) {
	sb.WriteString("{\n    \"cols\": ")
	if len(idx) == 0 {
		sb.WriteString("[]")
	} else {
		sb.WriteString("[\n")
		for i, j := range idx {
			sb.WriteString("        ")
			sb.WriteString(t.colJSON[j])
			if i < len(idx)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString("    ]")
	}
	sb.WriteString(",\n    \"rows\": ")
	if len(t.rows) == 0 {
		sb.WriteString("[]")
	} else {
		sb.WriteString("[\n")
		for i, r := range t.rows {
			sb.WriteString("        {\"c\":[")
			if len(idx) == 0 {
				sb.WriteString("]}")
			} else {
				sb.WriteByte('\n')
				for k, j := range idx {
					sb.WriteString("            ")
					sb.WriteString(r.frags[j])
					if k < len(idx)-1 {
						sb.WriteByte(',')
					}
					sb.WriteByte('\n')
				}
				sb.WriteString("        ]}")
			}
			if i < len(t.rows)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString("    ]")
	}
	sb.WriteString("\n}")
}

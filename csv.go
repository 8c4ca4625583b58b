package gviz

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cast"
)

// CSVOpt configures AddRowsCSV. The zero value means defaults; later
// options override earlier ones field by field.
type CSVOpt struct {
	// Comma is the field delimiter. Default ','; set '\t' for TSV input.
	Comma rune

	// Header skips the first record.
	Header bool
}

// AddRowsCSV ingests delimited text records as positional rows. Fields align
// with the registered columns and are interpreted under each column's
// declared type: empty fields become null cells, boolean fields must parse
// as booleans ("true"/"false"/"1"/"0"), number fields as numerals, and
// date-typed fields as RFC 3339 timestamps. Like AddRows, ingestion stops at
// the first record that fails and leaves earlier records committed.
func (t *Table) AddRowsCSV(r io.Reader, opts ...CSVOpt) error {
	var o CSVOpt
	for _, opt := range opts {
		if opt.Comma != 0 {
			o.Comma = opt.Comma
		}
		if opt.Header {
			o.Header = true
		}
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	if o.Comma != 0 {
		cr.Comma = o.Comma
	}
	skip := o.Header
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSchema, err)
		}
		if skip {
			skip = false
			continue
		}
		row := make([]any, len(rec))
		for i, field := range rec {
			cell, err := t.csvCell(i, field)
			if err != nil {
				return err
			}
			row[i] = cell
		}
		if err := t.AddRow(row...); err != nil {
			return err
		}
	}
}

// csvCell maps one text field to a raw cell value. Booleans parse here
// because a bare non-empty string would otherwise coerce truthy; every
// other type's interpretation already handles strings.
func (t *Table) csvCell(i int, field string) (any, error) {
	if field == "" {
		return nil, nil
	}
	if i < len(t.cols) && t.cols[i].Type == Boolean {
		b, err := cast.ToBoolE(field)
		if err != nil {
			return nil, fmt.Errorf("%w: column %d: %q is not a boolean", ErrEncoding, i, field)
		}
		return b, nil
	}
	return field, nil
}

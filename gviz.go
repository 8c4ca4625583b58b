package gviz

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrSchema covers fatal validation failures: unknown column types,
	// duplicate ids, keyed rows without id coverage, unknown column
	// references, and values that cannot be carried in the output.
	ErrSchema = errors.New("invalid schema")

	// ErrEncoding covers fatal value-coercion failures while encoding a cell
	// under its column's declared type.
	ErrEncoding = errors.New("cannot encode cell")
)

// ColumnType is the declared type of a column. It governs how every cell in
// that column is encoded; cell values never choose their own encoding.
type ColumnType string

const (
	Date      ColumnType = "date"
	DateTime  ColumnType = "datetime"
	TimeOfDay ColumnType = "timeofday"
	Boolean   ColumnType = "boolean"
	Number    ColumnType = "number"
	String    ColumnType = "string"
)

var columnTypes = []ColumnType{Date, DateTime, TimeOfDay, Boolean, Number, String}

// String returns the type name.
func (ct ColumnType) String() string { return string(ct) }

// ColumnTypes returns all recognized column types.
func ColumnTypes() []ColumnType {
	out := make([]ColumnType, len(columnTypes))
	copy(out, columnTypes)
	return out
}

// ParseColumnType parses a column type string.
func ParseColumnType(s string) (ColumnType, error) {
	for _, ct := range columnTypes {
		if string(ct) == s {
			return ct, nil
		}
	}
	return "", fmt.Errorf("%w: unknown column type %q", ErrSchema, s)
}

func (ct ColumnType) valid() bool {
	switch ct {
	case Date, DateTime, TimeOfDay, Boolean, Number, String:
		return true
	}
	return false
}

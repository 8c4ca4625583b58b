package gviz

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// marshalJSON is the canonical encoder behind every JSON fragment the
// package emits. Map keys come out lexically sorted, which keeps cached
// fragments deterministic and byte-stable across runs.
func marshalJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ColumnsFromJSON parses a JSON column-definition document of the form
//
//	{"columns": [{"id": "d", "label": "Day", "type": "date"}, ...]}
//
// into columns ready for AddColumns. Loading performs no registration;
// id uniqueness and the rest of the schema rules apply at AddColumns.
func ColumnsFromJSON(data []byte) ([]Column, error) {
	var doc schemaDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return doc.columns()
}

package gviz

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ColumnsFromTOML parses a TOML column-definition document of the form
//
//	[[columns]]
//	id = "d"
//	label = "Day"
//	type = "date"
//
// into columns ready for AddColumns. See ColumnsFromJSON.
func ColumnsFromTOML(data []byte) ([]Column, error) {
	var doc schemaDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return doc.columns()
}

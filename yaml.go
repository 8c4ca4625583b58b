package gviz

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ColumnsFromYAML parses a YAML column-definition document of the form
//
//	columns:
//	  - id: d
//	    label: Day
//	    type: date
//
// into columns ready for AddColumns. See ColumnsFromJSON.
func ColumnsFromYAML(data []byte) ([]Column, error) {
	var doc schemaDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return doc.columns()
}

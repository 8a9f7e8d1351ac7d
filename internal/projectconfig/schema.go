package projectconfig

import (
	"encoding/json"
	"fmt"
	"os"
)

// Schema is the JSON structure of a file-based project configuration.
type Schema struct {
	Key         string        `json:"key"`
	DisplayName string        `json:"display_name"`
	Description string        `json:"description,omitempty"`
	Fallback    string        `json:"fallback,omitempty"`
	Rules       []RuleSchema  `json:"rules,omitempty"`
	Parts       []PartSchema  `json:"parts"`
	Groupings   []GroupSchema `json:"groupings"`
}

// RuleSchema defines one keyword rule. Rules are checked in file order.
type RuleSchema struct {
	Track      string   `json:"track"`
	Keywords   []string `json:"keywords"`
	Match      string   `json:"match,omitempty"`
	PartMarker string   `json:"part_marker,omitempty"`
}

// PartSchema defines a dated part. Dates are YYYY-MM-DD, inclusive.
type PartSchema struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// GroupSchema lists the parts reported under one category.
type GroupSchema struct {
	Category string   `json:"category"`
	Parts    []string `json:"parts"`
}

// LoadSchema reads and parses a project configuration JSON file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing project config: %w", err)
	}
	return &schema, nil
}

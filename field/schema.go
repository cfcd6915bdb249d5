package field

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema describes how to decode every interesting key of one payload type.
//
//	name: message
//	fields:
//	  - field: guid
//	  - field: dateCreated
//	    kind: timestamp
//	  - field: isFromMe
//	    kind: boolean
type Schema struct {
	Name   string `yaml:"name"`
	Fields []Rule `yaml:"fields"`
}

// Rule binds one payload key to a Kind. An omitted kind is KindString.
type Rule struct {
	Field string `yaml:"field"`
	Kind  Kind   `yaml:"kind,omitempty"`
}

// ParseSchema parses and validates a YAML schema document.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadSchema reads and parses a YAML schema file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return ParseSchema(data)
}

// Validate checks that the schema is named and that no field repeats.
func (s *Schema) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("schema name is required")
	}

	seen := make(map[string]struct{}, len(s.Fields))
	for i, r := range s.Fields {
		if r.Field == "" {
			return fmt.Errorf("schema %s: rule %d has no field", s.Name, i)
		}
		if _, dup := seen[r.Field]; dup {
			return fmt.Errorf("schema %s: duplicate field %q", s.Name, r.Field)
		}
		seen[r.Field] = struct{}{}
	}
	return nil
}

// Decode applies every rule to m. It stops at the first parse failure.
func (s *Schema) Decode(m Mapping) (map[string]Value, error) {
	out := make(map[string]Value, len(s.Fields))
	for _, r := range s.Fields {
		v, err := Parse(m, r.Field, r.Kind)
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", s.Name, err)
		}
		out[r.Field] = v
	}
	return out, nil
}

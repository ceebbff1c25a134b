package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"revim/internal/model"
)

// LoadFile reads a questionnaire definition from a YAML file and
// validates it. Used to override the builtin questionnaire via
// SCHEMA_PATH.
func LoadFile(path string) (*model.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	var s model.Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("schema: parse %s: %w", path, err)
	}
	if err := Validate(&s); err != nil {
		return nil, fmt.Errorf("schema: %s: %w", path, err)
	}
	return &s, nil
}

// Load returns the schema at path, or the builtin questionnaire when
// path is empty.
func Load(path string) (*model.Schema, error) {
	if path == "" {
		return Builtin(), nil
	}
	return LoadFile(path)
}

// Package catalog loads the embedded vocabulary the UI and validators
// share: object importance levels and the story genre list.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// ImportanceLevel describes one entry of the object-importance scale.
type ImportanceLevel struct {
	Key         string `yaml:"key" json:"key"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description" json:"description"`
}

type catalogFile struct {
	ImportanceLevels []ImportanceLevel `yaml:"importance_levels"`
	Genres           []string          `yaml:"genres"`
}

// Registry holds the loaded catalog. It is immutable after NewRegistry.
type Registry struct {
	importance []ImportanceLevel
	byKey      map[string]ImportanceLevel
	genres     []string
}

// NewRegistry parses the embedded catalog YAML.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if len(file.ImportanceLevels) == 0 {
		return nil, fmt.Errorf("catalog has no importance levels")
	}

	r := &Registry{
		importance: file.ImportanceLevels,
		byKey:      make(map[string]ImportanceLevel, len(file.ImportanceLevels)),
		genres:     file.Genres,
	}
	for _, level := range file.ImportanceLevels {
		r.byKey[level.Key] = level
	}

	return r, nil
}

// ImportanceLevels returns the scale in declaration order.
func (r *Registry) ImportanceLevels() []ImportanceLevel {
	return r.importance
}

// IsValidImportance reports whether key is a known importance level.
func (r *Registry) IsValidImportance(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// Genres returns the known genre keys.
func (r *Registry) Genres() []string {
	return r.genres
}

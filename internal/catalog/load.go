package catalog

import (
	"fmt"
	"os"

	"github.com/alexanderramin/enbridge/internal/domain"
	"gopkg.in/yaml.v3"
)

// fileSchema is the YAML layout of a catalog file.
type fileSchema struct {
	Reference *domain.Reference `yaml:"reference"`
	Metals    []domain.Metal    `yaml:"metals"`
}

// LoadFile reads and validates a YAML catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML catalog data. A missing reference block means oxygen.
func Parse(data []byte) (*Catalog, error) {
	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	ref := domain.Oxygen
	if schema.Reference != nil {
		ref = *schema.Reference
	}
	return New(ref, schema.Metals)
}

// Open returns the catalog at path, or the built-in catalog when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

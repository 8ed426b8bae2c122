package mapping

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"ormbind/internal/annotation"
)

// Default attribute nature and access written by ApplyDefaults.
const (
	DefaultNature = "BASIC"
	DefaultAccess = "FIELD"
)

// LoadFile loads and parses a YAML mapping document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	ApplyDefaults(&doc)

	return &doc, nil
}

// ApplyDefaults fills in default values for optional fields. Parse applies it;
// documents built in code should call it before validation. An attribute
// without an explicit access inherits the entity's Access annotation.
func ApplyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = "1"
	}

	for i := range doc.Entities {
		e := &doc.Entities[i]

		access := DefaultAccess
		if a := e.Annotations.Set().First(annotation.Access); a != nil {
			if v := a.StringOr(annotation.ValueKey, ""); v != "" {
				access = strings.ToUpper(v)
			}
		}

		for j := range e.Attributes {
			attr := &e.Attributes[j]

			if attr.Nature == "" {
				attr.Nature = DefaultNature
			}

			if attr.Access == "" {
				attr.Access = access
			}
		}
	}
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// WriteFile writes a Document to the given path.
func WriteFile(doc *Document, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}

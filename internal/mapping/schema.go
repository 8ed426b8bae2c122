package mapping

import (
	"ormbind/internal/annotation"
	"ormbind/internal/binding"
)

// Document represents the complete YAML mapping document.
type Document struct {
	// Version of the mapping schema.
	Version string `yaml:"version"`
	// Settings configure the binding pass.
	Settings Settings `yaml:"settings,omitempty"`
	// Generators are the global generator definitions.
	Generators Annotations `yaml:"generators,omitempty"`
	// Packages carry package-level annotations.
	Packages []Package `yaml:"packages,omitempty"`
	// Enums lists the declared types that are enumerations.
	Enums []string `yaml:"enums,omitempty"`
	// Entities are the mapped entity types.
	Entities []Entity `yaml:"entities"`
}

// Settings is the YAML form of binding.Settings. Unset flags keep their
// defaults.
type Settings struct {
	NewGeneratorMappings *bool  `yaml:"new_generator_mappings,omitempty"`
	StrictGeneratorNames *bool  `yaml:"strict_generator_names,omitempty"`
	RowIDExpression      string `yaml:"rowid_expression,omitempty"`
}

// Binding converts the document settings to binding settings.
func (s Settings) Binding() binding.Settings {
	out := binding.DefaultSettings()

	if s.NewGeneratorMappings != nil {
		out.NewGeneratorMappings = *s.NewGeneratorMappings
	}

	if s.StrictGeneratorNames != nil {
		out.StrictGeneratorNames = *s.StrictGeneratorNames
	}

	if s.RowIDExpression != "" {
		out.RowIDExpression = s.RowIDExpression
	}

	return out
}

// Package is a package definition with package-level annotations.
type Package struct {
	Name        string      `yaml:"name"`
	Annotations Annotations `yaml:"annotations,omitempty"`
}

// Entity is one mapped entity type.
type Entity struct {
	Name string `yaml:"name"`
	// Package the entity belongs to, for package-scoped generators.
	Package string `yaml:"package,omitempty"`
	// Parent is the name of the entity this one extends, if any.
	Parent      string      `yaml:"parent,omitempty"`
	Annotations Annotations `yaml:"annotations,omitempty"`
	Attributes  []Attribute `yaml:"attributes,omitempty"`
}

// Attribute is one persistent attribute of an entity.
type Attribute struct {
	Name string `yaml:"name"`
	// Type is the declared type name (e.g. "int64", "time.Time").
	Type string `yaml:"type"`
	// Nature is BASIC, EMBEDDED or ASSOCIATION.
	Nature string `yaml:"nature,omitempty"`
	// Access is FIELD or PROPERTY.
	Access      string      `yaml:"access,omitempty"`
	Annotations Annotations `yaml:"annotations,omitempty"`
}

// Annotations is an ordered list of annotations in YAML form.
type Annotations []*annotation.Annotation

// Set returns the annotations as an annotation.Set.
func (a Annotations) Set() annotation.Set {
	return annotation.NewSet(a...)
}

// Entity returns the entity with the given name.
func (d *Document) Entity(name string) (*Entity, bool) {
	for i := range d.Entities {
		if d.Entities[i].Name == name {
			return &d.Entities[i], true
		}
	}

	return nil, false
}

// Package returns the package definition with the given name.
func (d *Document) Package(name string) (*Package, bool) {
	for i := range d.Packages {
		if d.Packages[i].Name == name {
			return &d.Packages[i], true
		}
	}

	return nil, false
}

// Attribute returns the attribute with the given name.
func (e *Entity) Attribute(name string) (*Attribute, bool) {
	for i := range e.Attributes {
		if e.Attributes[i].Name == name {
			return &e.Attributes[i], true
		}
	}

	return nil, false
}

package model

import (
	"ormbind/internal/annotation"
	"ormbind/internal/binding"
)

// Model is the result of binding a mapping document.
type Model struct {
	Settings binding.Settings
	// Global holds the document-level generator definitions.
	Global *binding.GeneratorRegistry

	packages    map[string]*binding.GeneratorRegistry
	entities    map[string]*Entity
	order       []*Entity
	hierarchies []*Hierarchy
}

// Entity returns the bound entity with the given name.
func (m *Model) Entity(name string) (*Entity, bool) {
	e, ok := m.entities[name]
	return e, ok
}

// Entities returns the bound entities, parents before children.
func (m *Model) Entities() []*Entity {
	return append([]*Entity(nil), m.order...)
}

// Hierarchies returns the bound hierarchies in document order of their
// roots.
func (m *Model) Hierarchies() []*Hierarchy {
	return append([]*Hierarchy(nil), m.hierarchies...)
}

// PackageGenerators returns the generator registry of a package.
func (m *Model) PackageGenerators(pkg string) *binding.GeneratorRegistry {
	return m.packages[pkg]
}

// Entity is a bound entity type.
type Entity struct {
	Name    string
	Package string
	Parent  *Entity
	// Hierarchy is the inheritance hierarchy the entity belongs to.
	Hierarchy *Hierarchy
	Table     binding.Table
	// Annotations are the entity-level annotations.
	Annotations annotation.Set
	// Generators holds the generator definitions declared on the entity.
	Generators *binding.GeneratorRegistry
	Attributes []*binding.AttributeDescriptor
	// Identifier is the first identifier attribute, declared or inherited.
	Identifier *binding.AttributeDescriptor
	// Version is the version attribute, declared or inherited.
	Version *binding.AttributeDescriptor
}

// Attribute returns the declared attribute with the given name.
func (e *Entity) Attribute(name string) (*binding.AttributeDescriptor, bool) {
	for _, a := range e.Attributes {
		if a.Name() == name {
			return a, true
		}
	}

	return nil, false
}

// Ancestors returns the parent chain, nearest first.
func (e *Entity) Ancestors() []*Entity {
	var out []*Entity
	for p := e.Parent; p != nil; p = p.Parent {
		out = append(out, p)
	}

	return out
}

// IsRoot returns true for the root entity of a hierarchy.
func (e *Entity) IsRoot() bool {
	return e.Parent == nil
}

// Hierarchy is an inheritance tree sharing one root table, one row
// identifier and one hierarchy-scoped generator registry.
type Hierarchy struct {
	Root *Entity
	// Entities are the members, parents before children.
	Entities []*Entity
	// Generators holds the generators published by member attributes.
	Generators *binding.GeneratorRegistry
	RowID      *binding.RowIDDescriptor
}

var _ binding.Hierarchy = (*Hierarchy)(nil)

// RootEntityName returns the name of the root entity.
func (h *Hierarchy) RootEntityName() string {
	return h.Root.Name
}

// RootTable returns the table of the root entity.
func (h *Hierarchy) RootTable() binding.Table {
	return h.Root.Table
}

// RowIDExpression returns the root entity's RowId value, or "".
func (h *Hierarchy) RowIDExpression() string {
	if a := h.Root.Annotations.First(annotation.RowID); a != nil {
		return a.StringOr(annotation.ValueKey, "")
	}

	return ""
}

package binding

import (
	"ormbind/internal/diagnostic"
	"ormbind/internal/sqltype"
)

// DefaultRowIDExpression is the native row identifier expression used when
// neither the settings nor the hierarchy root override it.
const DefaultRowIDExpression = "rowid"

// Settings are the binding options shared by a whole binding pass.
type Settings struct {
	// NewGeneratorMappings selects the modern identifier generator naming.
	// When false the legacy strategy names are produced.
	NewGeneratorMappings bool
	// StrictGeneratorNames turns a redefinition of a generator name with a
	// different definition into an ErrGeneratorConflict instead of a warning.
	StrictGeneratorNames bool
	// RowIDExpression is the native row identifier expression.
	RowIDExpression string
}

// DefaultSettings returns the settings used when a document declares none.
func DefaultSettings() Settings {
	return Settings{
		NewGeneratorMappings: true,
		RowIDExpression:      DefaultRowIDExpression,
	}
}

// Context carries what binding an attribute needs from its surroundings.
// Scopes lists the enclosing generator registries, innermost first; the
// attribute's own definitions are searched before them.
type Context struct {
	Entity      string
	Settings    Settings
	Types       *sqltype.Registry
	Scopes      ScopeChain
	Diagnostics *diagnostic.Diagnostics
}

// NewContext creates a context with default settings and a builtin type
// registry.
func NewContext(entity string, scopes ...*GeneratorRegistry) *Context {
	return &Context{
		Entity:   entity,
		Settings: DefaultSettings(),
		Types:    sqltype.NewRegistry(),
		Scopes:   ScopeChain(scopes),
	}
}

// LookupGenerator resolves a named generator through the enclosing scopes.
func (c *Context) LookupGenerator(name string) (*IdGeneratorDefinition, bool) {
	def, _, ok := c.Scopes.Lookup(name)
	return def, ok
}

// UseModernGeneratorNames reports the generator naming feature flag.
func (c *Context) UseModernGeneratorNames() bool {
	return c.Settings.NewGeneratorMappings
}

// TypeRegistry returns the type-descriptor registry, creating the builtin
// one if none was configured.
func (c *Context) TypeRegistry() *sqltype.Registry {
	if c.Types == nil {
		c.Types = sqltype.NewRegistry()
	}

	return c.Types
}

func (c *Context) diagnostics() *diagnostic.Diagnostics {
	if c.Diagnostics == nil {
		c.Diagnostics = &diagnostic.Diagnostics{}
	}

	return c.Diagnostics
}

package binding

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"ormbind/internal/annotation"
	"ormbind/internal/diagnostic"
	"ormbind/internal/match"
)

// Canonical identifier generator strategy names.
const (
	StrategyIdentity         = "identity"
	StrategyUUID             = "uuid2"
	StrategyEnhancedSequence = "enhanced-sequence"
	StrategyEnhancedTable    = "enhanced-table"
	StrategyNative           = "native"
	StrategySeqHiLo          = "seqhilo"
	StrategyMultipleHiLo     = "multiple-hilo"
)

// Defaults applied to named sequence and table generators.
const (
	DefaultAllocationSize   = 50
	DefaultGeneratorTable   = "id_generators"
	DefaultSegmentColumn    = "sequence_name"
	DefaultValueColumn      = "next_val"
	defaultSequenceInitial  = 1
	defaultTableInitial     = 0
	maxGeneratorSuggestions = 3
)

// IdGeneratorDefinition describes how identifier values are produced. An
// empty Name marks an anonymous, strategy-default definition.
type IdGeneratorDefinition struct {
	Name       string
	Strategy   string
	Parameters map[string]string
}

// IsAnonymous returns true for definitions derived from a bare strategy.
func (d *IdGeneratorDefinition) IsAnonymous() bool {
	return d.Name == ""
}

// Equal reports whether two definitions describe the same generator.
func (d *IdGeneratorDefinition) Equal(o *IdGeneratorDefinition) bool {
	if d == nil || o == nil {
		return d == o
	}

	return d.Name == o.Name && d.Strategy == o.Strategy && maps.Equal(d.Parameters, o.Parameters)
}

// Parameter returns a named parameter value.
func (d *IdGeneratorDefinition) Parameter(name string) (string, bool) {
	v, ok := d.Parameters[name]
	return v, ok
}

// GeneratorStrategy translates a generation type into a canonical strategy
// name. modern selects the enhanced generators; legacy naming maps AUTO to
// native and SEQUENCE/TABLE to the hi/lo variants.
func GeneratorStrategy(gt GenerationType, modern bool) string {
	switch gt {
	case GenerationIdentity:
		return StrategyIdentity
	case GenerationUUID:
		return StrategyUUID
	case GenerationSequence:
		if modern {
			return StrategyEnhancedSequence
		}

		return StrategySeqHiLo
	case GenerationTable:
		if modern {
			return StrategyEnhancedTable
		}

		return StrategyMultipleHiLo
	default:
		if modern {
			return StrategyEnhancedSequence
		}

		return StrategyNative
	}
}

// GeneratorRegistry maps generator names to definitions for one scope.
// Entries are only ever added or replaced, never removed.
type GeneratorRegistry struct {
	scope string
	defs  map[string]*IdGeneratorDefinition
	order []string
}

// NewGeneratorRegistry creates an empty registry for the named scope.
func NewGeneratorRegistry(scope string) *GeneratorRegistry {
	return &GeneratorRegistry{
		scope: scope,
		defs:  make(map[string]*IdGeneratorDefinition),
	}
}

// Scope returns the scope label, e.g. "global" or "entity Order".
func (r *GeneratorRegistry) Scope() string {
	return r.scope
}

// Put stores def under its name and returns the definition it replaced.
func (r *GeneratorRegistry) Put(def *IdGeneratorDefinition) *IdGeneratorDefinition {
	prev, ok := r.defs[def.Name]
	if !ok {
		r.order = append(r.order, def.Name)
	}

	r.defs[def.Name] = def

	return prev
}

// Get returns the definition with the given name, or nil.
func (r *GeneratorRegistry) Get(name string) *IdGeneratorDefinition {
	if r == nil {
		return nil
	}

	return r.defs[name]
}

// Has returns true if the name is defined in this scope.
func (r *GeneratorRegistry) Has(name string) bool {
	return r.Get(name) != nil
}

// Names returns the defined names in first-definition order.
func (r *GeneratorRegistry) Names() []string {
	if r == nil {
		return nil
	}

	return slices.Clone(r.order)
}

// Len returns the number of definitions.
func (r *GeneratorRegistry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.defs)
}

// ScopeChain is an ordered list of registries searched innermost first.
type ScopeChain []*GeneratorRegistry

// Lookup returns the first definition named name and the registry holding it.
func (c ScopeChain) Lookup(name string) (*IdGeneratorDefinition, *GeneratorRegistry, bool) {
	for _, r := range c {
		if def := r.Get(name); def != nil {
			return def, r, true
		}
	}

	return nil, nil, false
}

// Names returns every name reachable through the chain.
func (c ScopeChain) Names() []string {
	return lo.Uniq(lo.FlatMap(c, func(r *GeneratorRegistry, _ int) []string { return r.Names() }))
}

// Prepend returns a new chain with r searched first.
func (c ScopeChain) Prepend(r *GeneratorRegistry) ScopeChain {
	return append(ScopeChain{r}, c...)
}

// BuildGeneratorRegistry collects the sequence, table and generic generator
// definitions declared in anns, in that order, into a registry for scope.
// A repeated name replaces the earlier definition and records a warning; in
// strict mode a differing redefinition fails with ErrGeneratorConflict.
func BuildGeneratorRegistry(scope string, anns annotation.Set, ctx *Context) (*GeneratorRegistry, error) {
	return buildGeneratorRegistry(scope, anns, ctx, owner{entity: ctx.Entity})
}

func buildGeneratorRegistry(scope string, anns annotation.Set, ctx *Context, o owner) (*GeneratorRegistry, error) {
	reg := NewGeneratorRegistry(scope)
	modern := ctx.UseModernGeneratorNames()

	sources := []struct {
		single, plural string
		build          func(*annotation.Annotation, bool) (*IdGeneratorDefinition, error)
	}{
		{annotation.SequenceGenerator, annotation.SequenceGenerators, sequenceDefinition},
		{annotation.TableGenerator, annotation.TableGenerators, tableDefinition},
		{annotation.GenericGenerator, annotation.GenericGenerators, genericDefinition},
	}

	for _, src := range sources {
		for _, a := range anns.Repeatable(src.single, src.plural) {
			def, err := src.build(a, modern)
			if err != nil {
				return nil, o.wrap(ErrConfiguration, err, "invalid %s", a.Name)
			}

			if err := registerDefinition(reg, def, ctx, o); err != nil {
				return nil, err
			}
		}
	}

	return reg, nil
}

// Publish copies every definition of src into dst using the same overwrite
// rules as BuildGeneratorRegistry.
func Publish(dst, src *GeneratorRegistry, ctx *Context) error {
	for _, name := range src.Names() {
		def := src.Get(name)
		if cur := dst.Get(name); cur == def {
			continue
		}

		if err := registerDefinition(dst, def, ctx, owner{entity: ctx.Entity}); err != nil {
			return err
		}
	}

	return nil
}

func registerDefinition(reg *GeneratorRegistry, def *IdGeneratorDefinition, ctx *Context, o owner) error {
	prev := reg.Get(def.Name)
	if prev != nil && ctx.Settings.StrictGeneratorNames && !prev.Equal(def) {
		return o.errorf(ErrGeneratorConflict, "generator %q is defined more than once in %s scope", def.Name, reg.Scope())
	}

	reg.Put(def)

	if prev != nil && !prev.Equal(def) {
		ctx.diagnostics().AddWarning(diagnostic.CodeGeneratorOverwrite,
			"generator \""+def.Name+"\" redefined in "+reg.Scope()+" scope; last definition wins",
			o.entity, o.attribute)
	}

	return nil
}

func requireName(a *annotation.Annotation) (string, error) {
	name := strings.TrimSpace(a.StringOr("name", ""))
	if name == "" {
		return "", a.MissingError("name")
	}

	return name, nil
}

func sequenceDefinition(a *annotation.Annotation, modern bool) (*IdGeneratorDefinition, error) {
	name, err := requireName(a)
	if err != nil {
		return nil, err
	}

	initial, err := a.Int("initialValue", defaultSequenceInitial)
	if err != nil {
		return nil, err
	}

	allocation, err := a.Int("allocationSize", DefaultAllocationSize)
	if err != nil {
		return nil, err
	}

	sequence := a.StringOr("sequenceName", name)
	params := map[string]string{}

	if modern {
		params["sequence_name"] = sequence
		params["initial_value"] = strconv.Itoa(initial)
		params["increment_size"] = strconv.Itoa(allocation)
	} else {
		params["sequence"] = sequence
		params["max_lo"] = strconv.Itoa(max(allocation-1, 0))
	}

	copyOptional(params, a, "schema", "catalog")

	strategy := StrategySeqHiLo
	if modern {
		strategy = StrategyEnhancedSequence
	}

	return &IdGeneratorDefinition{Name: name, Strategy: strategy, Parameters: params}, nil
}

func tableDefinition(a *annotation.Annotation, modern bool) (*IdGeneratorDefinition, error) {
	name, err := requireName(a)
	if err != nil {
		return nil, err
	}

	initial, err := a.Int("initialValue", defaultTableInitial)
	if err != nil {
		return nil, err
	}

	allocation, err := a.Int("allocationSize", DefaultAllocationSize)
	if err != nil {
		return nil, err
	}

	table := a.StringOr("table", DefaultGeneratorTable)
	segmentColumn := a.StringOr("pkColumnName", DefaultSegmentColumn)
	valueColumn := a.StringOr("valueColumnName", DefaultValueColumn)
	segmentValue := a.StringOr("pkColumnValue", name)

	params := map[string]string{}

	if modern {
		params["table_name"] = table
		params["segment_column_name"] = segmentColumn
		params["segment_value"] = segmentValue
		params["value_column_name"] = valueColumn
		params["initial_value"] = strconv.Itoa(initial + 1)
		params["increment_size"] = strconv.Itoa(allocation)
	} else {
		params["table"] = table
		params["primary_key_column"] = segmentColumn
		params["primary_key_value"] = segmentValue
		params["value_column"] = valueColumn
		params["max_lo"] = strconv.Itoa(max(allocation-1, 0))
	}

	copyOptional(params, a, "schema", "catalog")

	strategy := StrategyMultipleHiLo
	if modern {
		strategy = StrategyEnhancedTable
	}

	return &IdGeneratorDefinition{Name: name, Strategy: strategy, Parameters: params}, nil
}

func genericDefinition(a *annotation.Annotation, _ bool) (*IdGeneratorDefinition, error) {
	name, err := requireName(a)
	if err != nil {
		return nil, err
	}

	strategy := a.StringOr("strategy", "")
	if strategy == "" {
		return nil, a.MissingError("strategy")
	}

	params := map[string]string{}

	for _, p := range a.Nested("parameters") {
		pname, err := requireName(p)
		if err != nil {
			return nil, err
		}

		params[pname] = p.StringOr("value", "")
	}

	return &IdGeneratorDefinition{Name: name, Strategy: strategy, Parameters: params}, nil
}

func copyOptional(params map[string]string, a *annotation.Annotation, keys ...string) {
	for _, k := range keys {
		if v := a.StringOr(k, ""); v != "" {
			params[k] = v
		}
	}
}

// ResolveIdGenerator returns the generator of an identifier attribute, or
// nil when it carries no GeneratedValue annotation. A named generator is
// looked up in local first, then through ctx.Scopes; an anonymous one is
// derived from the strategy and the naming feature flag.
func ResolveIdGenerator(anns annotation.Set, local *GeneratorRegistry, ctx *Context) (*IdGeneratorDefinition, error) {
	return resolveIdGenerator(anns, local, ctx, owner{entity: ctx.Entity})
}

func resolveIdGenerator(anns annotation.Set, local *GeneratorRegistry, ctx *Context, o owner) (*IdGeneratorDefinition, error) {
	gv := anns.First(annotation.GeneratedValue)
	if gv == nil {
		return nil, nil
	}

	if name := strings.TrimSpace(gv.StringOr("generator", "")); name != "" {
		chain := ctx.Scopes.Prepend(local)
		if def, _, ok := chain.Lookup(name); ok {
			return def, nil
		}

		err := o.errorf(ErrUnresolvedReference, "identifier generator %q not found in any enclosing scope", name)
		err.Suggestions = match.Suggest(name, chain.Names(), maxGeneratorSuggestions)

		return nil, err
	}

	strategy, err := gv.Enum("strategy", string(GenerationAuto), generationTypes...)
	if err != nil {
		return nil, o.wrap(ErrConfiguration, err, "invalid generation strategy")
	}

	return &IdGeneratorDefinition{
		Strategy: GeneratorStrategy(GenerationType(strategy), ctx.UseModernGeneratorNames()),
	}, nil
}

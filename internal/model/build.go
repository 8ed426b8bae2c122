package model

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"ormbind/internal/annotation"
	"ormbind/internal/binding"
	"ormbind/internal/diagnostic"
	"ormbind/internal/mapping"
	"ormbind/internal/sqltype"
)

// ErrInheritanceCycle is returned for entities whose parent chain loops.
var ErrInheritanceCycle = errors.New("inheritance cycle")

// Build binds doc into a Model.
//
// The document is validated first and structural errors fail the whole
// build. Each hierarchy then binds independently: a failing hierarchy is
// left out of the model and its error is joined into the returned error,
// while the model of the remaining hierarchies is still returned.
func Build(doc *mapping.Document, opts ...Option) (*Model, diagnostic.Diagnostics, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	diags := &diagnostic.Diagnostics{}
	if doc == nil {
		return nil, *diags, errors.New("mapping document is nil")
	}

	diags.Merge(*mapping.Validate(doc))
	if diags.HasErrors() {
		return nil, *diags, fmt.Errorf("invalid mapping document: %w", diags.Error())
	}

	b := newBuilder(doc, o, diags)
	m, err := b.build()
	b.logWarnings()

	return m, *diags, err
}

type builder struct {
	doc      *mapping.Document
	opts     options
	log      *slog.Logger
	diags    *diagnostic.Diagnostics
	settings binding.Settings
	types    *sqltype.Registry
	sources  map[string]*mapping.Entity
	model    *Model
}

func newBuilder(doc *mapping.Document, o options, diags *diagnostic.Diagnostics) *builder {
	settings := doc.Settings.Binding()
	for _, override := range o.overrides {
		override(&settings)
	}

	types := sqltype.NewRegistry()
	for _, name := range doc.Enums {
		types.RegisterEnum(name)
	}

	sources := make(map[string]*mapping.Entity, len(doc.Entities))
	for i := range doc.Entities {
		sources[doc.Entities[i].Name] = &doc.Entities[i]
	}

	return &builder{
		doc:      doc,
		opts:     o,
		log:      o.logger,
		diags:    diags,
		settings: settings,
		types:    types,
		sources:  sources,
		model: &Model{
			Settings: settings,
			packages: make(map[string]*binding.GeneratorRegistry),
			entities: make(map[string]*Entity),
		},
	}
}

func (b *builder) context(entity string, scopes binding.ScopeChain) *binding.Context {
	return &binding.Context{
		Entity:      entity,
		Settings:    b.settings,
		Types:       b.types,
		Scopes:      scopes,
		Diagnostics: b.diags,
	}
}

func (b *builder) build() (*Model, error) {
	m := b.model

	global, err := binding.BuildGeneratorRegistry("global", b.doc.Generators.Set(), b.context("", nil))
	if err != nil {
		return nil, fmt.Errorf("global generators: %w", err)
	}

	m.Global = global

	for _, p := range b.doc.Packages {
		ctx := b.context("", nil)

		reg, err := binding.BuildGeneratorRegistry("package "+p.Name, p.Annotations.Set(), ctx)
		if err != nil {
			return nil, fmt.Errorf("package %s generators: %w", p.Name, err)
		}

		if prev, ok := m.packages[p.Name]; ok {
			if err := binding.Publish(prev, reg, ctx); err != nil {
				return nil, fmt.Errorf("package %s generators: %w", p.Name, err)
			}

			continue
		}

		m.packages[p.Name] = reg
	}

	hierarchies, errs := b.hierarchies()

	for _, h := range hierarchies {
		if err := b.bindHierarchy(h); err != nil {
			b.diags.AddError(diagnostic.CodeBindingFailed, err.Error(), h.Root.Name, "")
			b.log.Error("hierarchy binding failed", "root", h.Root.Name, "error", err)
			errs = append(errs, fmt.Errorf("hierarchy %s: %w", h.Root.Name, err))

			continue
		}

		m.hierarchies = append(m.hierarchies, h)
		for _, e := range h.Entities {
			m.entities[e.Name] = e
			m.order = append(m.order, e)
		}

		b.log.Debug("hierarchy bound", "root", h.Root.Name, "entities", len(h.Entities))
	}

	return m, errors.Join(errs...)
}

// hierarchies links entities to their parents and groups them by root,
// parents before children. Entities on or below an inheritance cycle belong
// to no hierarchy.
func (b *builder) hierarchies() ([]*Hierarchy, []error) {
	srcs := b.doc.Entities
	entities := make([]*Entity, len(srcs))
	index := make(map[string]int, len(srcs))

	for i := range srcs {
		anns := srcs[i].Annotations.Set()

		entities[i] = &Entity{
			Name:        srcs[i].Name,
			Package:     srcs[i].Package,
			Annotations: anns,
			Table:       tableOf(srcs[i].Name, anns),
		}
		index[srcs[i].Name] = i
	}

	for i := range srcs {
		if p, ok := index[srcs[i].Parent]; ok && srcs[i].Parent != "" {
			entities[i].Parent = entities[p]
		}
	}

	order, rest := topoSort(len(srcs), func(i int) []int {
		if p, ok := index[srcs[i].Parent]; ok && srcs[i].Parent != "" {
			return []int{p}
		}

		return nil
	})

	var out []*Hierarchy

	for _, i := range order {
		e := entities[i]

		if e.Parent == nil {
			e.Hierarchy = &Hierarchy{Root: e}
			out = append(out, e.Hierarchy)
		} else {
			e.Hierarchy = e.Parent.Hierarchy
		}

		e.Hierarchy.Entities = append(e.Hierarchy.Entities, e)
	}

	var errs []error

	for _, i := range rest {
		e := entities[i]
		cycle := strings.Join(cyclePath(e), " -> ")

		b.diags.AddError(diagnostic.CodeInheritanceCycle, "inheritance cycle "+cycle, e.Name, "")
		errs = append(errs, fmt.Errorf("entity %s: %w: %s", e.Name, ErrInheritanceCycle, cycle))
	}

	return out, errs
}

// cyclePath returns the loop reached by walking e's parent chain as a name
// path, e.g. [A B A].
func cyclePath(e *Entity) []string {
	seen := map[*Entity]int{}
	var path []string

	for cur := e; cur != nil; cur = cur.Parent {
		if i, ok := seen[cur]; ok {
			return append(path[i:], cur.Name)
		}

		seen[cur] = len(path)
		path = append(path, cur.Name)
	}

	return path
}

func tableOf(entity string, anns annotation.Set) binding.Table {
	t := binding.Table{Name: entity}

	if a := anns.First(annotation.Table); a != nil {
		t.Name = a.StringOr("name", entity)
		t.Schema = a.StringOr("schema", "")
		t.Catalog = a.StringOr("catalog", "")
	}

	return t
}

// bindHierarchy binds every member in parents-first order, then the row
// identifier of the root.
func (b *builder) bindHierarchy(h *Hierarchy) error {
	h.Generators = binding.NewGeneratorRegistry("hierarchy " + h.Root.Name)

	for _, e := range h.Entities {
		if err := b.bindEntity(h, e); err != nil {
			return err
		}
	}

	rid, err := binding.NewRowID(h, b.context(h.Root.Name, nil))
	if err != nil {
		return err
	}

	h.RowID = rid

	return nil
}

func (b *builder) bindEntity(h *Hierarchy, e *Entity) error {
	ctx := b.context(e.Name, nil)

	reg, err := binding.BuildGeneratorRegistry("entity "+e.Name, e.Annotations, ctx)
	if err != nil {
		return err
	}

	e.Generators = reg
	ctx.Scopes = b.scopeChain(h, e)

	if e.Parent != nil {
		e.Identifier = e.Parent.Identifier
		e.Version = e.Parent.Version
	}

	var declaredID *binding.AttributeDescriptor

	for _, src := range b.sources[e.Name].Attributes {
		attr, err := b.bindAttribute(h, ctx, &src)
		if err != nil {
			return err
		}

		if attr.IsIdentifier() {
			if declaredID != nil {
				b.diags.AddWarning(diagnostic.CodeMultipleIdentifiers,
					fmt.Sprintf("identifier already declared by %s; using the first", declaredID.Name()), e.Name, attr.Name())
			} else {
				declaredID = attr
				e.Identifier = attr
			}
		}

		if attr.IsVersioned() {
			e.Version = attr
		}

		e.Attributes = append(e.Attributes, attr)
	}

	b.log.Debug("entity bound", "entity", e.Name, "table", e.Table.QualifiedName(), "attributes", len(e.Attributes))

	return nil
}

// scopeChain lists the registries an entity's attributes search after their
// own: the entity, its ancestors nearest first, the hierarchy, the package
// and the global scope.
func (b *builder) scopeChain(h *Hierarchy, e *Entity) binding.ScopeChain {
	chain := binding.ScopeChain{e.Generators}

	for _, a := range e.Ancestors() {
		chain = append(chain, a.Generators)
	}

	chain = append(chain, h.Generators)

	if pkg := b.model.packages[e.Package]; pkg != nil {
		chain = append(chain, pkg)
	}

	return append(chain, b.model.Global)
}

func (b *builder) bindAttribute(h *Hierarchy, ctx *binding.Context, src *mapping.Attribute) (*binding.AttributeDescriptor, error) {
	nature, err := binding.ParseNature(src.Nature)
	if err != nil {
		return nil, err
	}

	access, err := binding.ParseAccessStrategy(src.Access)
	if err != nil {
		return nil, err
	}

	attr, err := binding.NewAttribute(src.Name, src.Type, nature, access, src.Annotations.Set(), ctx)
	if err != nil {
		return nil, err
	}

	if err := binding.Publish(h.Generators, attr.LocalGenerators(), ctx); err != nil {
		return nil, err
	}

	log := b.log.With("entity", ctx.Entity, "attribute", src.Name)

	if b.opts.eager && nature == binding.NatureBasic {
		res, err := attr.ResolvedType()
		if err != nil {
			return nil, err
		}

		log.Debug("attribute bound", "type", src.Type, "sql", res.SQLType.Name, "resolver", res.Resolver.String())
	} else {
		log.Debug("attribute bound", "type", src.Type, "nature", nature.String())
	}

	if gen := attr.IdGenerator(); gen != nil {
		log.Debug("identifier generator resolved", "generator", gen.Name, "strategy", gen.Strategy)
	}

	return attr, nil
}

func (b *builder) logWarnings() {
	for _, w := range b.diags.Warnings {
		b.log.Warn(w.Message, "code", w.Code, "entity", w.Entity, "attribute", w.Attribute)
	}
}

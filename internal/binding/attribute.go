package binding

import (
	"slices"

	"github.com/samber/lo"

	"ormbind/internal/annotation"
	"ormbind/internal/common"
	"ormbind/internal/sqltype"
)

// AttributeDescriptor is the bound metadata of one mapped attribute. It is
// immutable after NewAttribute returns; only the resolved type is computed
// later, once.
type AttributeDescriptor struct {
	entity       string
	name         string
	declaredType string
	nature       Nature
	access       AccessStrategy
	identifier   bool
	columns      []ColumnBinding

	versioned     bool
	versionSource VersionSource
	lazy          bool
	optional      bool
	insertable    bool
	updatable     bool
	generation    GenerationTiming
	lockExcluded  bool

	idGenerator     *IdGeneratorDefinition
	localGenerators *GeneratorRegistry

	annotations annotation.Set
	types       *sqltype.Registry
	chain       *TypeResolverChain
}

var _ Navigable = (*AttributeDescriptor)(nil)

// attributeBuilder applies the derivation rules to a descriptor under
// construction.
type attributeBuilder struct {
	ctx   *Context
	anns  annotation.Set
	owner owner
	attr  *AttributeDescriptor
}

// derivation rules, applied in order.
var attributeRules = []func(*attributeBuilder) error{
	(*attributeBuilder).bindColumns,
	(*attributeBuilder).bindVersion,
	(*attributeBuilder).bindIdentifier,
	(*attributeBuilder).bindBasic,
	(*attributeBuilder).bindGenerated,
	(*attributeBuilder).bindTransformers,
	(*attributeBuilder).bindOptimisticLock,
}

// NewAttribute binds one attribute from its annotations. It fails with an
// ErrUnresolvedReference or ErrGeneratorConflict (both ErrMapping) for
// generator defects and with ErrConfiguration for invalid annotation
// combinations, such as two transformers applying to the same column.
func NewAttribute(
	name, declaredType string,
	nature Nature,
	access AccessStrategy,
	anns annotation.Set,
	ctx *Context,
) (*AttributeDescriptor, error) {
	b := &attributeBuilder{
		ctx:   ctx,
		anns:  anns,
		owner: owner{entity: ctx.Entity, attribute: name},
		attr: &AttributeDescriptor{
			entity:       ctx.Entity,
			name:         name,
			declaredType: declaredType,
			nature:       nature,
			access:       access,
			identifier:   anns.Has(annotation.ID),
			optional:     true,
			insertable:   true,
			updatable:    true,
			annotations:  anns,
			types:        ctx.TypeRegistry(),
		},
	}

	for _, rule := range attributeRules {
		if err := rule(b); err != nil {
			return nil, err
		}
	}

	return b.attr, nil
}

func (b *attributeBuilder) bindColumns() error {
	var decls []*annotation.Annotation

	for _, container := range b.anns.Get(annotation.Columns) {
		decls = append(decls, container.Nested(annotation.ValueKey)...)
	}

	decls = append(decls, b.anns.Get(annotation.Column)...)

	if len(decls) == 0 {
		if b.attr.nature != NatureBasic {
			return nil
		}

		b.attr.columns = []ColumnBinding{{Name: b.attr.name, Nullable: true}}

		return nil
	}

	for _, decl := range decls {
		unique, err := decl.Bool("unique", false)
		if err != nil {
			return b.owner.wrap(ErrConfiguration, err, "invalid column")
		}

		nullable, err := decl.Bool("nullable", true)
		if err != nil {
			return b.owner.wrap(ErrConfiguration, err, "invalid column")
		}

		column := ColumnBinding{
			Name:     decl.StringOr("name", b.attr.name),
			Unique:   unique,
			Nullable: nullable,
		}

		if lo.ContainsBy(b.attr.columns, func(c ColumnBinding) bool { return common.EqualFoldTrim(c.Name, column.Name) }) {
			return b.owner.errorf(ErrConfiguration, "column %q is bound twice", column.Name)
		}

		b.attr.columns = append(b.attr.columns, column)
	}

	return nil
}

var versionSources = map[string]VersionSource{
	"VM": VersionSourceVM,
	"DB": VersionSourceDB,
}

func (b *attributeBuilder) bindVersion() error {
	if !b.anns.Has(annotation.Version) {
		return nil
	}

	b.attr.versioned = true

	src := b.anns.First(annotation.Source)
	if src == nil {
		return nil
	}

	v, err := src.Enum(annotation.ValueKey, "", "VM", "DB")
	if err != nil {
		return b.owner.wrap(ErrConfiguration, err, "invalid version source")
	}

	b.attr.versionSource = versionSources[v]

	return nil
}

func (b *attributeBuilder) bindIdentifier() error {
	if !b.attr.identifier {
		return nil
	}

	for i := range b.attr.columns {
		b.attr.columns[i].Unique = true
		b.attr.columns[i].Nullable = false
	}

	local, err := buildGeneratorRegistry("attribute "+b.attr.name, b.anns, b.ctx, b.owner)
	if err != nil {
		return err
	}

	b.attr.localGenerators = local

	def, err := resolveIdGenerator(b.anns, local, b.ctx, b.owner)
	if err != nil {
		return err
	}

	b.attr.idGenerator = def

	return nil
}

func (b *attributeBuilder) bindBasic() error {
	basic := b.anns.First(annotation.Basic)
	if basic == nil {
		return nil
	}

	fetch, err := basic.Enum("fetch", "LAZY", "LAZY", "EAGER")
	if err != nil {
		return b.owner.wrap(ErrConfiguration, err, "invalid fetch type")
	}

	optional, err := basic.Bool("optional", true)
	if err != nil {
		return b.owner.wrap(ErrConfiguration, err, "invalid basic mapping")
	}

	b.attr.lazy = fetch == "LAZY"
	b.attr.optional = optional

	return nil
}

func (b *attributeBuilder) bindGenerated() error {
	gen := b.anns.First(annotation.Generated)
	if gen == nil {
		if b.attr.identifier {
			b.attr.insertable = true
			b.attr.updatable = false
			b.attr.generation = GenerationInsert
		}

		return nil
	}

	timing, err := gen.Enum(annotation.ValueKey, "INSERT", generationTimingNames...)
	if err != nil {
		return b.owner.wrap(ErrConfiguration, err, "invalid generation timing")
	}

	b.attr.insertable = false

	switch timing {
	case "ALWAYS":
		b.attr.updatable = false
		b.attr.generation = GenerationAlways
	case "INSERT":
		b.attr.generation = GenerationInsert
	default:
		b.attr.generation = GenerationNever
	}

	return nil
}

func (b *attributeBuilder) bindTransformers() error {
	names := lo.Map(b.attr.columns, func(c ColumnBinding, _ int) string { return c.Name })

	transforms, err := resolveColumnTransformers(b.anns, names, b.ctx, b.owner)
	if err != nil {
		return err
	}

	for i := range b.attr.columns {
		if t, ok := transforms[b.attr.columns[i].Name]; ok {
			b.attr.columns[i].CustomRead = t.Read
			b.attr.columns[i].CustomWrite = t.Write
		}
	}

	return nil
}

func (b *attributeBuilder) bindOptimisticLock() error {
	lock := b.anns.First(annotation.OptimisticLock)
	if lock == nil {
		return nil
	}

	excluded, err := lock.Bool("excluded", false)
	if err != nil {
		return b.owner.wrap(ErrConfiguration, err, "invalid optimistic lock")
	}

	b.attr.lockExcluded = excluded

	return nil
}

// Name returns the attribute name.
func (a *AttributeDescriptor) Name() string { return a.name }

// OwningType returns the owning entity name.
func (a *AttributeDescriptor) OwningType() string { return a.entity }

// DeclaredType returns the declared type name as written in the mapping.
func (a *AttributeDescriptor) DeclaredType() string { return a.declaredType }

// Nature returns the attribute nature.
func (a *AttributeDescriptor) Nature() Nature { return a.nature }

// Access returns the access strategy.
func (a *AttributeDescriptor) Access() AccessStrategy { return a.access }

// IsIdentifier returns true for the identifier attribute.
func (a *AttributeDescriptor) IsIdentifier() bool { return a.identifier }

// Columns returns a copy of the column bindings in declaration order.
func (a *AttributeDescriptor) Columns() []ColumnBinding { return slices.Clone(a.columns) }

// IsVersioned returns true for the version attribute.
func (a *AttributeDescriptor) IsVersioned() bool { return a.versioned }

// VersionSource returns the version source, VersionSourceUnset by default.
func (a *AttributeDescriptor) VersionSource() VersionSource { return a.versionSource }

// IsLazy returns true when the attribute is fetched lazily.
func (a *AttributeDescriptor) IsLazy() bool { return a.lazy }

// IsOptional returns true when the attribute may be null.
func (a *AttributeDescriptor) IsOptional() bool { return a.optional }

// IsInsertable returns true when the attribute is written on insert.
func (a *AttributeDescriptor) IsInsertable() bool { return a.insertable }

// IsUpdatable returns true when the attribute is written on update.
func (a *AttributeDescriptor) IsUpdatable() bool { return a.updatable }

// Generation returns when the database generates the value.
func (a *AttributeDescriptor) Generation() GenerationTiming { return a.generation }

// IdGenerator returns the identifier generator, or nil when the attribute
// is not a generated identifier. The definition is shared, not copied.
func (a *AttributeDescriptor) IdGenerator() *IdGeneratorDefinition { return a.idGenerator }

// LocalGenerators returns the generators declared on the identifier itself.
func (a *AttributeDescriptor) LocalGenerators() *GeneratorRegistry { return a.localGenerators }

// Annotations returns the annotation set the attribute was bound from.
func (a *AttributeDescriptor) Annotations() annotation.Set { return a.annotations }

// IsOptimisticLockable reports whether changes to the attribute take part
// in optimistic lock checks. Excluding the identifier or the version
// attribute is an ErrConfiguration.
func (a *AttributeDescriptor) IsOptimisticLockable() (bool, error) {
	if a.lockExcluded && (a.identifier || a.versioned) {
		return false, owner{entity: a.entity, attribute: a.name}.errorf(ErrConfiguration,
			"identifier and version attributes cannot be excluded from optimistic locking")
	}

	return !a.lockExcluded, nil
}

// TypeChain returns the attribute's resolver chain, creating it on first
// use.
func (a *AttributeDescriptor) TypeChain() *TypeResolverChain {
	if a.chain == nil {
		a.chain = newTypeResolverChain(a.declaredType, a.annotations, a.types, owner{entity: a.entity, attribute: a.name})
	}

	return a.chain
}

// ResolvedType returns the storage type of a basic attribute. The chain is
// evaluated on the first call only.
func (a *AttributeDescriptor) ResolvedType() (*TypeResolution, error) {
	if a.nature != NatureBasic {
		return nil, owner{entity: a.entity, attribute: a.name}.errorf(ErrConfiguration,
			"%s attribute has no basic storage type", a.nature)
	}

	return a.TypeChain().Resolve()
}

// SQLType returns the resolved SQL type.
func (a *AttributeDescriptor) SQLType() (sqltype.Descriptor, error) {
	res, err := a.ResolvedType()
	if err != nil {
		return sqltype.Descriptor{}, err
	}

	return res.SQLType, nil
}

// JavaType returns the resolved declared type descriptor.
func (a *AttributeDescriptor) JavaType() (sqltype.JavaType, error) {
	res, err := a.ResolvedType()
	if err != nil {
		return sqltype.JavaType{}, err
	}

	return res.JavaType, nil
}

// ValueMapper returns the attribute's value mapper.
func (a *AttributeDescriptor) ValueMapper() (ValueMapper, error) {
	res, err := a.ResolvedType()
	if err != nil {
		return ValueMapper{}, err
	}

	return ValueMapper{
		JavaTypeName: res.JavaType.Name,
		SQLType:      res.SQLType,
		Insertable:   a.insertable,
		Updatable:    a.updatable,
	}, nil
}

// Role returns the navigable role, "Entity.attribute".
func (a *AttributeDescriptor) Role() (string, error) {
	return a.entity + "." + a.name, nil
}

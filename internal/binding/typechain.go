package binding

import (
	"ormbind/internal/annotation"
	"ormbind/internal/sqltype"
)

//go:generate go tool stringer -type=ResolverKind -linecomment -output=resolverkind_string.go

// ResolverKind identifies a member of the type resolver chain. The declared
// order is the priority order.
type ResolverKind int

const (
	ResolverTemporal   ResolverKind = iota // temporal
	ResolverLob                            // lob
	ResolverEnumerated                     // enumerated
	ResolverDefault                        // default
)

// TypeResolution is the storage type chosen for a basic attribute.
type TypeResolution struct {
	JavaType sqltype.JavaType
	SQLType  sqltype.Descriptor
	// Resolver is the chain member that supplied SQLType.
	Resolver ResolverKind
	// Applicable lists every chain member whose predicate matched, in
	// priority order. Default is always last.
	Applicable []ResolverKind

	Temporal     TemporalPrecision
	EnumMode     EnumMode
	Nationalized bool
}

// typeInput is what each resolver sees.
type typeInput struct {
	declaredType string
	javaType     sqltype.JavaType
	known        bool
	anns         annotation.Set
	nationalized bool
	types        *sqltype.Registry
	owner        owner
}

// typeResolver is one fixed member of the chain. resolve returns
// (nil, nil) when the member does not apply.
type typeResolver struct {
	kind    ResolverKind
	resolve func(in *typeInput) (*TypeResolution, error)
}

var typeResolvers = []typeResolver{
	{ResolverTemporal, resolveTemporal},
	{ResolverLob, resolveLob},
	{ResolverEnumerated, resolveEnumerated},
	{ResolverDefault, resolveDefault},
}

// TypeResolverChain evaluates every resolver in priority order and keeps the
// first applicable one's result. The outcome, including an error, is
// computed once and memoized.
type TypeResolverChain struct {
	resolvers   []typeResolver
	input       typeInput
	evaluations int
	done        bool
	result      *TypeResolution
	err         error
}

func newTypeResolverChain(declaredType string, anns annotation.Set, types *sqltype.Registry, o owner) *TypeResolverChain {
	jt, known := types.Lookup(declaredType)

	c := &TypeResolverChain{resolvers: typeResolvers}
	c.input = typeInput{
		declaredType: sqltype.Canonical(declaredType),
		javaType:     jt,
		known:        known,
		anns:         anns,
		nationalized: anns.Has(annotation.Nationalized),
		types:        types,
		owner:        o,
	}

	return c
}

// Resolve returns the memoized resolution, evaluating the chain on first use.
func (c *TypeResolverChain) Resolve() (*TypeResolution, error) {
	if c.done {
		return c.result, c.err
	}

	c.done = true
	c.evaluations++
	c.result, c.err = c.evaluate()

	return c.result, c.err
}

// Evaluations returns how many times the chain was actually evaluated.
func (c *TypeResolverChain) Evaluations() int {
	return c.evaluations
}

// Kinds returns the chain members in priority order.
func (c *TypeResolverChain) Kinds() []ResolverKind {
	kinds := make([]ResolverKind, len(c.resolvers))
	for i, r := range c.resolvers {
		kinds[i] = r.kind
	}

	return kinds
}

func (c *TypeResolverChain) evaluate() (*TypeResolution, error) {
	var (
		winner     *TypeResolution
		applicable []ResolverKind
	)

	// All members run, even after a match; any member's error aborts.
	for _, r := range c.resolvers {
		res, err := r.resolve(&c.input)
		if err != nil {
			return nil, err
		}

		if res == nil {
			continue
		}

		applicable = append(applicable, r.kind)

		if winner == nil {
			res.Resolver = r.kind
			winner = res
		}
	}

	winner.Applicable = applicable
	winner.Nationalized = c.input.nationalized

	return winner, nil
}

func (in *typeInput) storage(code sqltype.Code) sqltype.Descriptor {
	if in.nationalized {
		code = code.Nationalized()
	}

	return sqltype.DescriptorFor(code)
}

func (in *typeInput) effectiveJavaType() sqltype.JavaType {
	if in.known {
		return in.javaType
	}

	return sqltype.JavaType{Name: in.declaredType, Category: sqltype.CategoryOther, DefaultSQL: sqltype.VarBinary}
}

var temporalPrecisions = map[string]TemporalPrecision{
	"DATE":      TemporalDate,
	"TIME":      TemporalTime,
	"TIMESTAMP": TemporalTimestamp,
}

func resolveTemporal(in *typeInput) (*TypeResolution, error) {
	a := in.anns.First(annotation.Temporal)
	if a == nil {
		return nil, nil
	}

	if in.javaType.Category != sqltype.CategoryTemporal {
		return nil, in.owner.errorf(ErrConfiguration,
			"Temporal applies to temporal types only, not %s", in.declaredType)
	}

	v, err := a.Enum(annotation.ValueKey, "TIMESTAMP", "DATE", "TIME", "TIMESTAMP")
	if err != nil {
		return nil, in.owner.wrap(ErrConfiguration, err, "invalid temporal precision")
	}

	precision := temporalPrecisions[v]

	code := sqltype.Timestamp

	switch precision {
	case TemporalDate:
		code = sqltype.Date
	case TemporalTime:
		code = sqltype.Time
	}

	return &TypeResolution{
		JavaType: in.javaType,
		SQLType:  sqltype.DescriptorFor(code),
		Temporal: precision,
	}, nil
}

func resolveLob(in *typeInput) (*TypeResolution, error) {
	if !in.anns.Has(annotation.Lob) {
		return nil, nil
	}

	jt := in.effectiveJavaType()

	code := sqltype.Blob
	if jt.Category == sqltype.CategoryCharacter {
		code = sqltype.Clob
	}

	return &TypeResolution{JavaType: jt, SQLType: in.storage(code)}, nil
}

func resolveEnumerated(in *typeInput) (*TypeResolution, error) {
	a := in.anns.First(annotation.Enumerated)
	isEnum := in.types.IsEnum(in.declaredType)

	if a == nil && !isEnum {
		return nil, nil
	}

	if !isEnum {
		return nil, in.owner.errorf(ErrConfiguration,
			"Enumerated applies to enum types only, not %s", in.declaredType)
	}

	mode := EnumOrdinal

	if a != nil {
		v, err := a.Enum(annotation.ValueKey, "ORDINAL", "ORDINAL", "STRING")
		if err != nil {
			return nil, in.owner.wrap(ErrConfiguration, err, "invalid enum mode")
		}

		if v == "STRING" {
			mode = EnumString
		}
	}

	code := in.javaType.DefaultSQL
	if mode == EnumString {
		code = in.storage(sqltype.VarChar).Code
	}

	return &TypeResolution{
		JavaType: in.javaType,
		SQLType:  sqltype.DescriptorFor(code),
		EnumMode: mode,
	}, nil
}

func resolveDefault(in *typeInput) (*TypeResolution, error) {
	jt := in.effectiveJavaType()

	res := &TypeResolution{JavaType: jt, SQLType: in.storage(jt.DefaultSQL)}
	if jt.Category == sqltype.CategoryTemporal {
		res.Temporal = TemporalTimestamp
	}

	return res, nil
}

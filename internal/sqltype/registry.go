package sqltype

import (
	"sort"
	"strings"
)

// Category groups declared types by the storage axis they participate in.
type Category int

const (
	CategoryOther Category = iota
	CategoryCharacter
	CategoryBinary
	CategoryNumeric
	CategoryBoolean
	CategoryTemporal
	CategoryEnum
	CategoryUUID
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryCharacter:
		return "character"
	case CategoryBinary:
		return "binary"
	case CategoryNumeric:
		return "numeric"
	case CategoryBoolean:
		return "boolean"
	case CategoryTemporal:
		return "temporal"
	case CategoryEnum:
		return "enum"
	case CategoryUUID:
		return "uuid"
	default:
		return "other"
	}
}

// JavaType describes a declared attribute type: its canonical name, its
// category and the SQL type it maps to when nothing overrides it.
type JavaType struct {
	Name       string
	Category   Category
	DefaultSQL Code
}

// Registry maps canonical declared type names to descriptors. It is filled
// during setup and read-only afterwards.
type Registry struct {
	types map[string]JavaType
}

// NewRegistry creates a registry pre-populated with the Go builtin and
// standard library types.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]JavaType)}

	for _, jt := range builtinTypes {
		r.Register(jt)
	}

	return r
}

var builtinTypes = []JavaType{
	{Name: "string", Category: CategoryCharacter, DefaultSQL: VarChar},
	{Name: "rune", Category: CategoryCharacter, DefaultSQL: Char},
	{Name: "[]byte", Category: CategoryBinary, DefaultSQL: VarBinary},
	{Name: "[]uint8", Category: CategoryBinary, DefaultSQL: VarBinary},
	{Name: "bool", Category: CategoryBoolean, DefaultSQL: Boolean},
	{Name: "int", Category: CategoryNumeric, DefaultSQL: BigInt},
	{Name: "int8", Category: CategoryNumeric, DefaultSQL: TinyInt},
	{Name: "int16", Category: CategoryNumeric, DefaultSQL: SmallInt},
	{Name: "int32", Category: CategoryNumeric, DefaultSQL: Integer},
	{Name: "int64", Category: CategoryNumeric, DefaultSQL: BigInt},
	{Name: "uint", Category: CategoryNumeric, DefaultSQL: BigInt},
	{Name: "uint8", Category: CategoryNumeric, DefaultSQL: SmallInt},
	{Name: "byte", Category: CategoryNumeric, DefaultSQL: SmallInt},
	{Name: "uint16", Category: CategoryNumeric, DefaultSQL: Integer},
	{Name: "uint32", Category: CategoryNumeric, DefaultSQL: BigInt},
	{Name: "uint64", Category: CategoryNumeric, DefaultSQL: Numeric},
	{Name: "float32", Category: CategoryNumeric, DefaultSQL: Real},
	{Name: "float64", Category: CategoryNumeric, DefaultSQL: Double},
	{Name: "big.Int", Category: CategoryNumeric, DefaultSQL: Numeric},
	{Name: "big.Float", Category: CategoryNumeric, DefaultSQL: Decimal},
	{Name: "time.Time", Category: CategoryTemporal, DefaultSQL: Timestamp},
	{Name: "time.Duration", Category: CategoryNumeric, DefaultSQL: BigInt},
	{Name: "uuid.UUID", Category: CategoryUUID, DefaultSQL: UUID},
	{Name: "sql.NullString", Category: CategoryCharacter, DefaultSQL: VarChar},
	{Name: "sql.NullInt64", Category: CategoryNumeric, DefaultSQL: BigInt},
	{Name: "sql.NullInt32", Category: CategoryNumeric, DefaultSQL: Integer},
	{Name: "sql.NullBool", Category: CategoryBoolean, DefaultSQL: Boolean},
	{Name: "sql.NullFloat64", Category: CategoryNumeric, DefaultSQL: Double},
	{Name: "sql.NullTime", Category: CategoryTemporal, DefaultSQL: Timestamp},
}

// Register adds or replaces a descriptor.
func (r *Registry) Register(jt JavaType) {
	r.types[jt.Name] = jt
}

// RegisterEnum registers a named enumeration type. Enums map to INTEGER
// (ordinal) unless overridden.
func (r *Registry) RegisterEnum(name string) {
	r.Register(JavaType{Name: name, Category: CategoryEnum, DefaultSQL: Integer})
}

// Lookup resolves a declared type name. Pointer prefixes are stripped, so
// "*time.Time" resolves like "time.Time".
func (r *Registry) Lookup(name string) (JavaType, bool) {
	jt, ok := r.types[Canonical(name)]
	return jt, ok
}

// IsEnum returns true if the declared type is a registered enumeration.
func (r *Registry) IsEnum(name string) bool {
	jt, ok := r.Lookup(name)
	return ok && jt.Category == CategoryEnum
}

// Names returns all registered type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Canonical strips pointer prefixes and surrounding whitespace from a
// declared type name.
func Canonical(name string) string {
	return strings.TrimLeft(strings.TrimSpace(name), "*")
}

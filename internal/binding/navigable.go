package binding

import "ormbind/internal/sqltype"

// Navigable is the read-only contract downstream consumers use for both
// mapped attributes and the synthetic row identifier.
type Navigable interface {
	Name() string
	OwningType() string
	Columns() []ColumnBinding
	ValueMapper() (ValueMapper, error)
	SQLType() (sqltype.Descriptor, error)
	Role() (string, error)
	JavaType() (sqltype.JavaType, error)
}

// ValueMapper describes how a navigable's value moves between the
// application and its columns.
type ValueMapper struct {
	JavaTypeName string
	SQLType      sqltype.Descriptor
	Insertable   bool
	Updatable    bool
}

// ColumnBinding binds an attribute to one column. A non-empty Expression
// marks a derived, non-physical column.
type ColumnBinding struct {
	Name        string
	Unique      bool
	Nullable    bool
	CustomRead  string
	CustomWrite string
	Expression  string
}

// IsDerived returns true for expression-backed columns.
func (c ColumnBinding) IsDerived() bool {
	return c.Expression != ""
}

// Table names a physical table.
type Table struct {
	Catalog string
	Schema  string
	Name    string
}

// QualifiedName returns catalog.schema.name, omitting empty parts.
func (t Table) QualifiedName() string {
	name := t.Name
	if t.Schema != "" {
		name = t.Schema + "." + name
	}

	if t.Catalog != "" {
		name = t.Catalog + "." + name
	}

	return name
}

package binding

import (
	"ormbind/internal/common"
	"ormbind/internal/sqltype"
)

// RowIDName is the reserved name of the synthetic row identifier column.
const RowIDName = "ROW_ID"

// Hierarchy is what the row identifier needs from an entity hierarchy.
// RowIDExpression may return "" to use the settings default.
type Hierarchy interface {
	RootEntityName() string
	RootTable() Table
	RowIDExpression() string
}

// RowIDDescriptor is the synthetic, read-only row identifier of an entity
// hierarchy, bound to the root table as a derived column.
type RowIDDescriptor struct {
	owningType string
	table      Table
	column     ColumnBinding
}

var _ Navigable = (*RowIDDescriptor)(nil)

// NewRowID creates the row identifier of a hierarchy.
func NewRowID(h Hierarchy, ctx *Context) (*RowIDDescriptor, error) {
	table := h.RootTable()
	if table.Name == "" {
		return nil, owner{entity: h.RootEntityName()}.errorf(ErrConfiguration,
			"row identifier requires a root table")
	}

	expr := common.FirstNonEmpty(h.RowIDExpression(), ctx.Settings.RowIDExpression, DefaultRowIDExpression)

	return &RowIDDescriptor{
		owningType: h.RootEntityName(),
		table:      table,
		column: ColumnBinding{
			Name:       RowIDName,
			Unique:     true,
			Nullable:   false,
			Expression: expr,
		},
	}, nil
}

// Name returns the reserved row identifier name.
func (r *RowIDDescriptor) Name() string { return RowIDName }

// OwningType returns the hierarchy root entity name.
func (r *RowIDDescriptor) OwningType() string { return r.owningType }

// Table returns the root table the row identifier is bound to.
func (r *RowIDDescriptor) Table() Table { return r.table }

// Column returns the derived column binding.
func (r *RowIDDescriptor) Column() ColumnBinding { return r.column }

// Columns returns the single derived column binding.
func (r *RowIDDescriptor) Columns() []ColumnBinding { return []ColumnBinding{r.column} }

// SQLType returns the fixed integer SQL type.
func (r *RowIDDescriptor) SQLType() (sqltype.Descriptor, error) {
	return sqltype.DescriptorFor(sqltype.Integer), nil
}

// ValueMapper returns a read-only mapper of the integer SQL type.
func (r *RowIDDescriptor) ValueMapper() (ValueMapper, error) {
	return ValueMapper{SQLType: sqltype.DescriptorFor(sqltype.Integer)}, nil
}

// Role is not yet implemented: synthetic columns have no role naming scheme.
func (r *RowIDDescriptor) Role() (string, error) {
	return "", r.unsupported("Role")
}

// JavaType is not yet implemented for the row identifier.
func (r *RowIDDescriptor) JavaType() (sqltype.JavaType, error) {
	return sqltype.JavaType{}, r.unsupported("JavaType")
}

func (r *RowIDDescriptor) unsupported(op string) error {
	return owner{entity: r.owningType, attribute: RowIDName}.wrap(ErrUnsupportedOperation, ErrNotYetImplemented,
		"%s is not available on the row identifier", op)
}

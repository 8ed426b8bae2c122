package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ormbind/internal/sqltype"
)

type fakeHierarchy struct {
	root  string
	table Table
	expr  string
}

func (h fakeHierarchy) RootEntityName() string  { return h.root }
func (h fakeHierarchy) RootTable() Table        { return h.table }
func (h fakeHierarchy) RowIDExpression() string { return h.expr }

func TestNewRowID(t *testing.T) {
	h := fakeHierarchy{root: "Order", table: Table{Schema: "sales", Name: "orders"}}

	rid, err := NewRowID(h, testContext())
	require.NoError(t, err)

	assert.Equal(t, RowIDName, rid.Name())
	assert.Equal(t, "Order", rid.OwningType())
	assert.Equal(t, "sales.orders", rid.Table().QualifiedName())

	col := rid.Column()
	assert.Equal(t, RowIDName, col.Name)
	assert.True(t, col.Unique)
	assert.False(t, col.Nullable)
	assert.True(t, col.IsDerived())
	assert.Equal(t, DefaultRowIDExpression, col.Expression)
	assert.Equal(t, []ColumnBinding{col}, rid.Columns())

	sqlType, err := rid.SQLType()
	require.NoError(t, err)
	assert.Equal(t, sqltype.Integer, sqlType.Code)

	vm, err := rid.ValueMapper()
	require.NoError(t, err)
	assert.Equal(t, sqltype.Integer, vm.SQLType.Code)
	assert.False(t, vm.Insertable)
	assert.False(t, vm.Updatable)
}

func TestNewRowID_Expression(t *testing.T) {
	ctx := testContext()
	ctx.Settings.RowIDExpression = "ctid"

	rid, err := NewRowID(fakeHierarchy{root: "Order", table: Table{Name: "orders"}}, ctx)
	require.NoError(t, err)
	assert.Equal(t, "ctid", rid.Column().Expression)

	rid, err = NewRowID(fakeHierarchy{root: "Order", table: Table{Name: "orders"}, expr: "oid"}, ctx)
	require.NoError(t, err)
	assert.Equal(t, "oid", rid.Column().Expression)

	ctx.Settings.RowIDExpression = ""
	rid, err = NewRowID(fakeHierarchy{root: "Order", table: Table{Name: "orders"}}, ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultRowIDExpression, rid.Column().Expression)
}

func TestNewRowID_RequiresTable(t *testing.T) {
	_, err := NewRowID(fakeHierarchy{root: "Order"}, testContext())
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestRowID_UnsupportedOperations(t *testing.T) {
	rid, err := NewRowID(fakeHierarchy{root: "Order", table: Table{Name: "orders"}}, testContext())
	require.NoError(t, err)

	var nav Navigable = rid

	_, err = nav.Role()
	require.ErrorIs(t, err, ErrUnsupportedOperation)
	require.ErrorIs(t, err, ErrNotYetImplemented)
	assert.NotErrorIs(t, err, ErrMapping)

	_, err = nav.JavaType()
	require.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.Contains(t, err.Error(), "Order.ROW_ID: unsupported operation")
}

func TestTable_QualifiedName(t *testing.T) {
	assert.Equal(t, "orders", Table{Name: "orders"}.QualifiedName())
	assert.Equal(t, "erp.sales.orders", Table{Catalog: "erp", Schema: "sales", Name: "orders"}.QualifiedName())
	assert.Equal(t, "erp.orders", Table{Catalog: "erp", Name: "orders"}.QualifiedName())
}

package model

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ormbind/internal/binding"
	"ormbind/internal/diagnostic"
	"ormbind/internal/mapping"
	"ormbind/internal/sqltype"
)

const shopDocument = `
settings:
  rowid_expression: ctid
generators:
  - SequenceGenerator: {name: global_seq, sequenceName: global_sequence}
  - SequenceGenerator: {name: shared, sequenceName: from_global}
packages:
  - name: shop
    annotations:
      - SequenceGenerator: {name: shared, sequenceName: from_package}
enums: [shop.Status]
entities:
  - name: RushOrder
    package: shop
    parent: Order
    attributes:
      - name: trackingId
        type: int64
        annotations:
          - Id
          - GeneratedValue: {generator: order_local}
  - name: Order
    package: shop
    annotations:
      - Entity
      - Table: {name: orders, schema: sales}
      - RowId: oid
    attributes:
      - name: id
        type: int64
        annotations:
          - Id
          - GeneratedValue: {generator: order_local}
          - SequenceGenerator: {name: order_local, sequenceName: order_local_seq}
      - name: status
        type: shop.Status
        annotations:
          - Enumerated: STRING
      - name: version
        type: int
        annotations: [Version]
      - name: customer
        type: shop.Customer
        nature: association
        annotations: [ManyToOne]
  - name: Customer
    package: shop
    attributes:
      - name: id
        type: int64
        annotations:
          - Id
          - GeneratedValue: {generator: shared}
      - name: ref
        type: string
        annotations: [Id]
  - name: Audit
    attributes:
      - name: id
        type: int64
        annotations:
          - Id
          - GeneratedValue: {generator: shared}
`

func build(t *testing.T, yaml string, opts ...Option) (*Model, diagnostic.Diagnostics, error) {
	t.Helper()

	doc, err := mapping.Parse([]byte(yaml))
	require.NoError(t, err)

	return Build(doc, opts...)
}

func entityNames(es []*Entity) []string {
	names := make([]string, len(es))
	for i, e := range es {
		names[i] = e.Name
	}

	return names
}

func TestBuild(t *testing.T) {
	m, diags, err := build(t, shopDocument)
	require.NoError(t, err, spew.Sdump(diags))
	require.NotNil(t, m)

	assert.Equal(t, []string{"Order", "RushOrder", "Customer", "Audit"}, entityNames(m.Entities()))
	require.Len(t, m.Hierarchies(), 3)

	assert.Equal(t, []string{"global_seq", "shared"}, m.Global.Names())
	assert.Equal(t, []string{"shared"}, m.PackageGenerators("shop").Names())

	assert.Equal(t, []string{diagnostic.CodeMultipleIdentifiers}, warningCodes(diags))
	assert.Equal(t, "Customer", diags.Warnings[0].Entity)
	assert.Equal(t, "ref", diags.Warnings[0].Attribute)
}

func TestBuild_Hierarchy(t *testing.T) {
	m, _, err := build(t, shopDocument)
	require.NoError(t, err)

	order, ok := m.Entity("Order")
	require.True(t, ok)
	rush, ok := m.Entity("RushOrder")
	require.True(t, ok)

	h := order.Hierarchy
	require.NotNil(t, h)
	assert.Same(t, h, rush.Hierarchy)
	assert.Same(t, order, h.Root)
	assert.Same(t, order, rush.Parent)
	assert.True(t, order.IsRoot())
	assert.False(t, rush.IsRoot())
	assert.Equal(t, []*Entity{order}, rush.Ancestors())
	assert.Equal(t, []string{"Order", "RushOrder"}, entityNames(h.Entities))

	assert.Equal(t, "sales.orders", order.Table.QualifiedName())
	assert.Equal(t, "RushOrder", rush.Table.Name)

	require.NotNil(t, h.RowID)
	assert.Equal(t, "oid", h.RowID.Column().Expression)
	assert.Equal(t, "sales.orders", h.RowID.Table().QualifiedName())
	assert.Equal(t, "Order", h.RowID.OwningType())

	assert.Equal(t, "id", order.Identifier.Name())
	assert.Equal(t, "trackingId", rush.Identifier.Name())
	require.NotNil(t, rush.Version)
	assert.Same(t, order.Version, rush.Version)

	_, ok = rush.Attribute("status")
	assert.False(t, ok, "inherited attributes stay on the declaring entity")
	assert.Equal(t, []string{"order_local"}, h.Generators.Names())
}

func TestBuild_GeneratorScopes(t *testing.T) {
	m, _, err := build(t, shopDocument)
	require.NoError(t, err)

	tests := []struct {
		entity   string
		name     string
		sequence string
	}{
		// Attribute-local definition.
		{"Order", "order_local", "order_local_seq"},
		// Published to the hierarchy by Order.id.
		{"RushOrder", "order_local", "order_local_seq"},
		// Package scope shadows global.
		{"Customer", "shared", "from_package"},
		// No package: global.
		{"Audit", "shared", "from_global"},
	}

	for _, tt := range tests {
		t.Run(tt.entity, func(t *testing.T) {
			e, ok := m.Entity(tt.entity)
			require.True(t, ok)

			gen := e.Identifier.IdGenerator()
			require.NotNil(t, gen)
			assert.Equal(t, tt.name, gen.Name)
			assert.Equal(t, binding.StrategyEnhancedSequence, gen.Strategy)

			seq, _ := gen.Parameter("sequence_name")
			assert.Equal(t, tt.sequence, seq)
		})
	}
}

func TestBuild_RowIDDefaultsToSettings(t *testing.T) {
	m, _, err := build(t, shopDocument)
	require.NoError(t, err)

	customer, _ := m.Entity("Customer")
	assert.Equal(t, "ctid", customer.Hierarchy.RowID.Column().Expression)
	assert.Equal(t, "Customer", customer.Hierarchy.RowID.Table().Name)
}

func TestBuild_ResolvesTypes(t *testing.T) {
	lazy, _, err := build(t, shopDocument)
	require.NoError(t, err)

	lazyOrder, _ := lazy.Entity("Order")
	lazyStatus, ok := lazyOrder.Attribute("status")
	require.True(t, ok)
	assert.Equal(t, 0, lazyStatus.TypeChain().Evaluations())

	m, _, err := build(t, shopDocument, WithEagerTypes())
	require.NoError(t, err)

	order, _ := m.Entity("Order")

	status, ok := order.Attribute("status")
	require.True(t, ok)
	assert.Equal(t, 1, status.TypeChain().Evaluations())

	sqlType, err := status.SQLType()
	require.NoError(t, err)
	assert.Equal(t, sqltype.VarChar, sqlType.Code)

	customer, ok := order.Attribute("customer")
	require.True(t, ok)
	assert.Equal(t, binding.NatureAssociation, customer.Nature())
	assert.Empty(t, customer.Columns())
}

func TestBuild_FailingHierarchyIsIsolated(t *testing.T) {
	m, diags, err := build(t, `
entities:
  - name: Broken
    attributes:
      - name: id
        type: int64
        annotations:
          - Id
          - GeneratedValue: {generator: missing_seq}
  - name: BrokenChild
    parent: Broken
  - name: Fine
    attributes:
      - {name: id, type: int64, annotations: [Id]}
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, binding.ErrUnresolvedReference)
	assert.ErrorIs(t, err, binding.ErrMapping)
	assert.Contains(t, err.Error(), "hierarchy Broken")

	require.NotNil(t, m)
	assert.Equal(t, []string{"Fine"}, entityNames(m.Entities()))

	_, ok := m.Entity("BrokenChild")
	assert.False(t, ok)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeBindingFailed, diags.Errors[0].Code)
	assert.Equal(t, "Broken", diags.Errors[0].Entity)
}

func TestBuild_InheritanceCycle(t *testing.T) {
	m, diags, err := build(t, `
entities:
  - {name: A, parent: B}
  - {name: B, parent: A}
  - {name: C, parent: A}
  - {name: D}
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInheritanceCycle)
	assert.Contains(t, err.Error(), "A -> B -> A")

	assert.Equal(t, []string{"D"}, entityNames(m.Entities()))

	codes := make([]string, len(diags.Errors))
	for i, d := range diags.Errors {
		codes[i] = d.Code
	}

	assert.Equal(t, []string{
		diagnostic.CodeInheritanceCycle,
		diagnostic.CodeInheritanceCycle,
		diagnostic.CodeInheritanceCycle,
	}, codes)
}

func TestBuild_InvalidDocument(t *testing.T) {
	m, diags, err := build(t, `
entities:
  - name: Order
  - name: Order
`)
	require.Error(t, err)
	assert.Nil(t, m)
	assert.True(t, diags.HasErrors())
	assert.Contains(t, err.Error(), "duplicate-entity")

	_, _, err = Build(nil)
	require.Error(t, err)
}

const duplicateGenerators = `
generators:
  - SequenceGenerator: {name: dup, sequenceName: first}
  - TableGenerator: {name: dup}
entities:
  - name: Order
    attributes:
      - name: id
        type: int64
        annotations:
          - Id
          - GeneratedValue: {generator: dup}
`

func TestBuild_GeneratorOverwriteWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	m, diags, err := build(t, duplicateGenerators, WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, []string{diagnostic.CodeGeneratorOverwrite}, warningCodes(diags))
	assert.Contains(t, buf.String(), "code="+diagnostic.CodeGeneratorOverwrite)

	order, _ := m.Entity("Order")
	assert.Equal(t, binding.StrategyEnhancedTable, order.Identifier.IdGenerator().Strategy)
}

func TestBuild_StrictGenerators(t *testing.T) {
	_, _, err := build(t, duplicateGenerators, WithStrictGenerators())
	require.Error(t, err)
	assert.ErrorIs(t, err, binding.ErrGeneratorConflict)
	assert.Contains(t, err.Error(), "global generators")
}

func TestBuild_LegacyGenerators(t *testing.T) {
	m, _, err := build(t, shopDocument, WithLegacyGenerators())
	require.NoError(t, err)
	assert.False(t, m.Settings.NewGeneratorMappings)

	audit, _ := m.Entity("Audit")
	gen := audit.Identifier.IdGenerator()
	assert.Equal(t, binding.StrategySeqHiLo, gen.Strategy)

	seq, _ := gen.Parameter("sequence")
	assert.Equal(t, "from_global", seq)
}

func TestBuild_WithSettings(t *testing.T) {
	s := binding.DefaultSettings()
	s.RowIDExpression = "oid"

	m, _, err := build(t, `
settings:
  rowid_expression: ctid
entities:
  - name: Order
`, WithSettings(s))
	require.NoError(t, err)

	order, _ := m.Entity("Order")
	assert.Equal(t, "oid", order.Hierarchy.RowID.Column().Expression)
	assert.Nil(t, order.Identifier)
}

func TestBuild_TypeDefects(t *testing.T) {
	const doc = `
entities:
  - name: Order
    attributes:
      - name: note
        type: string
        annotations:
          - Temporal: DATE
`

	_, _, err := build(t, doc, WithEagerTypes())
	require.Error(t, err)
	assert.ErrorIs(t, err, binding.ErrConfiguration)

	m, _, err := build(t, doc)
	require.NoError(t, err)

	order, _ := m.Entity("Order")
	note, _ := order.Attribute("note")
	assert.Equal(t, 0, note.TypeChain().Evaluations())

	_, err = note.SQLType()
	assert.ErrorIs(t, err, binding.ErrConfiguration)
}

func warningCodes(d diagnostic.Diagnostics) []string {
	codes := make([]string, len(d.Warnings))
	for i, w := range d.Warnings {
		codes[i] = w.Code
	}

	return codes
}

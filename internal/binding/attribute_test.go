package binding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ormbind/internal/annotation"
)

func TestNewAttribute_IdentifierDefaults(t *testing.T) {
	attr := bindBasic(t, testContext(), "id", "int32", newAnn(annotation.ID))

	assert.True(t, attr.IsIdentifier())
	assert.Nil(t, attr.IdGenerator())
	assert.True(t, attr.IsInsertable())
	assert.False(t, attr.IsUpdatable())
	assert.Equal(t, GenerationInsert, attr.Generation())

	cols := attr.Columns()
	require.Len(t, cols, 1)
	assert.Equal(t, "id", cols[0].Name)
	assert.True(t, cols[0].Unique)
	assert.False(t, cols[0].Nullable)
}

func TestNewAttribute_IdentifierColumnsAlwaysUniqueAndNotNull(t *testing.T) {
	tests := []struct {
		name string
		anns []*ann
	}{
		{"explicit nullable column", []*ann{
			newAnn(annotation.ID),
			newAnn(annotation.Column, "name", "order_id", "unique", false, "nullable", true),
		}},
		{"plural columns", []*ann{
			newAnn(annotation.ID),
			newAnn(annotation.Columns, "value", []*ann{
				newAnn(annotation.Column, "name", "region", "nullable", true),
				newAnn(annotation.Column, "name", "number"),
			}),
		}},
		{"generated identifier", []*ann{
			newAnn(annotation.ID),
			newAnn(annotation.GeneratedValue, "strategy", "IDENTITY"),
			newAnn(annotation.Column, "nullable", true),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := bindBasic(t, testContext(), "id", "int64", tt.anns...)

			require.NotEmpty(t, attr.Columns())

			for _, c := range attr.Columns() {
				assert.True(t, c.Unique, c.Name)
				assert.False(t, c.Nullable, c.Name)
			}
		})
	}
}

func TestNewAttribute_ColumnsAreCopies(t *testing.T) {
	attr := bindBasic(t, testContext(), "name", "string")

	cols := attr.Columns()
	cols[0].Name = "mutated"

	assert.Equal(t, "name", attr.Columns()[0].Name)
}

func TestNewAttribute_DuplicateColumn(t *testing.T) {
	err := bindErr(testContext(), "code", "string",
		newAnn(annotation.Column, "name", "code"),
		newAnn(annotation.Column, "name", "CODE"),
	)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestNewAttribute_Version(t *testing.T) {
	attr := bindBasic(t, testContext(), "version", "int", newAnn(annotation.Version))
	assert.True(t, attr.IsVersioned())
	assert.Equal(t, VersionSourceUnset, attr.VersionSource())

	attr = bindBasic(t, testContext(), "version", "time.Time",
		newAnn(annotation.Version), newAnn(annotation.Source, "value", "SourceType.DB"))
	assert.Equal(t, VersionSourceDB, attr.VersionSource())

	err := bindErr(testContext(), "version", "int",
		newAnn(annotation.Version), newAnn(annotation.Source, "value", "CLOCK"))
	require.ErrorIs(t, err, ErrConfiguration)

	attr = bindBasic(t, testContext(), "name", "string", newAnn(annotation.Source, "value", "DB"))
	assert.False(t, attr.IsVersioned())
	assert.Equal(t, VersionSourceUnset, attr.VersionSource())
}

func TestNewAttribute_Basic(t *testing.T) {
	tests := []struct {
		name         string
		anns         []*ann
		wantLazy     bool
		wantOptional bool
	}{
		{"no basic annotation", nil, false, true},
		{"basic defaults to lazy", []*ann{newAnn(annotation.Basic)}, true, true},
		{"eager and required", []*ann{newAnn(annotation.Basic, "fetch", "EAGER", "optional", false)}, false, false},
		{"explicit lazy", []*ann{newAnn(annotation.Basic, "fetch", "FetchType.LAZY")}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := bindBasic(t, testContext(), "summary", "string", tt.anns...)
			assert.Equal(t, tt.wantLazy, attr.IsLazy())
			assert.Equal(t, tt.wantOptional, attr.IsOptional())
		})
	}

	err := bindErr(testContext(), "summary", "string", newAnn(annotation.Basic, "fetch", "SOMETIMES"))
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestNewAttribute_Generated(t *testing.T) {
	tests := []struct {
		name           string
		identifier     bool
		timing         string
		wantInsertable bool
		wantUpdatable  bool
		wantGeneration GenerationTiming
	}{
		{"always", false, "ALWAYS", false, false, GenerationAlways},
		{"always on identifier", true, "ALWAYS", false, false, GenerationAlways},
		{"insert", false, "INSERT", false, true, GenerationInsert},
		{"default timing", false, "", false, true, GenerationInsert},
		{"never", false, "NEVER", false, true, GenerationNever},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newAnn(annotation.Generated)
			if tt.timing != "" {
				gen = newAnn(annotation.Generated, "value", tt.timing)
			}

			anns := []*ann{gen}
			if tt.identifier {
				anns = append(anns, newAnn(annotation.ID))
			}

			attr := bindBasic(t, testContext(), "createdAt", "time.Time", anns...)
			assert.Equal(t, tt.wantInsertable, attr.IsInsertable())
			assert.Equal(t, tt.wantUpdatable, attr.IsUpdatable())
			assert.Equal(t, tt.wantGeneration, attr.Generation())
		})
	}
}

func TestNewAttribute_PlainAttributeIsWritable(t *testing.T) {
	attr := bindBasic(t, testContext(), "name", "string")

	assert.True(t, attr.IsInsertable())
	assert.True(t, attr.IsUpdatable())
	assert.Equal(t, GenerationNever, attr.Generation())
	assert.Equal(t, AccessField, attr.Access())
	assert.Equal(t, "Order", attr.OwningType())
	assert.Equal(t, "string", attr.DeclaredType())
}

func TestNewAttribute_ColumnTransformers(t *testing.T) {
	attr := bindBasic(t, testContext(), "password", "string",
		newAnn(annotation.Column, "name", "pwd"),
		newAnn(annotation.ColumnTransformer, "forColumn", "other", "read", "ignored"),
		newAnn(annotation.ColumnTransformers, "value", []*ann{
			newAnn(annotation.ColumnTransformer, "forColumn", "PWD", "read", "decrypt(pwd)", "write", "encrypt(?)"),
		}),
	)

	cols := attr.Columns()
	require.Len(t, cols, 1)
	assert.Equal(t, "decrypt(pwd)", cols[0].CustomRead)
	assert.Equal(t, "encrypt(?)", cols[0].CustomWrite)
}

func TestNewAttribute_AmbiguousColumnTransformers(t *testing.T) {
	tests := []struct {
		name string
		anns []*ann
	}{
		{"scoped and unscoped on the same column", []*ann{
			newAnn(annotation.Column, "name", "A"),
			newAnn(annotation.ColumnTransformer, "forColumn", "A", "read", "x(A)"),
			newAnn(annotation.ColumnTransformer, "read", "y(A)"),
		}},
		{"two unscoped across plural and singular", []*ann{
			newAnn(annotation.Column, "name", "A"),
			newAnn(annotation.ColumnTransformers, "value", []*ann{newAnn(annotation.ColumnTransformer, "read", "x")}),
			newAnn(annotation.ColumnTransformer, "write", "y"),
		}},
		{"unscoped on a multi-column attribute", []*ann{
			newAnn(annotation.Columns, "value", []*ann{
				newAnn(annotation.Column, "name", "a"),
				newAnn(annotation.Column, "name", "b"),
			}),
			newAnn(annotation.ColumnTransformer, "read", "x"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bindErr(testContext(), "value", "string", tt.anns...)
			require.ErrorIs(t, err, ErrConfiguration)
			assert.NotErrorIs(t, err, ErrMapping)
		})
	}
}

func TestNewAttribute_OptimisticLock(t *testing.T) {
	attr := bindBasic(t, testContext(), "notes", "string", newAnn(annotation.OptimisticLock, "excluded", true))
	lockable, err := attr.IsOptimisticLockable()
	require.NoError(t, err)
	assert.False(t, lockable)

	attr = bindBasic(t, testContext(), "notes", "string")
	lockable, err = attr.IsOptimisticLockable()
	require.NoError(t, err)
	assert.True(t, lockable)

	for _, marker := range []string{annotation.ID, annotation.Version} {
		t.Run(marker, func(t *testing.T) {
			attr := bindBasic(t, testContext(), "key", "int64", newAnn(marker), newAnn(annotation.OptimisticLock, "excluded", true))

			_, err := attr.IsOptimisticLockable()
			require.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestNewAttribute_NonBasic(t *testing.T) {
	attr, err := NewAttribute("customer", "shop.Customer", NatureAssociation, AccessProperty,
		annotation.NewSet(newAnn(annotation.ManyToOne)), testContext())
	require.NoError(t, err)

	assert.Empty(t, attr.Columns())
	assert.Equal(t, AccessProperty, attr.Access())

	_, err = attr.ResolvedType()
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = attr.ValueMapper()
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestNewAttribute_UnresolvedGenerator(t *testing.T) {
	global := NewGeneratorRegistry("global")
	global.Put(&IdGeneratorDefinition{Name: "order_seq", Strategy: StrategyEnhancedSequence})

	err := bindErr(testContext(global), "id", "int64",
		newAnn(annotation.ID),
		newAnn(annotation.GeneratedValue, "generator", "ordr_seq"),
	)

	require.ErrorIs(t, err, ErrUnresolvedReference)
	require.ErrorIs(t, err, ErrMapping)

	var target *Error
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "Order", target.Entity)
	assert.Equal(t, "id", target.Attribute)
	assert.Equal(t, []string{"order_seq"}, target.Suggestions)
	assert.Equal(t,
		`Order.id: unresolved reference: identifier generator "ordr_seq" not found in any enclosing scope (did you mean order_seq?)`,
		err.Error())
}

func TestNewAttribute_GeneratorIgnoredOnNonIdentifier(t *testing.T) {
	attr := bindBasic(t, testContext(), "code", "string", newAnn(annotation.GeneratedValue, "generator", "missing"))
	assert.Nil(t, attr.IdGenerator())
	assert.Nil(t, attr.LocalGenerators())
}

func TestAttributeDescriptor_Navigable(t *testing.T) {
	attr := bindBasic(t, testContext(), "status", "shop.Status", newAnn(annotation.Enumerated, "value", "STRING"))

	var nav Navigable = attr

	role, err := nav.Role()
	require.NoError(t, err)
	assert.Equal(t, "Order.status", role)

	vm, err := nav.ValueMapper()
	require.NoError(t, err)
	assert.Equal(t, "shop.Status", vm.JavaTypeName)
	assert.Equal(t, "VARCHAR", vm.SQLType.Name)
	assert.True(t, vm.Insertable)
	assert.True(t, vm.Updatable)

	jt, err := nav.JavaType()
	require.NoError(t, err)
	assert.Equal(t, "shop.Status", jt.Name)
}

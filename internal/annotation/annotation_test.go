package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotation_Accessors(t *testing.T) {
	a := New(Column, "name", "order_id", "unique", true, "length", 40, "nullable", "nope")

	name, ok := a.String("name")
	assert.True(t, ok)
	assert.Equal(t, "order_id", name)

	_, ok = a.String("missing")
	assert.False(t, ok)
	assert.Equal(t, "fallback", a.StringOr("missing", "fallback"))

	unique, err := a.Bool("unique", false)
	require.NoError(t, err)
	assert.True(t, unique)

	length, err := a.Int("length", 255)
	require.NoError(t, err)
	assert.Equal(t, 40, length)

	precision, err := a.Int("precision", 19)
	require.NoError(t, err)
	assert.Equal(t, 19, precision)

	_, err = a.Bool("nullable", true)
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "Column.nullable")
}

func TestAnnotation_Enum(t *testing.T) {
	a := New(GeneratedValue, "strategy", "GenerationType.sequence")

	v, err := a.Enum("strategy", "AUTO", "AUTO", "IDENTITY", "SEQUENCE", "TABLE")
	require.NoError(t, err)
	assert.Equal(t, "SEQUENCE", v)

	v, err = a.Enum("missing", "AUTO", "AUTO")
	require.NoError(t, err)
	assert.Equal(t, "AUTO", v)

	_, err = New(GeneratedValue, "strategy", "HILO").Enum("strategy", "AUTO", "AUTO", "TABLE")
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestAnnotation_NestedIsNotScalar(t *testing.T) {
	a := New(GenericGenerator, "name", "g", "parameters", []*Annotation{
		New(Parameter, "name", "a", "value", "1"),
	})

	require.Len(t, a.Nested("parameters"), 1)
	assert.Nil(t, a.Nested("name"))

	_, ok := a.String("parameters")
	assert.False(t, ok)

	_, err := a.Bool("parameters", false)
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestNewPanicsOnOddArguments(t *testing.T) {
	assert.Panics(t, func() { New(Column, "name") })
	assert.Panics(t, func() { New(Column, "name", 1.5) })
}

func TestSet_Repeatable(t *testing.T) {
	s := NewSet(
		New(ColumnTransformer, "read", "single"),
		New(ID),
		New(ColumnTransformers, "value", []*Annotation{
			New(ColumnTransformer, "read", "first"),
			New(ColumnTransformer, "read", "second"),
		}),
	)

	got := s.Repeatable(ColumnTransformer, ColumnTransformers)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].StringOr("read", ""))
	assert.Equal(t, "second", got[1].StringOr("read", ""))
	assert.Equal(t, "single", got[2].StringOr("read", ""))

	assert.True(t, s.Has(ID))
	assert.False(t, s.Has(Version))
	assert.Nil(t, s.First(Version))
	assert.Equal(t, []string{ColumnTransformer, ID, ColumnTransformers}, s.Names())
}

func TestSet_ZeroValueAndWith(t *testing.T) {
	var s Set
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Get(ID))

	s2 := s.With(New(ID), nil)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, s2.Len())
}

func TestAnnotation_Equal(t *testing.T) {
	a := New(Column, "name", "x", "nested", []*Annotation{New(Parameter, "name", "p")})
	b := New(Column, "name", "x", "nested", []*Annotation{New(Parameter, "name", "p")})
	c := New(Column, "name", "y")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

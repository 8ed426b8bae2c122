package binding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ormbind/internal/annotation"
)

type ann = annotation.Annotation

var newAnn = annotation.New

func testContext(scopes ...*GeneratorRegistry) *Context {
	ctx := NewContext("Order", scopes...)
	ctx.Types.RegisterEnum("shop.Status")

	return ctx
}

func bindBasic(t *testing.T, ctx *Context, name, declaredType string, anns ...*ann) *AttributeDescriptor {
	t.Helper()

	attr, err := NewAttribute(name, declaredType, NatureBasic, AccessField, annotation.NewSet(anns...), ctx)
	require.NoError(t, err)
	require.NotNil(t, attr)

	return attr
}

func bindErr(ctx *Context, name, declaredType string, anns ...*ann) error {
	_, err := NewAttribute(name, declaredType, NatureBasic, AccessField, annotation.NewSet(anns...), ctx)
	return err
}

package binding

import (
	"fmt"
	"strings"

	"ormbind/internal/annotation"
	"ormbind/internal/diagnostic"
)

// Transform is a custom read/write SQL fragment pair for one column.
type Transform struct {
	Read  string
	Write string
}

// ResolveColumnTransformers gathers the ColumnTransformer annotations (plural
// container first, then singular) and assigns each to the column it applies
// to. A transformer scoped with forColumn applies only to the column of that
// name; one naming no bound column is skipped with an unused-transformer
// warning. An unscoped transformer applies to the only
// column, and is ambiguous when there are several. More than one transformer
// applying to the same column is an ErrConfiguration. The result is keyed by
// column name and holds only columns with a transformer.
func ResolveColumnTransformers(anns annotation.Set, columns []string, ctx *Context, attribute string) (map[string]Transform, error) {
	return resolveColumnTransformers(anns, columns, ctx, owner{entity: ctx.Entity, attribute: attribute})
}

func resolveColumnTransformers(anns annotation.Set, columns []string, ctx *Context, o owner) (map[string]Transform, error) {
	out := make(map[string]Transform)

	for _, t := range anns.Repeatable(annotation.ColumnTransformer, annotation.ColumnTransformers) {
		column, ok, err := transformerTarget(t, columns, ctx, o)
		if err != nil {
			return nil, err
		}

		if !ok {
			continue
		}

		if _, dup := out[column]; dup {
			return nil, o.errorf(ErrConfiguration,
				"multiple column transformers apply to column %q", column)
		}

		out[column] = Transform{
			Read:  t.StringOr("read", ""),
			Write: t.StringOr("write", ""),
		}
	}

	return out, nil
}

func transformerTarget(t *annotation.Annotation, columns []string, ctx *Context, o owner) (string, bool, error) {
	forColumn := strings.TrimSpace(t.StringOr("forColumn", ""))

	if forColumn == "" {
		switch len(columns) {
		case 0:
			return "", false, nil
		case 1:
			return columns[0], true, nil
		default:
			return "", false, o.errorf(ErrConfiguration,
				"column transformer without forColumn is ambiguous for %d columns", len(columns))
		}
	}

	for _, c := range columns {
		if strings.EqualFold(c, forColumn) {
			return c, true, nil
		}
	}

	ctx.diagnostics().AddWarning(diagnostic.CodeUnusedTransformer,
		fmt.Sprintf("column transformer for column %q matches no bound column", forColumn),
		o.entity, o.attribute)

	return "", false, nil
}

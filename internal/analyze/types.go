package analyze

import (
	"go/types"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "ormbind/shop"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// typeIDOf returns the identity of a named type, looking through pointers.
func typeIDOf(t types.Type) (TypeID, bool) {
	t = types.Unalias(t)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return TypeID{}, false
	}

	return TypeID{PkgPath: named.Obj().Pkg().Path(), Name: named.Obj().Name()}, true
}

// shortQualifier renders package-qualified names with the package name
// ("shop.Status"), the form the type registry is keyed by.
func shortQualifier(p *types.Package) string {
	return p.Name()
}

// declaredTypeName renders a field type as a declared type name. Named types
// over a basic type that are not enums collapse to the basic type.
func declaredTypeName(t types.Type, enums map[TypeID]bool) string {
	t = types.Unalias(t)

	if p, ok := t.(*types.Pointer); ok {
		return "*" + declaredTypeName(p.Elem(), enums)
	}

	if named, ok := t.(*types.Named); ok {
		if basic, ok := named.Underlying().(*types.Basic); ok {
			if id, ok := typeIDOf(named); ok && !enums[id] {
				return basic.Name()
			}
		}
	}

	return types.TypeString(t, shortQualifier)
}

package analyze

import (
	"fmt"
	"go/types"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"ormbind/internal/annotation"
	"ormbind/internal/mapping"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// TagKey is the struct tag key holding annotations.
const TagKey = "orm"

// PackageMappingType is the struct name whose tags are package-level
// annotations.
const PackageMappingType = "PackageMapping"

var associationAnnotations = []string{
	annotation.ManyToOne,
	annotation.OneToOne,
	annotation.OneToMany,
	annotation.ManyToMany,
}

// Analyzer loads Go packages and builds a mapping document.
type Analyzer struct {
	logger   *slog.Logger
	doc      *mapping.Document
	enums    map[TypeID]bool
	enumList []string
	entities map[TypeID]*mapping.Entity
	// embeds holds untagged embedded types per entity, the parent candidates.
	embeds map[TypeID][]TypeID
}

// NewAnalyzer creates a new Analyzer. A nil logger discards output.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Analyzer{
		logger:   logger,
		doc:      &mapping.Document{},
		enums:    make(map[TypeID]bool),
		entities: make(map[TypeID]*mapping.Entity),
		embeds:   make(map[TypeID][]TypeID),
	}
}

// LoadPackages loads the specified packages and derives the mapping
// document. Patterns are standard Go package patterns (e.g., "./shop",
// "ormbind/shop").
func (a *Analyzer) LoadPackages(patterns ...string) (*mapping.Document, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	slices.SortFunc(pkgs, func(x, y *packages.Package) int {
		return strings.Compare(x.PkgPath, y.PkgPath)
	})

	// Enums first: fields may refer to enums of any loaded package.
	for _, pkg := range pkgs {
		a.collectEnums(pkg)
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	if err := a.linkParents(); err != nil {
		return nil, err
	}

	a.doc.Enums = slices.Sorted(slices.Values(a.enumList))
	mapping.ApplyDefaults(a.doc)

	return a.doc, nil
}

// Document returns the document built so far.
func (a *Analyzer) Document() *mapping.Document {
	return a.doc
}

func (a *Analyzer) collectEnums(pkg *packages.Package) {
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}

		named, ok := types.Unalias(c.Type()).(*types.Named)
		if !ok || named.Obj().Pkg() != pkg.Types {
			continue
		}

		if _, ok := named.Underlying().(*types.Basic); !ok {
			continue
		}

		id, _ := typeIDOf(named)
		if a.enums[id] {
			continue
		}

		a.enums[id] = true
		a.enumList = append(a.enumList, pkg.Name+"."+id.Name)
		a.logger.Debug("enum discovered", "type", id.String())
	}
}

// processPackage extracts entities and package annotations from a loaded
// package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	pkgDef := mapping.Package{Name: pkg.Name}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		if name == PackageMappingType {
			anns, err := packageAnnotations(st)
			if err != nil {
				return err
			}

			pkgDef.Annotations = append(pkgDef.Annotations, anns...)

			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}

		entity, ok, err := a.analyzeStruct(id, pkg.Name, st)
		if err != nil {
			return err
		}

		if !ok {
			continue
		}

		a.entities[id] = entity
		a.logger.Debug("entity discovered",
			"entity", entity.Name, "package", pkg.PkgPath, "attributes", len(entity.Attributes))
	}

	a.doc.Packages = append(a.doc.Packages, pkgDef)

	return nil
}

func packageAnnotations(st *types.Struct) (mapping.Annotations, error) {
	var out mapping.Annotations

	for i := 0; i < st.NumFields(); i++ {
		tag, ok := reflect.StructTag(st.Tag(i)).Lookup(TagKey)
		if !ok {
			continue
		}

		anns, err := annotation.ParseTag(tag)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", PackageMappingType, st.Field(i).Name(), err)
		}

		out = append(out, anns...)
	}

	return out, nil
}

// analyzeStruct builds the entity of a struct. Structs without any orm tag
// are not entities.
func (a *Analyzer) analyzeStruct(id TypeID, pkgName string, st *types.Struct) (*mapping.Entity, bool, error) {
	if !hasTag(st) {
		return nil, false, nil
	}

	entity := &mapping.Entity{Name: id.Name, Package: pkgName}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		tag, tagged := reflect.StructTag(st.Tag(i)).Lookup(TagKey)

		if tag == "-" {
			continue
		}

		anns, err := annotation.ParseTag(tag)
		if err != nil {
			return nil, false, fmt.Errorf("%s.%s: %w", id.Name, field.Name(), err)
		}

		switch {
		case field.Name() == "_":
			entity.Annotations = append(entity.Annotations, anns...)

		case field.Embedded() && !tagged:
			if parent, ok := typeIDOf(field.Type()); ok {
				a.embeds[id] = append(a.embeds[id], parent)
			}

		case !field.Exported():
			continue

		default:
			entity.Attributes = append(entity.Attributes, mapping.Attribute{
				Name:        field.Name(),
				Type:        declaredTypeName(field.Type(), a.enums),
				Nature:      natureOf(anns),
				Annotations: anns,
			})
		}
	}

	return entity, true, nil
}

// linkParents resolves untagged embedded entities to parents and appends the
// entities to the document.
func (a *Analyzer) linkParents() error {
	ids := make([]TypeID, 0, len(a.entities))
	for id := range a.entities {
		ids = append(ids, id)
	}

	slices.SortFunc(ids, func(x, y TypeID) int {
		return strings.Compare(x.String(), y.String())
	})

	for _, id := range ids {
		entity := a.entities[id]

		for _, embedded := range a.embeds[id] {
			parent, ok := a.entities[embedded]
			if !ok {
				a.logger.Debug("embedded type is not an entity, ignored", "entity", entity.Name, "type", embedded.String())
				continue
			}

			if entity.Parent != "" {
				return fmt.Errorf("%s: multiple parent entities %s and %s", entity.Name, entity.Parent, parent.Name)
			}

			entity.Parent = parent.Name
		}

		a.doc.Entities = append(a.doc.Entities, *entity)
	}

	return nil
}

func hasTag(st *types.Struct) bool {
	for i := 0; i < st.NumFields(); i++ {
		if _, ok := reflect.StructTag(st.Tag(i)).Lookup(TagKey); ok {
			return true
		}
	}

	return false
}

func natureOf(anns []*annotation.Annotation) string {
	set := annotation.NewSet(anns...)

	switch {
	case set.Has(annotation.Embedded):
		return "EMBEDDED"
	case slices.ContainsFunc(associationAnnotations, set.Has):
		return "ASSOCIATION"
	default:
		return mapping.DefaultNature
	}
}

package mapping

import (
	"fmt"

	"ormbind/internal/binding"
	"ormbind/internal/diagnostic"
	"ormbind/internal/match"
)

// Validate checks a mapping document for structural defects: missing or
// duplicate names, unknown parents and unparseable natures or access
// strategies. Inheritance cycles and annotation semantics are checked when
// the model is built.
func Validate(doc *Document) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if doc == nil {
		res.AddError(diagnostic.CodeMissingName, "mapping document is nil", "", "")
		return res
	}

	packages := map[string]struct{}{}

	for _, p := range doc.Packages {
		if p.Name == "" {
			res.AddError(diagnostic.CodeMissingName, "package name is required", "", "")
			continue
		}

		packages[p.Name] = struct{}{}
	}

	entities := map[string]struct{}{}
	names := make([]string, 0, len(doc.Entities))

	for i := range doc.Entities {
		name := doc.Entities[i].Name
		if name == "" {
			res.AddError(diagnostic.CodeMissingName, fmt.Sprintf("entity #%d has no name", i+1), "", "")
			continue
		}

		if _, ok := entities[name]; ok {
			res.AddError(diagnostic.CodeDuplicateEntity, fmt.Sprintf("duplicate entity %q", name), name, "")
			continue
		}

		entities[name] = struct{}{}
		names = append(names, name)
	}

	for i := range doc.Entities {
		e := &doc.Entities[i]
		if e.Name == "" {
			continue
		}

		if e.Parent != "" {
			if _, ok := entities[e.Parent]; !ok {
				res.Errors = append(res.Errors, diagnostic.Diagnostic{
					Severity:    diagnostic.DiagnosticError,
					Code:        diagnostic.CodeUnknownParent,
					Message:     fmt.Sprintf("parent entity %q not found", e.Parent),
					Entity:      e.Name,
					Suggestions: match.Suggest(e.Parent, names, 3),
				})
			}
		}

		if e.Package != "" && len(doc.Packages) > 0 {
			if _, ok := packages[e.Package]; !ok {
				res.AddWarning(diagnostic.CodeUnknownPackage,
					fmt.Sprintf("package %q is not declared; only global generators apply", e.Package), e.Name, "")
			}
		}

		validateAttributes(res, e)
	}

	return res
}

func validateAttributes(res *diagnostic.Diagnostics, e *Entity) {
	seen := map[string]struct{}{}

	for i := range e.Attributes {
		attr := &e.Attributes[i]

		if attr.Name == "" {
			res.AddError(diagnostic.CodeMissingName, fmt.Sprintf("attribute #%d has no name", i+1), e.Name, "")
			continue
		}

		if _, ok := seen[attr.Name]; ok {
			res.AddError(diagnostic.CodeDuplicateAttribute,
				fmt.Sprintf("duplicate attribute %q", attr.Name), e.Name, attr.Name)

			continue
		}

		seen[attr.Name] = struct{}{}

		if attr.Type == "" {
			res.AddError(diagnostic.CodeMissingName, "attribute type is required", e.Name, attr.Name)
		}

		if _, err := binding.ParseNature(attr.Nature); err != nil {
			res.AddError(diagnostic.CodeInvalidNature, err.Error(), e.Name, attr.Name)
		}

		if _, err := binding.ParseAccessStrategy(attr.Access); err != nil {
			res.AddError(diagnostic.CodeInvalidAccess, err.Error(), e.Name, attr.Name)
		}
	}
}

// Package analyze loads Go packages and derives a mapping document from
// `orm` struct tags.
//
// It uses golang.org/x/tools/go/packages with go/types. An exported struct
// with at least one `orm` tag is an entity:
//   - blank `_` fields carry entity-level annotations
//   - exported fields are attributes; `orm:"-"` skips one
//   - an untagged embedded entity is the parent entity
//   - a struct named PackageMapping carries package-level annotations
//
// Named types with a basic underlying type and at least one package-level
// constant are registered as enums.
package analyze

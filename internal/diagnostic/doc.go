// Package diagnostic provides structured warnings and errors produced while
// validating mapping documents and binding entity metadata.
//
// Key capabilities:
//   - Document validation errors (duplicate names, unknown parents)
//   - Binding warnings (silently overwritten generator definitions)
//   - Suggestions for unresolved names
package diagnostic

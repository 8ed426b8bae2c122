// Package match provides name normalization and edit-distance ranking used
// to suggest close names when a generator reference cannot be resolved.
package match

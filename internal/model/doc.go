// Package model binds a mapping document into entity hierarchies.
//
// Build creates the global and package generator registries, orders
// entities parents-first, and binds each hierarchy with an explicit scope
// chain:
//
//	attribute -> entity -> ancestors (root last) -> hierarchy -> package -> global
//
// Identifier generators declared on an attribute are published to the
// hierarchy registry once the attribute is bound, so later entities of the
// same hierarchy can refer to them. A hierarchy that fails to bind is left
// out of the model entirely.
package model

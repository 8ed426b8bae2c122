// Package binding turns the annotations declared on one attribute into an
// immutable AttributeDescriptor: column bindings, identifier generation,
// versioning, fetch and generation policy, column read/write fragments and a
// lazily resolved storage type.
//
// Resolution steps:
//   - NewAttribute applies ordered derivation rules to the attribute's
//     annotation set and fails fast on mapping defects.
//   - ResolveIdGenerator finds the identifier generator, searching the
//     attribute's own definitions before the explicit ScopeChain passed in
//     through the Context (entity, ancestors, package, global).
//   - TypeResolverChain evaluates the temporal, lob, enumerated and default
//     resolvers in fixed priority order and memoizes the winner.
//   - ResolveColumnTransformers picks at most one read/write fragment pair
//     per column.
//   - NewRowID builds the synthetic row identifier of an entity hierarchy.
//
// Binding is single-threaded. Descriptors are safe for concurrent reads once
// their type has been resolved.
package binding

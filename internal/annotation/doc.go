// Package annotation provides the accessor contract the binding core reads
// mapping metadata through.
//
// An Annotation is a named instance with named values. Values are either
// scalars (read as string, bool, int or enum on demand) or arrays of nested
// annotations. A Set groups the annotations declared on one element
// (attribute, entity or package) and preserves declaration order.
//
// Annotations are produced by the mapping document loader and by the Go
// source analyzer. The latter reads the struct-tag grammar handled by
// ParseTag:
//
//	orm:"Id;GeneratedValue(strategy=SEQUENCE,generator=order_seq)"
//	orm:"ColumnTransformers(value=[ColumnTransformer(forColumn=pwd,read='decrypt(pwd)')])"
//
// Qualified annotation identifiers are the exported name constants.
package annotation

// Package mapping provides the YAML mapping document: schema, parsing,
// defaults and structural validation.
//
// A mapping document declares entities and their attributes together with
// the annotations that drive binding.
//
// # Schema Overview
//
//	version: "1"
//	settings:
//	  new_generator_mappings: true
//	  strict_generator_names: false
//	  rowid_expression: rowid
//	generators:                       # global scope
//	  - SequenceGenerator: {name: global_seq, sequenceName: global_seq}
//	packages:
//	  - name: shop                    # package scope
//	    annotations:
//	      - TableGenerator: {name: shop_ids, table: shop_ids}
//	enums: [shop.Status]
//	entities:
//	  - name: Order
//	    package: shop
//	    annotations:
//	      - Entity
//	      - Table: {name: orders}
//	    attributes:
//	      - name: id
//	        type: int64
//	        annotations:
//	          - Id
//	          - GeneratedValue: {strategy: SEQUENCE, generator: order_seq}
//	          - SequenceGenerator: {name: order_seq, allocationSize: 10}
//	      - name: placedOn
//	        type: time.Time
//	        annotations:
//	          - Temporal: DATE
//
// # Annotation Syntax
//
// An annotation is either a bare name (`- Id`) or a single-key map. The map
// value is one of:
//   - a scalar, stored under the "value" key (`- Temporal: DATE`)
//   - a map of named values (`- Column: {name: total, nullable: false}`)
//   - a sequence of annotations, stored as a nested array under "value"
//
// Inside a value map, a sequence or a map-valued key is a nested annotation
// array (`parameters: [{Parameter: {name: a, value: b}}]`).
package mapping

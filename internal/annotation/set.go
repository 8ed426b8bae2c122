package annotation

import "github.com/samber/lo"

// Set is the ordered collection of annotations declared on one element.
// The zero value is an empty set.
type Set struct {
	items []*Annotation
}

// NewSet creates a set preserving the given order.
func NewSet(items ...*Annotation) Set {
	return Set{items: lo.Filter(items, func(a *Annotation, _ int) bool { return a != nil })}
}

// With returns a new set with items appended.
func (s Set) With(items ...*Annotation) Set {
	merged := make([]*Annotation, 0, len(s.items)+len(items))
	merged = append(merged, s.items...)
	merged = append(merged, items...)

	return NewSet(merged...)
}

// Get returns all instances of the named annotation in declaration order.
func (s Set) Get(name string) []*Annotation {
	return lo.Filter(s.items, func(a *Annotation, _ int) bool { return a.Name == name })
}

// First returns the first instance of the named annotation, or nil.
func (s Set) First(name string) *Annotation {
	a, _ := lo.Find(s.items, func(a *Annotation) bool { return a.Name == name })
	return a
}

// Has returns true if at least one instance of the named annotation exists.
func (s Set) Has(name string) bool {
	return lo.ContainsBy(s.items, func(a *Annotation) bool { return a.Name == name })
}

// All returns every annotation in declaration order.
func (s Set) All() []*Annotation {
	return s.items
}

// Len returns the number of annotations.
func (s Set) Len() int {
	return len(s.items)
}

// Names returns the distinct annotation names in first-seen order.
func (s Set) Names() []string {
	return lo.Uniq(lo.Map(s.items, func(a *Annotation, _ int) string { return a.Name }))
}

// Repeatable gathers a repeatable annotation declared either through its
// plural container (whose "value" array holds singular instances) or
// directly. Container contents come first, then singular instances, each in
// declaration order.
func (s Set) Repeatable(single, plural string) []*Annotation {
	var out []*Annotation

	for _, container := range s.Get(plural) {
		out = append(out, lo.Filter(container.Nested(ValueKey), func(a *Annotation, _ int) bool {
			return a != nil && a.Name == single
		})...)
	}

	return append(out, s.Get(single)...)
}

package annotation

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned when an annotation value cannot be read as the
// requested kind.
var ErrInvalidValue = errors.New("invalid annotation value")

// ValueKind distinguishes scalar values from nested annotation arrays.
type ValueKind int

const (
	ValueScalar ValueKind = iota
	ValueArray
)

// Value is a single named annotation value.
type Value struct {
	Kind  ValueKind
	Raw   string        // scalar text, typed on access
	Items []*Annotation // nested annotations for ValueArray
}

// Scalar creates a scalar value.
func Scalar(raw string) Value {
	return Value{Kind: ValueScalar, Raw: raw}
}

// Array creates a nested annotation array value.
func Array(items ...*Annotation) Value {
	return Value{Kind: ValueArray, Items: items}
}

// Annotation is one annotation instance with named values.
type Annotation struct {
	Name   string
	Values map[string]Value
}

// New creates an annotation from alternating key/value arguments. Values may
// be string, bool, int, Value, *Annotation or []*Annotation; anything else
// panics.
func New(name string, kv ...any) *Annotation {
	if len(kv)%2 != 0 {
		panic("annotation.New: odd number of key/value arguments")
	}

	a := &Annotation{Name: name, Values: make(map[string]Value, len(kv)/2)}

	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("annotation.New: key must be a string")
		}

		switch v := kv[i+1].(type) {
		case string:
			a.Values[key] = Scalar(v)
		case bool:
			a.Values[key] = Scalar(strconv.FormatBool(v))
		case int:
			a.Values[key] = Scalar(strconv.Itoa(v))
		case Value:
			a.Values[key] = v
		case *Annotation:
			a.Values[key] = Array(v)
		case []*Annotation:
			a.Values[key] = Array(v...)
		default:
			panic(fmt.Sprintf("annotation.New: unsupported value type %T for %q", v, key))
		}
	}

	return a
}

// Has returns true if the annotation declares the key.
func (a *Annotation) Has(key string) bool {
	_, ok := a.Values[key]
	return ok
}

// String returns a scalar value. ok is false when the key is absent or holds
// an array.
func (a *Annotation) String(key string) (string, bool) {
	v, ok := a.Values[key]
	if !ok || v.Kind != ValueScalar {
		return "", false
	}

	return v.Raw, true
}

// StringOr returns a non-empty scalar value or def.
func (a *Annotation) StringOr(key, def string) string {
	if s, ok := a.String(key); ok && s != "" {
		return s
	}

	return def
}

// Bool reads a boolean value, returning def when the key is absent.
func (a *Annotation) Bool(key string, def bool) (bool, error) {
	raw, ok, err := a.scalar(key)
	if err != nil || !ok {
		return def, err
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def, a.invalid(key, raw, "bool")
	}

	return b, nil
}

// Int reads an integer value, returning def when the key is absent.
func (a *Annotation) Int(key string, def int) (int, error) {
	raw, ok, err := a.scalar(key)
	if err != nil || !ok {
		return def, err
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, a.invalid(key, raw, "int")
	}

	return n, nil
}

// Enum reads an enumeration constant. The comparison ignores case and an
// optional "Type." qualifier; the returned value is the matching entry of
// allowed. def is returned when the key is absent.
func (a *Annotation) Enum(key, def string, allowed ...string) (string, error) {
	raw, ok, err := a.scalar(key)
	if err != nil || !ok {
		return def, err
	}

	name := raw
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}

	for _, c := range allowed {
		if strings.EqualFold(c, name) {
			return c, nil
		}
	}

	return def, a.invalid(key, raw, "one of "+strings.Join(allowed, "|"))
}

// Nested returns the annotations of an array value, or nil.
func (a *Annotation) Nested(key string) []*Annotation {
	v, ok := a.Values[key]
	if !ok || v.Kind != ValueArray {
		return nil
	}

	return v.Items
}

// Keys returns the declared value keys in sorted order.
func (a *Annotation) Keys() []string {
	keys := make([]string, 0, len(a.Values))
	for k := range a.Values {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Equal reports whether two annotations have the same name and values.
func (a *Annotation) Equal(b *Annotation) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Name != b.Name || len(a.Values) != len(b.Values) {
		return false
	}

	for k, av := range a.Values {
		bv, ok := b.Values[k]
		if !ok || av.Kind != bv.Kind || av.Raw != bv.Raw {
			return false
		}

		if !slices.EqualFunc(av.Items, bv.Items, (*Annotation).Equal) {
			return false
		}
	}

	return true
}

// TagString renders the annotation in struct-tag syntax.
func (a *Annotation) TagString() string {
	if len(a.Values) == 0 {
		return a.Name
	}

	parts := make([]string, 0, len(a.Values))

	for _, k := range a.Keys() {
		v := a.Values[k]
		if v.Kind == ValueArray {
			items := make([]string, len(v.Items))
			for i, item := range v.Items {
				items[i] = item.TagString()
			}

			parts = append(parts, k+"=["+strings.Join(items, ",")+"]")

			continue
		}

		parts = append(parts, k+"="+quoteIfNeeded(v.Raw))
	}

	return a.Name + "(" + strings.Join(parts, ",") + ")"
}

func (a *Annotation) scalar(key string) (string, bool, error) {
	v, ok := a.Values[key]
	if !ok {
		return "", false, nil
	}

	if v.Kind != ValueScalar {
		return "", false, a.invalid(key, "[...]", "scalar")
	}

	return strings.TrimSpace(v.Raw), true, nil
}

func (a *Annotation) invalid(key, raw, want string) error {
	return fmt.Errorf("%s.%s = %q, want %s: %w", a.Name, key, raw, want, ErrInvalidValue)
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, ",;()[]=' ") {
		return "'" + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), "'", `\'`) + "'"
	}

	return s
}

// MissingError reports a required value the annotation does not declare.
func (a *Annotation) MissingError(key string) error {
	return fmt.Errorf("%s.%s is required: %w", a.Name, key, ErrInvalidValue)
}

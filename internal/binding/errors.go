package binding

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every *Error unwraps to exactly one of ErrConfiguration,
// ErrUnresolvedReference, ErrGeneratorConflict or ErrUnsupportedOperation;
// the two reference kinds also match ErrMapping.
var (
	ErrMapping              = errors.New("mapping error")
	ErrConfiguration        = errors.New("configuration error")
	ErrUnresolvedReference  = errors.New("unresolved reference")
	ErrGeneratorConflict    = errors.New("conflicting generator definitions")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrNotYetImplemented    = errors.New("not yet implemented")
)

// Error describes a mapping defect on an entity or attribute.
type Error struct {
	Kind        error
	Entity      string
	Attribute   string
	Message     string
	Suggestions []string
	Err         error
}

func (e *Error) Error() string {
	var b strings.Builder

	switch {
	case e.Entity != "" && e.Attribute != "":
		b.WriteString(e.Entity + "." + e.Attribute + ": ")
	case e.Entity != "":
		b.WriteString(e.Entity + ": ")
	case e.Attribute != "":
		b.WriteString(e.Attribute + ": ")
	}

	b.WriteString(e.Kind.Error())
	b.WriteString(": ")
	b.WriteString(e.Message)

	if len(e.Suggestions) > 0 {
		b.WriteString(" (did you mean " + strings.Join(e.Suggestions, ", ") + "?)")
	}

	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}

	return b.String()
}

// Unwrap exposes the kind, ErrMapping for reference kinds, and the cause.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Kind == ErrUnresolvedReference || e.Kind == ErrGeneratorConflict {
		errs = append(errs, ErrMapping)
	}

	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// owner names the element an error is reported against.
type owner struct {
	entity    string
	attribute string
}

func (o owner) errorf(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Entity: o.entity, Attribute: o.attribute, Message: fmt.Sprintf(format, args...)}
}

func (o owner) wrap(kind error, cause error, format string, args ...any) *Error {
	e := o.errorf(kind, format, args...)
	e.Err = cause

	return e
}

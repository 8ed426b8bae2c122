package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"ormbind/internal/common"
)

// Diagnostic codes emitted by the loader and the binder.
const (
	CodeDuplicateEntity     = "duplicate-entity"
	CodeDuplicateAttribute  = "duplicate-attribute"
	CodeUnknownParent       = "unknown-parent"
	CodeInheritanceCycle    = "inheritance-cycle"
	CodeUnknownPackage      = "unknown-package"
	CodeInvalidNature       = "invalid-nature"
	CodeInvalidAccess       = "invalid-access"
	CodeMissingName         = "missing-name"
	CodeGeneratorOverwrite  = "generator-overwrite"
	CodeMultipleIdentifiers = "multiple-identifiers"
	CodeUnusedTransformer   = "unused-transformer"
	CodeBindingFailed       = "binding-failed"
)

// Diagnostics holds all diagnostic information from a load or binding pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Entity identifies which entity this relates to (if any).
	Entity string
	// Attribute identifies which attribute this relates to (if any).
	Attribute string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, entity, attribute string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  DiagnosticError,
		Code:      code,
		Message:   message,
		Entity:    entity,
		Attribute: attribute,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, entity, attribute string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  DiagnosticWarning,
		Code:      code,
		Message:   message,
		Entity:    entity,
		Attribute: attribute,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, entity, attribute string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  DiagnosticInfo,
		Code:      code,
		Message:   message,
		Entity:    entity,
		Attribute: attribute,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix string

	switch {
	case d.Entity != "" && d.Attribute != "":
		prefix = d.Entity + "." + d.Attribute
	case d.Entity != "":
		prefix = d.Entity
	case d.Attribute != "":
		prefix = d.Attribute
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if prefix != "" {
		return prefix + ": " + msg
	}

	return msg
}

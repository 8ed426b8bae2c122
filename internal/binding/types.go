package binding

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Nature,AccessStrategy,GenerationTiming,VersionSource,TemporalPrecision,EnumMode -linecomment -output=types_string.go

// Nature classifies a mapped attribute.
type Nature int

const (
	NatureBasic       Nature = iota // basic
	NatureEmbedded                  // embedded
	NatureAssociation               // association
)

// ParseNature parses a nature name, case-insensitively. Empty means basic.
func ParseNature(s string) (Nature, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "basic":
		return NatureBasic, nil
	case "embedded":
		return NatureEmbedded, nil
	case "association":
		return NatureAssociation, nil
	default:
		return NatureBasic, fmt.Errorf("unknown attribute nature %q", s)
	}
}

// AccessStrategy tells how attribute values are read and written.
type AccessStrategy int

const (
	AccessField    AccessStrategy = iota // field
	AccessProperty                       // property
)

// ParseAccessStrategy parses an access strategy name. Empty means field.
func ParseAccessStrategy(s string) (AccessStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "field":
		return AccessField, nil
	case "property":
		return AccessProperty, nil
	default:
		return AccessField, fmt.Errorf("unknown access strategy %q", s)
	}
}

// GenerationTiming says when the database generates an attribute's value.
type GenerationTiming int

const (
	GenerationNever  GenerationTiming = iota // NEVER
	GenerationInsert                         // INSERT
	GenerationAlways                         // ALWAYS
)

// VersionSource says where version values come from.
type VersionSource int

const (
	VersionSourceUnset VersionSource = iota // UNSET
	VersionSourceVM                         // VM
	VersionSourceDB                         // DB
)

// GenerationType is the identifier generation strategy enumeration.
type GenerationType string

const (
	GenerationAuto     GenerationType = "AUTO"
	GenerationIdentity GenerationType = "IDENTITY"
	GenerationSequence GenerationType = "SEQUENCE"
	GenerationTable    GenerationType = "TABLE"
	GenerationUUID     GenerationType = "UUID"
)

var generationTypes = []string{
	string(GenerationAuto), string(GenerationIdentity), string(GenerationSequence),
	string(GenerationTable), string(GenerationUUID),
}

// TemporalPrecision is the storage precision chosen for temporal values.
type TemporalPrecision int

const (
	TemporalNone      TemporalPrecision = iota // NONE
	TemporalDate                               // DATE
	TemporalTime                               // TIME
	TemporalTimestamp                          // TIMESTAMP
)

// EnumMode is how enumeration values are stored.
type EnumMode int

const (
	EnumNone    EnumMode = iota // NONE
	EnumOrdinal                 // ORDINAL
	EnumString                  // STRING
)

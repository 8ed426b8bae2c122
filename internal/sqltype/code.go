package sqltype

import "ormbind/internal/common"

// Code is a JDBC type code.
type Code int

// Standard JDBC type codes.
const (
	Bit           Code = -7
	TinyInt       Code = -6
	SmallInt      Code = 5
	Integer       Code = 4
	BigInt        Code = -5
	Float         Code = 6
	Real          Code = 7
	Double        Code = 8
	Numeric       Code = 2
	Decimal       Code = 3
	Char          Code = 1
	VarChar       Code = 12
	LongVarChar   Code = -1
	Date          Code = 91
	Time          Code = 92
	Timestamp     Code = 93
	Binary        Code = -2
	VarBinary     Code = -3
	LongVarBinary Code = -4
	Null          Code = 0
	Other         Code = 1111
	Blob          Code = 2004
	Clob          Code = 2005
	Boolean       Code = 16
	RowID         Code = -8
	NChar         Code = -15
	NVarChar      Code = -9
	LongNVarChar  Code = -16
	NClob         Code = 2011
	UUID          Code = 3000
)

var codeNames = map[Code]string{
	Bit:           "BIT",
	TinyInt:       "TINYINT",
	SmallInt:      "SMALLINT",
	Integer:       "INTEGER",
	BigInt:        "BIGINT",
	Float:         "FLOAT",
	Real:          "REAL",
	Double:        "DOUBLE",
	Numeric:       "NUMERIC",
	Decimal:       "DECIMAL",
	Char:          "CHAR",
	VarChar:       "VARCHAR",
	LongVarChar:   "LONGVARCHAR",
	Date:          "DATE",
	Time:          "TIME",
	Timestamp:     "TIMESTAMP",
	Binary:        "BINARY",
	VarBinary:     "VARBINARY",
	LongVarBinary: "LONGVARBINARY",
	Null:          "NULL",
	Other:         "OTHER",
	Blob:          "BLOB",
	Clob:          "CLOB",
	Boolean:       "BOOLEAN",
	RowID:         "ROWID",
	NChar:         "NCHAR",
	NVarChar:      "NVARCHAR",
	LongNVarChar:  "LONGNVARCHAR",
	NClob:         "NCLOB",
	UUID:          "UUID",
}

// String returns the JDBC type name.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}

	return common.UnknownStr
}

// IsCharacter returns true for character storage codes, national or not.
func (c Code) IsCharacter() bool {
	switch c {
	case Char, VarChar, LongVarChar, Clob, NChar, NVarChar, LongNVarChar, NClob:
		return true
	default:
		return false
	}
}

// Nationalized returns the national-character variant of a character code.
// Other codes are returned unchanged.
func (c Code) Nationalized() Code {
	switch c {
	case Char:
		return NChar
	case VarChar:
		return NVarChar
	case LongVarChar:
		return LongNVarChar
	case Clob:
		return NClob
	default:
		return c
	}
}

// Descriptor describes an SQL type the binder can emit.
type Descriptor struct {
	Code Code
	Name string
}

// DescriptorFor returns the descriptor for a code.
func DescriptorFor(c Code) Descriptor {
	return Descriptor{Code: c, Name: c.String()}
}

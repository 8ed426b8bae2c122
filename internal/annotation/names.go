package annotation

// Qualified annotation identifiers understood by the binding core.
const (
	Entity     = "Entity"
	Table      = "Table"
	RowID      = "RowId"
	Access     = "Access"
	Embeddable = "Embeddable"

	ID             = "Id"
	Version        = "Version"
	Source         = "Source"
	Basic          = "Basic"
	Column         = "Column"
	Columns        = "Columns"
	Generated      = "Generated"
	GeneratedValue = "GeneratedValue"
	OptimisticLock = "OptimisticLock"

	SequenceGenerator  = "SequenceGenerator"
	SequenceGenerators = "SequenceGenerators"
	TableGenerator     = "TableGenerator"
	TableGenerators    = "TableGenerators"
	GenericGenerator   = "GenericGenerator"
	GenericGenerators  = "GenericGenerators"
	Parameter          = "Parameter"

	ColumnTransformer  = "ColumnTransformer"
	ColumnTransformers = "ColumnTransformers"

	Temporal     = "Temporal"
	Lob          = "Lob"
	Enumerated   = "Enumerated"
	Nationalized = "Nationalized"

	Embedded   = "Embedded"
	ManyToOne  = "ManyToOne"
	OneToOne   = "OneToOne"
	OneToMany  = "OneToMany"
	ManyToMany = "ManyToMany"
)

// ValueKey is the conventional key of a container annotation's array.
const ValueKey = "value"

package types

// Standard table names, one per entity type.
const (
	TableOffices   = "offices"
	TableEmployees = "employees"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	TableOffices,
	TableEmployees,
}

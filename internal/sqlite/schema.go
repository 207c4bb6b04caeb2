package sqlite

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/officedesk/pkg/types"
)

// tableDDL creates the record table for one entity type. seq keeps insertion
// order; record_id is the id the store assigns and callers see. Records are
// stored as JSON bodies so one table shape serves every entity type.
const tableDDL = `CREATE TABLE IF NOT EXISTS %s (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    record_id INTEGER NOT NULL UNIQUE,
    body TEXT NOT NULL
);`

// knownTable guards table names before they are spliced into SQL.
func knownTable(name string) bool {
	return slices.Contains(types.StandardTableNames, name)
}

func createTableSQL(name string) string {
	return fmt.Sprintf(tableDDL, name)
}

package db

type Table string

const tableMainName Table = "solutions"

type tableSchema struct {
	name  Table
	sql   string
	index string
}

// schemaMain is the schema for the solutions table.
var schemaMain = tableSchema{
	name:  tableMainName,
	sql:   tableMainSchema,
	index: tableMainIndex,
}

const (
	tableMainSchema = `
    CREATE TABLE IF NOT EXISTS solutions (
        id          INTEGER   PRIMARY KEY AUTOINCREMENT,
        url         TEXT      NOT NULL UNIQUE,
        title       TEXT      NOT NULL DEFAULT '',
        solution    TEXT      NOT NULL DEFAULT '',
        added_date  TIMESTAMP NOT NULL,
        use_count   INTEGER   NOT NULL DEFAULT 0 CHECK (use_count >= 0)
    );`

	tableMainIndex = `
    CREATE INDEX IF NOT EXISTS idx_solutions_use_count
    ON solutions(use_count DESC, id ASC);`
)

// tablesAndSchema returns all tables and their schema.
func tablesAndSchema() []tableSchema {
	return []tableSchema{schemaMain}
}

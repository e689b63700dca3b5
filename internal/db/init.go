package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Init creates the required tables and indexes if they do not exist.
func (r *SQLite) Init(ctx context.Context) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, s := range tablesAndSchema() {
			if err := r.tableCreate(ctx, tx, s.name, s.sql); err != nil {
				return fmt.Errorf("creating %q table: %w", s.name, err)
			}

			if s.index != "" {
				if _, err := tx.ExecContext(ctx, s.index); err != nil {
					return fmt.Errorf("creating %q index: %w", s.name, err)
				}
			}
		}

		return nil
	})
}

// tableCreate creates a new table with the specified name in the SQLite database.
func (r *SQLite) tableCreate(ctx context.Context, tx *sqlx.Tx, name Table, schema string) error {
	slog.Debug("creating table", "name", name)

	_, err := tx.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("error creating table: %w", err)
	}

	return nil
}

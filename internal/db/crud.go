package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/mateconpizza/dejavu/internal/solution"
)

type Row = solution.Solution

const selectColumns = `
    SELECT
      id, url, title, solution, added_date, use_count
    FROM
      solutions`

// ordering shared by every listing: most used first, then insertion order.
const orderByUse = `
    ORDER BY
      use_count DESC,
      id ASC`

// matchClause returns the substring filter over title and solution. Terms are
// literal, wildcard characters have no special meaning.
func matchClause(caseSensitive bool) string {
	if caseSensitive {
		return `
    WHERE
      instr(title, ?) > 0
      OR instr(solution, ?) > 0`
	}

	// lower() folds ASCII only
	return `
    WHERE
      instr(lower(title), lower(?)) > 0
      OR instr(lower(solution), lower(?)) > 0`
}

// Add saves a new solution. A URL that is already stored yields a Duplicate
// outcome with the stored record, and nothing is modified.
func (r *SQLite) Add(ctx context.Context, u, title, body string) (*solution.AddResult, error) {
	if err := r.ensureOpen(); err != nil {
		return nil, err
	}

	s := solution.New(u, title, body)
	if err := solution.Validate(s); err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}

	var res *solution.AddResult
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		inserted, err := insertRecord(ctx, tx, s)
		if err != nil {
			return err
		}

		if inserted {
			res = &solution.AddResult{Outcome: solution.Added, Record: s}
			return nil
		}

		existing, err := byURLTx(ctx, tx, s.URL)
		if err != nil {
			return err
		}
		res = &solution.AddResult{Outcome: solution.Duplicate, Record: existing}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, s.URL)
	}

	slog.Debug("add solution", "url", s.URL, "outcome", res.Outcome)

	return res, nil
}

// Find returns the solutions whose title or body contains term, most used
// first. Every matched record has its use count incremented in the same
// transaction, and the returned records carry the committed counts.
func (r *SQLite) Find(ctx context.Context, term string) ([]Row, error) {
	if err := r.ensureOpen(); err != nil {
		return nil, err
	}

	q := selectColumns + matchClause(r.Cfg.CaseSensitive) + orderByUse

	rows := make([]Row, 0)
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.SelectContext(ctx, &rows, q, term, term); err != nil {
			return fmt.Errorf("%w: %w", ErrRecordScan, err)
		}

		return incrementUseCount(ctx, tx, rows)
	})
	if err != nil {
		return nil, fmt.Errorf("find %q: %w", term, err)
	}

	for i := range rows {
		rows[i].UseCount++
	}

	slog.Debug("find solutions", "term", term, "found", len(rows))

	return rows, nil
}

// ListAll returns every solution, most used first.
func (r *SQLite) ListAll(ctx context.Context) ([]Row, error) {
	if err := r.ensureOpen(); err != nil {
		return nil, err
	}

	rows := make([]Row, 0)
	if err := r.DB.SelectContext(ctx, &rows, selectColumns+orderByUse); err != nil {
		return nil, fmt.Errorf("list all: %w: %w", ErrRecordScan, err)
	}

	slog.Debug("list solutions", "count", len(rows))

	return rows, nil
}

// Count returns the number of stored solutions.
func (r *SQLite) Count(ctx context.Context) (int, error) {
	if err := r.ensureOpen(); err != nil {
		return 0, err
	}

	var n int
	if err := r.DB.GetContext(ctx, &n, "SELECT COUNT(*) FROM solutions"); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}

	return n, nil
}

// byURLTx returns the solution saved under the given URL inside a
// transaction.
func byURLTx(ctx context.Context, tx *sqlx.Tx, u string) (*Row, error) {
	var s Row
	if err := tx.GetContext(ctx, &s, selectColumns+" WHERE url = ?", u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w with url: %s", ErrRecordNotFound, u)
		}

		return nil, fmt.Errorf("%w: %w", ErrRecordScan, err)
	}

	return &s, nil
}

// insertRecord inserts a new record and sets its ID. It reports false when
// the URL already exists.
func insertRecord(ctx context.Context, tx *sqlx.Tx, s *Row) (bool, error) {
	res, err := tx.NamedExecContext(ctx, `
    INSERT INTO solutions (
      url, title, solution, added_date, use_count
    )
    VALUES
      (:url, :title, :solution, :added_date, 0)
    ON CONFLICT(url) DO NOTHING`, s)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRecordInsert, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRecordInsert, err)
	}
	if n == 0 {
		return false, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRecordInsert, err)
	}

	s.ID = int(id)
	s.UseCount = 0

	return true, nil
}

// incrementUseCount adds one to the use count of every given record.
func incrementUseCount(ctx context.Context, tx *sqlx.Tx, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	ids := make([]int, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	q, args, err := sqlx.In("UPDATE solutions SET use_count = use_count + 1 WHERE id IN (?)", ids)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	res, err := tx.ExecContext(ctx, tx.Rebind(q), args...)
	if err != nil {
		return fmt.Errorf("increment use count: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && int(n) != len(ids) {
		return fmt.Errorf("increment use count: updated %d of %d records", n, len(ids))
	}

	return nil
}

// withTx executes a function within a transaction.
func (r *SQLite) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("rollback", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("fn transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommit, err)
	}

	return nil
}

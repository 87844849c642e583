// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

var (
	// ErrUnavailable wraps connection failures.
	ErrUnavailable = errors.New("database unavailable")
	// ErrConstraint wraps uniqueness and other constraint violations.
	ErrConstraint = errors.New("constraint violation")
)

// Store is a dialect-neutral handle over the active relational engine.
// Queries use ? placeholders regardless of backend; they are rebound to
// $1..$n for Postgres at execution time.
type Store struct {
	db           *sql.DB
	databaseType string
}

// Open connects to the configured engine and verifies the connection.
// For sqlite, dsn is a file path; for postgres, a connection URL.
func Open(databaseType, dsn string) (*Store, error) {
	var driver string
	switch databaseType {
	case TypePostgres:
		driver = "postgres"
	case TypeSQLite:
		driver = "sqlite"
		dsn = sqliteDSN(dsn)
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &Store{db: conn, databaseType: databaseType}, nil
}

// sqliteDSN turns a plain file path into a DSN with the pragmas the server
// relies on: WAL so readers don't block the writer, and a busy timeout so
// concurrent claim transactions queue instead of failing with SQLITE_BUSY.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") || strings.HasPrefix(path, "file:") {
		return path
	}
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// Type reports the active database type (sqlite or postgres).
func (s *Store) Type() string {
	return s.databaseType
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Exec runs a write statement and returns the number of rows affected.
func (s *Store) Exec(query string, args ...any) (int64, error) {
	return execOn(s.db, s.databaseType, query, args...)
}

// QueryOne runs a query and returns the first row as a column-name-keyed
// map, or nil if no row matched.
func (s *Store) QueryOne(query string, args ...any) (map[string]any, error) {
	return queryOneOn(s.db, s.databaseType, query, args...)
}

// QueryAll runs a query and returns every row as a column-name-keyed map.
func (s *Store) QueryAll(query string, args ...any) ([]map[string]any, error) {
	return queryAllOn(s.db, s.databaseType, query, args...)
}

// Tx exposes the same query surface inside a transaction.
type Tx struct {
	tx           *sql.Tx
	databaseType string
}

func (t *Tx) Exec(query string, args ...any) (int64, error) {
	return execOn(t.tx, t.databaseType, query, args...)
}

func (t *Tx) QueryOne(query string, args ...any) (map[string]any, error) {
	return queryOneOn(t.tx, t.databaseType, query, args...)
}

func (t *Tx) QueryAll(query string, args ...any) ([]map[string]any, error) {
	return queryAllOn(t.tx, t.databaseType, query, args...)
}

// InTx runs fn inside a transaction, committing on nil and rolling back on
// error or panic. The transaction is released on every exit path.
func (s *Store) InTx(fn func(tx *Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&Tx{tx: tx, databaseType: s.databaseType}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", wrapDriverErr(err))
	}
	return nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
}

func execOn(q querier, databaseType, query string, args ...any) (int64, error) {
	res, err := q.Exec(rebind(databaseType, query), args...)
	if err != nil {
		return 0, fmt.Errorf("exec failed: %w", wrapDriverErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func queryOneOn(q querier, databaseType, query string, args ...any) (map[string]any, error) {
	rows, err := queryAllOn(q, databaseType, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func queryAllOn(q querier, databaseType, query string, args ...any) ([]map[string]any, error) {
	rows, err := q.Query(rebind(databaseType, query), args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", wrapDriverErr(err))
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}

	var out []map[string]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = normalize(values[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", wrapDriverErr(err))
	}
	return out, nil
}

// rebind converts neutral ? placeholders to $1..$n for Postgres. Literal
// question marks inside single-quoted strings are left alone.
func rebind(databaseType, query string) string {
	if databaseType != TypePostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inString := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inString = !inString
			b.WriteByte(c)
		case c == '?' && !inString:
			n++
			fmt.Fprintf(&b, "$%d", n)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// normalize flattens driver-specific scan values into the common forms the
// rest of the app works with: strings, int64, float64, bool, or nil.
func normalize(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case int:
		return int64(val)
	case int32:
		return int64(val)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	default:
		return v
	}
}

// wrapDriverErr maps engine-native errors onto the store's taxonomy so
// callers never branch on engine identity.
func wrapDriverErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code.Class() == "23" { // integrity_constraint_violation
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		return err
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		if sqErr.Code()&0xff == 19 { // SQLITE_CONSTRAINT and extended codes
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		return err
	}

	return err
}

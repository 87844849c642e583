// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(s *Store) error {
	ddl := schema
	if s.Type() == TypeSQLite {
		ddl = strings.ReplaceAll(ddl, "SERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT")
	}

	for _, stmt := range strings.Split(ddl, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

const schema = `
-- Players
CREATE TABLE IF NOT EXISTS players (
    id SERIAL PRIMARY KEY,
    name TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    score INTEGER NOT NULL DEFAULT 0
);

-- Codes
CREATE TABLE IF NOT EXISTS codes (
    id SERIAL PRIMARY KEY,
    code TEXT UNIQUE NOT NULL,
    used_by_player_id INTEGER,
    used_at TEXT
);

-- Scans
CREATE TABLE IF NOT EXISTS scans (
    id SERIAL PRIMARY KEY,
    player_id INTEGER NOT NULL,
    code_id INTEGER NOT NULL,
    scanned_at TEXT NOT NULL
);
`

// ResetSchema drops all tables. Used only by the admin reset, which
// recreates the schema and reloads the codes immediately after.
func ResetSchema(s *Store) error {
	for _, table := range []string{"scans", "codes", "players"} {
		if _, err := s.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}
	return nil
}

// BootstrapCodes loads codes from the CSV file if and only if the codes
// table is currently empty. Returns the number of codes inserted. Once the
// table is non-empty this is a no-op, even if the file has new entries -
// codes are a fixed, pre-provisioned set.
func BootstrapCodes(s *Store, path string) (int, error) {
	row, err := s.QueryOne(`SELECT COUNT(*) AS c FROM codes`)
	if err != nil {
		return 0, fmt.Errorf("failed to count codes: %w", err)
	}
	if count, _ := row["c"].(int64); count > 0 {
		return 0, nil
	}

	codes, err := ReadCodesFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	insert := `INSERT INTO codes (code) VALUES (?) ON CONFLICT DO NOTHING`
	if s.Type() == TypeSQLite {
		insert = `INSERT OR IGNORE INTO codes (code) VALUES (?)`
	}

	loaded := 0
	for _, code := range codes {
		n, err := s.Exec(insert, code)
		if err != nil {
			return loaded, fmt.Errorf("failed to insert code: %w", err)
		}
		loaded += int(n)
	}
	return loaded, nil
}

// ReadCodesFile reads candidate code strings from a CSV file with a "code"
// column, trimming whitespace and discarding blank entries. Shared by the
// bootstrap loader and the QR generator.
func ReadCodesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open codes file: %w", err)
	}
	defer f.Close()
	return readCodes(f)
}

func readCodes(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read codes header: %w", err)
	}

	codeCol := 0
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "code") {
			codeCol = i
			break
		}
	}

	var codes []string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read codes row: %w", err)
		}
		if codeCol >= len(record) {
			continue
		}
		code := strings.TrimSpace(record[codeCol])
		if code == "" {
			continue
		}
		codes = append(codes, code)
	}
	return codes, nil
}

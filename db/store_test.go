// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(TypeSQLite, filepath.Join(t.TempDir(), "store_test.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := CreateSchema(store); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return store
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open("oracle", "whatever"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestRebind(t *testing.T) {
	cases := []struct {
		databaseType string
		in, want     string
	}{
		{TypeSQLite, "SELECT * FROM codes WHERE code = ?", "SELECT * FROM codes WHERE code = ?"},
		{TypePostgres, "SELECT * FROM codes WHERE code = ?", "SELECT * FROM codes WHERE code = $1"},
		{TypePostgres, "UPDATE codes SET used_by_player_id = ?, used_at = ? WHERE id = ?",
			"UPDATE codes SET used_by_player_id = $1, used_at = $2 WHERE id = $3"},
		{TypePostgres, "SELECT '?' AS literal, id FROM codes WHERE code = ?",
			"SELECT '?' AS literal, id FROM codes WHERE code = $1"},
	}
	for _, tc := range cases {
		if got := rebind(tc.databaseType, tc.in); got != tc.want {
			t.Errorf("rebind(%s, %q) = %q, want %q", tc.databaseType, tc.in, got, tc.want)
		}
	}
}

func TestExecAndQuery(t *testing.T) {
	store := openTestStore(t)

	n, err := store.Exec(`INSERT INTO codes (code) VALUES (?)`, "X1")
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 row affected, got %d", n)
	}

	row, err := store.QueryOne(`SELECT id, code, used_by_player_id FROM codes WHERE code = ?`, "X1")
	if err != nil {
		t.Fatalf("QueryOne failed: %v", err)
	}
	if row == nil {
		t.Fatal("expected a row")
	}
	if code, ok := row["code"].(string); !ok || code != "X1" {
		t.Errorf("expected code X1 as string, got %T %v", row["code"], row["code"])
	}
	if _, ok := row["id"].(int64); !ok {
		t.Errorf("expected id normalized to int64, got %T", row["id"])
	}
	if row["used_by_player_id"] != nil {
		t.Errorf("expected nil claim column, got %v", row["used_by_player_id"])
	}
}

func TestQueryOne_NoRowsIsNil(t *testing.T) {
	store := openTestStore(t)

	row, err := store.QueryOne(`SELECT id FROM codes WHERE code = ?`, "missing")
	if err != nil {
		t.Fatalf("QueryOne failed: %v", err)
	}
	if row != nil {
		t.Errorf("expected nil for no rows, got %v", row)
	}
}

func TestQueryAll(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.Exec(`INSERT INTO codes (code) VALUES (?)`, fmt.Sprintf("C%d", i)); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := store.QueryAll(`SELECT code FROM codes ORDER BY code`)
	if err != nil {
		t.Fatalf("QueryAll failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0]["code"] != "C0" || rows[2]["code"] != "C2" {
		t.Errorf("unexpected ordering: %v", rows)
	}
}

func TestConstraintViolation(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Exec(`INSERT INTO players (name, password_hash) VALUES (?, ?)`, "alice", "h"); err != nil {
		t.Fatal(err)
	}

	_, err := store.Exec(`INSERT INTO players (name, password_hash) VALUES (?, ?)`, "alice", "h")
	if !errors.Is(err, ErrConstraint) {
		t.Errorf("expected ErrConstraint for duplicate name, got %v", err)
	}
}

func TestQueryError_NotConstraint(t *testing.T) {
	store := openTestStore(t)

	_, err := store.QueryOne(`SELECT * FROM no_such_table`)
	if err == nil {
		t.Fatal("expected error for missing table")
	}
	if errors.Is(err, ErrConstraint) {
		t.Errorf("missing table must not map to ErrConstraint: %v", err)
	}
}

func TestInTx_RollbackOnError(t *testing.T) {
	store := openTestStore(t)

	err := store.InTx(func(tx *Tx) error {
		if _, err := tx.Exec(`INSERT INTO codes (code) VALUES (?)`, "TX1"); err != nil {
			return err
		}
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected the error to propagate")
	}

	row, err := store.QueryOne(`SELECT id FROM codes WHERE code = ?`, "TX1")
	if err != nil {
		t.Fatal(err)
	}
	if row != nil {
		t.Error("insert should have been rolled back")
	}
}

func TestInTx_Commit(t *testing.T) {
	store := openTestStore(t)

	err := store.InTx(func(tx *Tx) error {
		_, err := tx.Exec(`INSERT INTO codes (code) VALUES (?)`, "TX2")
		return err
	})
	if err != nil {
		t.Fatalf("InTx failed: %v", err)
	}

	row, err := store.QueryOne(`SELECT id FROM codes WHERE code = ?`, "TX2")
	if err != nil {
		t.Fatal(err)
	}
	if row == nil {
		t.Error("committed insert should be visible")
	}
}

func TestSqliteDSN(t *testing.T) {
	dsn := sqliteDSN("bechde.db")
	if dsn != "file:bechde.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)" {
		t.Errorf("unexpected DSN: %s", dsn)
	}

	// Already-formed DSNs pass through untouched
	custom := "file:x.db?_pragma=busy_timeout(100)"
	if got := sqliteDSN(custom); got != custom {
		t.Errorf("expected passthrough, got %s", got)
	}
}

// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides the storage backend adapter and schema management.

# Dual Backend

The same application logic runs against either SQLite (default, local file)
or Postgres (hosted deploys). Store abstracts over the difference:

  - queries are written once with ? placeholders; they are rebound to $1..$n
    for Postgres at execution time
  - rows come back as column-name-keyed maps with normalized values
    ([]byte to string, small ints to int64)
  - engine-native errors are mapped to two sentinels checked with errors.Is:
    ErrConstraint (uniqueness violations) and ErrUnavailable (connection
    failures); everything else surfaces wrapped with query context

Business logic never branches on engine identity; the dialect lives entirely
in this package.

# Schema

CreateSchema initializes the three tables (players, codes, scans) and is
safe to call on every start. Primary keys use SERIAL on Postgres and
INTEGER PRIMARY KEY AUTOINCREMENT on SQLite.

BootstrapCodes loads the codes CSV exactly once: only while the codes table
is empty. Blank entries are discarded and duplicates are skipped with a
duplicate-safe insert.

# Transactions

InTx runs a unit of work in one transaction with rollback guaranteed on
every exit path. The conditional-claim discipline in the game package
depends on this plus the engine's own atomicity - no in-process locks are
involved, so multiple server instances can share one database.
*/
package db

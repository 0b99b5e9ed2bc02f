package migrations

// Go migration: MySQL reserves the `key` identifier and cannot index an
// unsized TEXT column, so the DDL differs per dialect.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateKVEntries, downCreateKVEntries)
}

func upCreateKVEntries(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "mysql":
		ddl = "CREATE TABLE IF NOT EXISTS kv_entries (\n" +
			"    `key`      VARCHAR(255) PRIMARY KEY,\n" +
			"    value      MEDIUMTEXT NOT NULL,\n" +
			"    updated_at TIMESTAMP(6) NOT NULL\n" +
			")"
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS kv_entries (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
)`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS kv_entries (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create kv_entries table: %w", err)
	}
	return nil
}

func downCreateKVEntries(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS kv_entries`)
	return err
}

package kv

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// SQLStore persists key-value entries in the kv_entries table.
type SQLStore struct {
	db      *sqlx.DB
	queries kvQueries
}

// kvQueries holds the per-driver SQL. MySQL reserves the `key` identifier
// and has no ON CONFLICT clause, so its statements differ from the
// SQLite/PostgreSQL ones, mirroring the dialect switch in the kv_entries
// migration.
type kvQueries struct {
	get    string
	upsert string
	delete string
}

func queriesFor(driver string) kvQueries {
	if driver == "mysql" {
		return kvQueries{
			get: "SELECT `key`, value, updated_at FROM kv_entries WHERE `key` = ?",
			upsert: "INSERT INTO kv_entries (`key`, value, updated_at) VALUES (?, ?, ?) " +
				"ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = VALUES(updated_at)",
			delete: "DELETE FROM kv_entries WHERE `key` = ?",
		}
	}
	return kvQueries{
		get: `SELECT key, value, updated_at FROM kv_entries WHERE key = ?`,
		upsert: `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT (key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at`,
		delete: `DELETE FROM kv_entries WHERE key = ?`,
	}
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	q := queriesFor(db.DriverName())
	// Rebind turns ? placeholders into the driver's native format
	// ($1,$2,... for PostgreSQL).
	q.get = db.Rebind(q.get)
	q.upsert = db.Rebind(q.upsert)
	q.delete = db.Rebind(q.delete)
	return &SQLStore{db: db, queries: q}
}

type entry struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	var e entry
	err := s.db.GetContext(ctx, &e, s.queries.get, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return e.Value, nil
}

// Set performs a whole-value upsert.
func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, s.queries.upsert, key, value, time.Now().UTC())
	return err
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, s.queries.delete, key)
	return err
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteKVStore persiste el store en un archivo local.
type SQLiteKVStore struct {
	db *sql.DB
}

// NewSQLiteKVStore abre (o crea) la base en path e inicializa el esquema.
func NewSQLiteKVStore(path string) (*SQLiteKVStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Una sola conexión: ":memory:" no se comparte entre conexiones.
	db.SetMaxOpenConns(1)

	store := &SQLiteKVStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteKVStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteKVStore) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *SQLiteKVStore) Set(ctx context.Context, key string, value []byte) error {
	const query = `
	INSERT INTO kv_entries (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC())
	return err
}

func (s *SQLiteKVStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key)
	return err
}

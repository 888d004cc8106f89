package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgQuerier cubre lo que usamos de *pgxpool.Pool; permite fakes en tests.
type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgKVStore struct {
	pool pgQuerier
}

func NewPgKVStore(pool pgQuerier) *PgKVStore {
	return &PgKVStore{pool: pool}
}

// EnsureSchema crea la tabla kv_entries si no existe.
func (r *PgKVStore) EnsureSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS kv_entries (
			key        TEXT PRIMARY KEY,
			value      BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`
	_, err := r.pool.Exec(ctx, query)
	return err
}

func (r *PgKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `
		SELECT value
		FROM kv_entries
		WHERE key = $1
	`
	var value []byte
	err := r.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *PgKVStore) Set(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query, key, value, time.Now().UTC())
	return err
}

func (r *PgKVStore) Remove(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_entries WHERE key = $1`
	_, err := r.pool.Exec(ctx, query, key)
	return err
}

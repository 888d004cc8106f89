package repository

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

func runKVContract(t *testing.T, store KVStore) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing key, got %v", err)
	}

	if err := store.Set(ctx, "theme", []byte("dark")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(ctx, "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "dark" {
		t.Fatalf("expected dark, got %q", got)
	}

	// last-write-wins
	if err := store.Set(ctx, "theme", []byte("light")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = store.Get(ctx, "theme")
	if string(got) != "light" {
		t.Fatalf("expected light after overwrite, got %q", got)
	}

	if err := store.Remove(ctx, "theme"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := store.Get(ctx, "theme"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
	if err := store.Remove(ctx, "theme"); err != nil {
		t.Fatalf("removing a missing key should not fail, got %v", err)
	}
}

func TestMemoryKVStoreContract(t *testing.T) {
	runKVContract(t, NewMemoryKVStore())
}

func TestMemoryKVStoreCopiesValues(t *testing.T) {
	store := NewMemoryKVStore()
	value := []byte("abc")
	_ = store.Set(context.Background(), "k", value)
	value[0] = 'z'

	got, _ := store.Get(context.Background(), "k")
	if string(got) != "abc" {
		t.Fatalf("expected stored copy to be unaffected, got %q", got)
	}
}

func TestSQLiteKVStoreContract(t *testing.T) {
	store, err := NewSQLiteKVStore(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()
	runKVContract(t, store)
}

type mockRedisKV struct {
	data    map[string][]byte
	lastTTL time.Duration
	err     error
}

func (m *mockRedisKV) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.err != nil {
		return redis.NewStringResult("", m.err)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (m *mockRedisKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if m.err != nil {
		return redis.NewStatusResult("", m.err)
	}
	m.lastTTL = expiration
	m.data[key] = append([]byte(nil), value.([]byte)...)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockRedisKV) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if m.err != nil {
		return redis.NewIntResult(0, m.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisKVStoreContract(t *testing.T) {
	mock := &mockRedisKV{data: make(map[string][]byte)}
	store := &RedisKVStore{client: mock, prefix: "arogya:kv:"}
	runKVContract(t, store)

	_ = store.Set(context.Background(), "journalEntries", []byte("[]"))
	if _, ok := mock.data["arogya:kv:journalEntries"]; !ok {
		t.Fatalf("expected prefixed key, got %v", mock.data)
	}
	if mock.lastTTL != 0 {
		t.Fatalf("expected no expiration, got %v", mock.lastTTL)
	}
}

func TestRedisKVStorePropagatesErrors(t *testing.T) {
	store := &RedisKVStore{client: &mockRedisKV{err: errors.New("redis down")}, prefix: "p:"}
	if _, err := store.Get(context.Background(), "k"); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected redis error, got %v", err)
	}
}

type fakeRow struct {
	value []byte
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.value
	return nil
}

type fakePgPool struct {
	rows     map[string][]byte
	lastSQL  string
	queryErr error
}

func (f *fakePgPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL = sql
	switch len(args) {
	case 3:
		f.rows[args[0].(string)] = args[1].([]byte)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case 1:
		delete(f.rows, args[0].(string))
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func (f *fakePgPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL = sql
	if f.queryErr != nil {
		return fakeRow{err: f.queryErr}
	}
	v, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func TestPgKVStoreContract(t *testing.T) {
	pool := &fakePgPool{rows: make(map[string][]byte)}
	store := NewPgKVStore(pool)
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if !bytes.Contains([]byte(pool.lastSQL), []byte("kv_entries")) {
		t.Fatalf("expected schema statement for kv_entries, got %q", pool.lastSQL)
	}
	runKVContract(t, store)
}

func TestPgKVStorePropagatesQueryErrors(t *testing.T) {
	store := NewPgKVStore(&fakePgPool{rows: map[string][]byte{}, queryErr: errors.New("conn reset")})
	if _, err := store.Get(context.Background(), "k"); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected query error, got %v", err)
	}
}

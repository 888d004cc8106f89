package repository

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound se devuelve cuando la clave no existe en el store.
var ErrNotFound = errors.New("key not found")

// KVStore abstrae el almacenamiento clave-valor (el "local storage" del cliente).
// Las escrituras son last-write-wins, sin transacciones.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// MemoryKVStore es un KVStore en memoria, usado en tests y como driver por defecto.
type MemoryKVStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{items: make(map[string][]byte)}
}

func (s *MemoryKVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryKVStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.items[key] = v
	return nil
}

func (s *MemoryKVStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

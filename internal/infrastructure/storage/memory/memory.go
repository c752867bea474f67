package memory

import (
	"bytes"
	"context"
	"sync"

	"accountkeeper/internal/infrastructure/storage"
)

// Storage - временное in-memory хранилище, используется при недоступности SQLite и в тестах
type Storage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func New() *Storage {
	return &Storage{
		blobs: make(map[string][]byte),
	}
}

func (m *Storage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.blobs[key]
	if !exists {
		return nil, storage.ErrNotFound
	}
	return bytes.Clone(value), nil
}

func (m *Storage) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = bytes.Clone(value)
	return nil
}

func (m *Storage) Close() error {
	return nil
}

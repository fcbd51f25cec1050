package cache

import (
	"context"
	"sync"

	"github.com/postsync/cli/entity"
)

type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]entity.Blob
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]entity.Blob)}
}

func (m *MemoryStore) Get(_ context.Context, sha string) (*entity.Blob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.blobs[sha]
	if !ok {
		return nil, ErrMiss
	}
	return &blob, nil
}

func (m *MemoryStore) Put(_ context.Context, sha string, blob *entity.Blob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[sha] = *blob
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blobs)
}

// NoopStore never holds anything.
type NoopStore struct{}

func (NoopStore) Get(context.Context, string) (*entity.Blob, error) {
	return nil, ErrMiss
}

func (NoopStore) Put(context.Context, string, *entity.Blob) error {
	return nil
}

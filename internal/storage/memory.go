package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/SpinVault_Go/internal/domain"
)

// MemoryStore keeps state in process memory. Used by tests and the
// "memory" driver; nothing survives a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]map[string]string
	closed bool
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, ns, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, fmt.Errorf("%w: %s", domain.ErrStorage, ErrMsgStoreClosed)
	}
	v, ok := m.data[ns][key]
	return v, ok, nil
}

func (m *MemoryStore) Set(ctx context.Context, ns, key, value string) error {
	return m.SetMany(ctx, ns, map[string]string{key: value})
}

func (m *MemoryStore) SetMany(_ context.Context, ns string, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("%w: %s", domain.ErrStorage, ErrMsgStoreClosed)
	}
	bucket := m.bucketLocked(ns)
	for k, v := range values {
		bucket[k] = v
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, ns, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("%w: %s", domain.ErrStorage, ErrMsgStoreClosed)
	}
	delete(m.data[ns], key)
	return nil
}

func (m *MemoryStore) Register(_ context.Context, ns string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("%w: %s", domain.ErrStorage, ErrMsgStoreClosed)
	}
	m.bucketLocked(ns)
	return nil
}

func (m *MemoryStore) Exists(_ context.Context, ns string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[ns]
	return ok, nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *MemoryStore) bucketLocked(ns string) map[string]string {
	bucket, ok := m.data[ns]
	if !ok {
		bucket = make(map[string]string)
		m.data[ns] = bucket
	}
	return bucket
}

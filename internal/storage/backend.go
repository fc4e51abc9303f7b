package storage

import "sync"

// Backend is the raw byte-level store underneath the adapter.
type Backend interface {
	// Load returns the blob stored under key; ok is false when absent.
	Load(key string) (value []byte, ok bool, err error)
	// Store writes the blob under key, replacing any prior value.
	Store(key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(key string) error
}

// MemoryBackend keeps blobs in a map. It backs tests and serves as the
// degraded fallback when no durable storage is available.
type MemoryBackend struct {
	mu    sync.Mutex
	items map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{items: make(map[string][]byte)}
}

func (m *MemoryBackend) Load(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.items[key]
	return value, ok, nil
}

func (m *MemoryBackend) Store(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryBackend) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Package storage provides the typed key-value adapter every store persists
// through. Values are whole-object JSON blobs; reads fall back to a default
// on absence or parse failure and writes are logged but never surfaced, so
// callers can treat persistence as best-effort.
package storage

import (
	"encoding/json"
	"log"
)

// Keys of every persisted blob.
const (
	KeyUser           = "classroom-user"
	KeyLoginTimestamp = "classroom-login-timestamp"
	KeyChatrooms      = "classroom-chatrooms"
	KeyPosts          = "classroom-posts"
)

var knownKeys = []string{KeyUser, KeyLoginTimestamp, KeyChatrooms, KeyPosts}

// Adapter serializes typed values to a Backend. A nil backend degrades to an
// in-memory map so the stores keep working without durable storage.
type Adapter struct {
	backend Backend
}

// NewAdapter creates an adapter over the given backend.
func NewAdapter(b Backend) *Adapter {
	if b == nil {
		b = NewMemoryBackend()
	}
	return &Adapter{backend: b}
}

// Get returns the value stored under key, or def when the key is absent or
// the stored blob cannot be parsed. It never returns an error.
func Get[T any](a *Adapter, key string, def T) T {
	raw, ok, err := a.backend.Load(key)
	if err != nil {
		log.Printf("ERROR: Failed to read storage key %s: %v", key, err)
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Printf("ERROR: Failed to parse storage key %s: %v", key, err)
		return def
	}
	return v
}

// Set serializes value under key. Failures (e.g. storage quota) are logged
// and swallowed; the in-memory state stays authoritative for the session.
func Set[T any](a *Adapter, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("ERROR: Failed to serialize storage key %s: %v", key, err)
		return
	}
	if err := a.backend.Store(key, raw); err != nil {
		log.Printf("ERROR: Failed to write storage key %s: %v", key, err)
	}
}

// Remove deletes key. Missing keys and delete failures are not surfaced.
func (a *Adapter) Remove(key string) {
	if err := a.backend.Delete(key); err != nil {
		log.Printf("ERROR: Failed to remove storage key %s: %v", key, err)
	}
}

// ClearAll removes every known key.
func (a *Adapter) ClearAll() {
	for _, key := range knownKeys {
		a.Remove(key)
	}
}

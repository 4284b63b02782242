package store

import (
	"encoding/json"
	"log"
	"sync"
)

// Namespaces of the persisted client state.
const (
	CartNamespace     = "cart-storage"
	WishlistNamespace = "wishlist-storage"
)

// StateStorage is durable, namespaced client state. Load returns nil data when nothing was
// stored yet.
type StateStorage interface {
	Load(namespace string) ([]byte, error)
	Save(namespace string, data []byte) error
}

// persist writes v under namespace. Failures are logged only; callers never see them.
func persist(storage StateStorage, namespace string, v any) {
	if storage == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to encode %s: %v", namespace, err)
		return
	}
	if err := storage.Save(namespace, data); err != nil {
		log.Printf("Failed to persist %s: %v", namespace, err)
	}
}

// hydrate decodes the stored value of namespace into v. Missing or unreadable state leaves v
// untouched.
func hydrate(storage StateStorage, namespace string, v any) {
	if storage == nil {
		return
	}
	data, err := storage.Load(namespace)
	if err != nil {
		log.Printf("Failed to load %s: %v", namespace, err)
		return
	}
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Discarding unreadable %s: %v", namespace, err)
	}
}

// MemoryStorage is a StateStorage kept in process memory.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

// Load returns a copy of the bytes stored under namespace.
func (m *MemoryStorage) Load(namespace string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.data[namespace]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), d...), nil
}

// Save stores a copy of data under namespace.
func (m *MemoryStorage) Save(namespace string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[namespace] = append([]byte(nil), data...)
	return nil
}

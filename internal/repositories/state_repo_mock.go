package repositories

import "sync"

type stateKey struct {
	clientID  string
	namespace string
}

// MockStateRepository is an in-memory implementation of StateRepository.
type MockStateRepository struct {
	states map[stateKey][]byte
	mu     sync.RWMutex
}

// NewMockStateRepository creates a new instance of MockStateRepository.
func NewMockStateRepository() *MockStateRepository {
	return &MockStateRepository{states: make(map[stateKey][]byte)}
}

// Load returns a copy of the stored blob, or nil.
func (r *MockStateRepository) Load(clientID, namespace string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.states[stateKey{clientID, namespace}]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

// Save stores a copy of data.
func (r *MockStateRepository) Save(clientID, namespace string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[stateKey{clientID, namespace}] = append([]byte(nil), data...)
	return nil
}

// Delete drops every namespace of clientID.
func (r *MockStateRepository) Delete(clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k := range r.states {
		if k.clientID == clientID {
			delete(r.states, k)
		}
	}
	return nil
}

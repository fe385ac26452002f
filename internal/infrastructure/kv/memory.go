package kv

import (
	"context"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore implementa Store en memoria. Pensado para tests y para correr
// la demo sin dejar rastro en disco.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore crea el almacén vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get lee el blob de una clave.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// SetAll aplica todas las entradas bajo el mismo lock (flush atómico).
func (s *MemoryStore) SetAll(ctx context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range entries {
		if value == nil {
			delete(s.data, key)
			continue
		}
		stored := make([]byte, len(value))
		copy(stored, value)
		s.data[key] = stored
	}
	return nil
}

// Put escribe una sola clave; útil en tests para inyectar blobs corruptos.
func (s *MemoryStore) Put(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Close no hace nada.
func (s *MemoryStore) Close() error {
	return nil
}

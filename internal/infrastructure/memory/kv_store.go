// Package memory implementa los puertos de repositorio en memoria (tests, backend simulado,
// almacenamiento de sesión no durable).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/panel-minorista/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore almacenamiento clave-valor en memoria, seguro para uso concurrente.
type KeyValueStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKeyValueStore construye un almacenamiento vacío.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{data: make(map[string]string)}
}

func (s *KeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *KeyValueStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *KeyValueStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Package theme gestiona la preferencia de tema del panel persistida en el almacenamiento clave-valor.
package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
)

// Theme preferencia de tema.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

// Default tema usado cuando no hay preferencia guardada.
const Default = System

func (t Theme) Valid() bool {
	return t == Light || t == Dark || t == System
}

// Resolve tema efectivo: System se traduce según la preferencia del sistema.
func (t Theme) Resolve(systemDark bool) Theme {
	if t != System {
		return t
	}
	if systemDark {
		return Dark
	}
	return Light
}

// Service lee y guarda la preferencia bajo repository.KeyTheme.
type Service struct {
	storage repository.KeyValueStore

	mu      sync.RWMutex
	current Theme
	loaded  bool
}

func NewService(storage repository.KeyValueStore) *Service {
	return &Service{storage: storage, current: Default}
}

// Get devuelve la preferencia guardada; un valor desconocido o ausente equivale a Default.
func (s *Service) Get(ctx context.Context) (Theme, error) {
	s.mu.RLock()
	if s.loaded {
		t := s.current
		s.mu.RUnlock()
		return t, nil
	}
	s.mu.RUnlock()

	v, ok, err := s.storage.Get(ctx, repository.KeyTheme)
	if err != nil {
		return Default, err
	}
	t := Default
	if ok && Theme(v).Valid() {
		t = Theme(v)
	}
	s.mu.Lock()
	s.current, s.loaded = t, true
	s.mu.Unlock()
	return t, nil
}

// Set persiste la preferencia.
func (s *Service) Set(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return domain.NewError(domain.KindValidation, fmt.Sprintf("tema inválido: %q", t), domain.ErrInvalidInput)
	}
	if err := s.storage.Set(ctx, repository.KeyTheme, string(t)); err != nil {
		return err
	}
	s.mu.Lock()
	s.current, s.loaded = t, true
	s.mu.Unlock()
	return nil
}

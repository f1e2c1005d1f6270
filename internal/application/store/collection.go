// Package store mantiene en memoria las colecciones del panel (productos, ventas, compras)
// con su estado de carga y error, y fusiona en local las respuestas de las mutaciones.
package store

import (
	"context"
	"sync"

	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/pkg/logger"
)

// Fetcher obtiene la colección completa del servidor.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Collection colección genérica con flag de carga (inicialmente true) y error (inicialmente vacío).
// Los fallos de carga quedan en Error(); nunca se devuelven al llamador.
type Collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	loading bool
	err     string

	fetch      Fetcher[T]
	idOf       func(T) string
	clone      func(T) T
	loadErrMsg string
	log        *logger.Logger

	mountOnce sync.Once

	subMu  sync.Mutex
	subs   map[int]func()
	nextID int
}

// NewCollection construye la colección. loadErrMsg es el mensaje usado cuando el fallo no trae uno propio.
func NewCollection[T any](fetch Fetcher[T], idOf func(T) string, clone func(T) T, loadErrMsg string, log *logger.Logger) *Collection[T] {
	if log == nil {
		log = logger.Nop()
	}
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Collection[T]{
		loading:    true,
		fetch:      fetch,
		idOf:       idOf,
		clone:      clone,
		loadErrMsg: loadErrMsg,
		log:        log,
		subs:       make(map[int]func()),
	}
}

// Mount ejecuta la carga inicial una sola vez; llamadas posteriores no hacen nada.
func (c *Collection[T]) Mount(ctx context.Context) {
	c.mountOnce.Do(func() { c.Refetch(ctx) })
}

// Refetch vuelve a cargar la colección y la reemplaza por completo (sin fusionar).
func (c *Collection[T]) Refetch(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.err = ""
	c.mu.Unlock()
	c.notify()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	if err != nil {
		c.err = c.message(err)
		c.log.Warn().Err(err).Msg(c.loadErrMsg)
	} else {
		c.items = c.copyOf(items)
	}
	c.loading = false
	c.mu.Unlock()
	c.notify()
}

func (c *Collection[T]) message(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return c.loadErrMsg
}

// Items copia de la colección actual.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyOf(c.items)
}

// Find busca por id.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if c.idOf(it) == id {
			return c.clone(it), true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Error mensaje del último fallo de carga, vacío si no hubo.
func (c *Collection[T]) Error() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Subscribe registra fn para cada cambio de estado. Devuelve la función para cancelar.
func (c *Collection[T]) Subscribe(fn func()) (cancel func()) {
	c.subMu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.subMu.Unlock()
	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

func (c *Collection[T]) notify() {
	c.subMu.Lock()
	fns := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// append agrega v al final (orden de llegada de las respuestas).
func (c *Collection[T]) append(v T) {
	c.mu.Lock()
	c.items = append(c.items, c.clone(v))
	c.mu.Unlock()
	c.notify()
}

// replace sustituye el registro con el mismo id; el resto no se toca.
func (c *Collection[T]) replace(id string, v T) {
	c.mu.Lock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = c.clone(v)
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}

// remove filtra por id; si no existe la colección queda igual.
func (c *Collection[T]) remove(id string) {
	c.mu.Lock()
	out := c.items[:0:0]
	for _, it := range c.items {
		if c.idOf(it) != id {
			out = append(out, it)
		}
	}
	c.items = out
	c.mu.Unlock()
	c.notify()
}

func (c *Collection[T]) copyOf(src []T) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = c.clone(v)
	}
	return out
}

// mutationError normaliza el fallo de una mutación para el llamador.
func mutationError(err error, fallback string) error {
	return domain.Normalize(err, fallback)
}

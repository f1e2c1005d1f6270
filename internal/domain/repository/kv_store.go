package repository

import "context"

// Claves fijas del almacenamiento durable.
const (
	KeyToken = "token"
	KeyTheme = "vite-ui-theme"
)

// KeyValueStore almacenamiento clave-valor durable (equivalente a localStorage).
// Get devuelve ok=false si la clave no existe; Delete de una clave ausente no es error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

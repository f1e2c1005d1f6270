package auth

import (
	"context"

	"github.com/jhoicas/panel-minorista/internal/domain"
)

type sessionKey struct{}

// WithSession adjunta la sesión al contexto.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext recupera la sesión; ErrOutsideProvider si el contexto no la tiene.
func FromContext(ctx context.Context) (*Session, error) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	if !ok || s == nil {
		return nil, domain.ErrOutsideProvider
	}
	return s, nil
}

// MustFromContext como FromContext pero entra en pánico: usarla fuera de un contexto con sesión
// es un error de programación.
func MustFromContext(ctx context.Context) *Session {
	s, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return s
}

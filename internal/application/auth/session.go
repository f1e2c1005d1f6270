package auth

import (
	"context"
	"sync"

	"github.com/jhoicas/panel-minorista/internal/application/ports"
	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
	"github.com/jhoicas/panel-minorista/pkg/logger"
)

// State estado de la sesión.
type State int

const (
	StateInitializing State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session usuario autenticado del panel más el flag de carga de la resolución de auth.
// Transiciones válidas: Initializing → Unauthenticated | Authenticated,
// Unauthenticated → Authenticated (Login), Authenticated → Unauthenticated (Logout).
type Session struct {
	client  ports.APIClient
	storage repository.KeyValueStore
	log     *logger.Logger

	mu       sync.RWMutex
	user     *entity.User
	loading  bool
	state    State
	inited   bool
	closed   bool
	initOnce sync.Once
}

// NewSession construye la sesión en estado Initializing con loading=true.
func NewSession(client ports.APIClient, storage repository.KeyValueStore, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		client:  client,
		storage: storage,
		log:     log.Component("session"),
		loading: true,
		state:   StateInitializing,
	}
}

// Init resuelve la sesión a partir del token almacenado. Solo la primera llamada tiene efecto.
// Si el usuario actual no se puede obtener, el token se elimina.
func (s *Session) Init(ctx context.Context) {
	s.initOnce.Do(func() {
		user := s.resolveStoredUser(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.inited = true
		s.loading = false
		if user != nil {
			s.user = user
			s.state = StateAuthenticated
			return
		}
		s.state = StateUnauthenticated
	})
}

func (s *Session) resolveStoredUser(ctx context.Context) *entity.User {
	token, ok, err := s.storage.Get(ctx, repository.KeyToken)
	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudo leer el token almacenado")
		return nil
	}
	if !ok || token == "" {
		return nil
	}
	res, err := s.client.GetCurrentUser(ctx)
	if err != nil {
		s.log.Info().Err(err).Msg("token almacenado no válido, se elimina")
		if derr := s.storage.Delete(ctx, repository.KeyToken); derr != nil {
			s.log.Warn().Err(derr).Msg("no se pudo eliminar el token")
		}
		return nil
	}
	u := res.Data
	return &u
}

// Login autentica, guarda el usuario y persiste el token. El error del cliente se devuelve tal cual.
func (s *Session) Login(ctx context.Context, username, password string) (entity.User, error) {
	s.mu.Lock()
	if !s.inited || s.closed {
		s.mu.Unlock()
		return entity.User{}, domain.ErrNotInitialized
	}
	s.loading = true
	s.mu.Unlock()

	res, err := s.client.Login(ctx, username, password)
	if err == nil {
		err = s.storage.Set(ctx, repository.KeyToken, res.Data.Token)
		if err != nil {
			err = domain.NewError(domain.KindUnknown, "no se pudo guardar el token", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return entity.User{}, err
	}
	u := res.Data.User
	s.user = &u
	s.state = StateAuthenticated
	s.log.Info().Str("username", u.Username).Str("role", string(u.Role)).Msg("sesión iniciada")
	return u, nil
}

// Logout limpia el usuario y elimina el token. Síncrono y sin llamada de red.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	if !s.inited || s.closed {
		s.mu.Unlock()
		return domain.ErrNotInitialized
	}
	s.user = nil
	s.state = StateUnauthenticated
	s.mu.Unlock()
	return s.storage.Delete(ctx, repository.KeyToken)
}

// User devuelve el usuario actual, false si no hay sesión.
func (s *Session) User() (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return entity.User{}, false
	}
	return *s.user, true
}

func (s *Session) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Close libera la sesión; las llamadas posteriores a Login/Logout fallan con ErrNotInitialized.
// El token persistido no se toca.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.user = nil
}

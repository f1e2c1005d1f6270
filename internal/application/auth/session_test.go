package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-minorista/internal/application/auth"
	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/ports/portstest"
	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/memory"
)

var admin = entity.User{ID: "1", Username: "admin", Role: entity.RoleAdministrador, FirstName: "Juan", LastName: "Pérez"}

func newFake() *portstest.FakeClient {
	fc := portstest.NewFakeClient()
	fc.Users["admin:admin"] = dto.LoginResult{User: admin, Token: "tok-admin"}
	fc.Users["vendedor:vendedor"] = dto.LoginResult{
		User:  entity.User{ID: "2", Username: "vendedor", Role: entity.RoleVendedor},
		Token: "tok-vendedor",
	}
	return fc
}

func TestSession_InitSinToken(t *testing.T) {
	fc := newFake()
	s := auth.NewSession(fc, memory.NewKeyValueStore(), nil)
	assert.Equal(t, auth.StateInitializing, s.State())
	assert.True(t, s.IsLoading())

	s.Init(context.Background())

	assert.Equal(t, auth.StateUnauthenticated, s.State())
	assert.False(t, s.IsLoading())
	_, ok := s.User()
	assert.False(t, ok)
	assert.Zero(t, fc.CallCount("GetCurrentUser"))
}

func TestSession_InitConTokenValido(t *testing.T) {
	ctx := context.Background()
	fc := newFake()
	fc.Me = &admin
	kv := memory.NewKeyValueStore()
	require.NoError(t, kv.Set(ctx, repository.KeyToken, "tok"))

	s := auth.NewSession(fc, kv, nil)
	s.Init(ctx)
	s.Init(ctx)

	assert.Equal(t, auth.StateAuthenticated, s.State())
	assert.False(t, s.IsLoading())
	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, 1, fc.CallCount("GetCurrentUser"))
}

func TestSession_InitConTokenInvalidoLoElimina(t *testing.T) {
	ctx := context.Background()
	fc := newFake()
	fc.ErrMe = domain.HTTPError(401)
	kv := memory.NewKeyValueStore()
	require.NoError(t, kv.Set(ctx, repository.KeyToken, "vencido"))

	s := auth.NewSession(fc, kv, nil)
	s.Init(ctx)

	assert.Equal(t, auth.StateUnauthenticated, s.State())
	assert.False(t, s.IsLoading())
	_, ok, _ := kv.Get(ctx, repository.KeyToken)
	assert.False(t, ok)
}

func TestSession_LoginAntesDeInit(t *testing.T) {
	s := auth.NewSession(newFake(), memory.NewKeyValueStore(), nil)
	_, err := s.Login(context.Background(), "admin", "admin")
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestSession_LoginYLogout(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueStore()
	s := auth.NewSession(newFake(), kv, nil)
	s.Init(ctx)

	u, err := s.Login(ctx, "vendedor", "vendedor")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, u.Role)
	assert.Equal(t, auth.StateAuthenticated, s.State())
	assert.False(t, s.IsLoading())

	tok, ok, _ := kv.Get(ctx, repository.KeyToken)
	require.True(t, ok)
	assert.Equal(t, "tok-vendedor", tok)

	require.NoError(t, s.Logout(ctx))
	assert.Equal(t, auth.StateUnauthenticated, s.State())
	_, ok = s.User()
	assert.False(t, ok)
	_, ok, _ = kv.Get(ctx, repository.KeyToken)
	assert.False(t, ok)
}

func TestSession_LoginFallidoDevuelveErrorYLimpiaCarga(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueStore()
	s := auth.NewSession(newFake(), kv, nil)
	s.Init(ctx)

	_, err := s.Login(ctx, "x", "y")
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidCredentials, domain.KindOf(err))
	assert.False(t, s.IsLoading())
	assert.Equal(t, auth.StateUnauthenticated, s.State())
	_, ok, _ := kv.Get(ctx, repository.KeyToken)
	assert.False(t, ok)
}

func TestSession_Close(t *testing.T) {
	ctx := context.Background()
	s := auth.NewSession(newFake(), memory.NewKeyValueStore(), nil)
	s.Init(ctx)
	s.Close()

	_, err := s.Login(ctx, "admin", "admin")
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
	assert.ErrorIs(t, s.Logout(ctx), domain.ErrNotInitialized)
}

func TestContext(t *testing.T) {
	_, err := auth.FromContext(context.Background())
	assert.ErrorIs(t, err, domain.ErrOutsideProvider)
	assert.EqualError(t, err, "useAuth must be used within an AuthProvider")
	assert.Panics(t, func() { auth.MustFromContext(context.Background()) })

	s := auth.NewSession(newFake(), memory.NewKeyValueStore(), nil)
	ctx := auth.WithSession(context.Background(), s)
	got, err := auth.FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Same(t, s, auth.MustFromContext(ctx))
}

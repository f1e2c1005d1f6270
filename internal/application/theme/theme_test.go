package theme_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-minorista/internal/application/theme"
	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/memory"
)

func TestService_PorDefectoSystem(t *testing.T) {
	s := theme.NewService(memory.NewKeyValueStore())
	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, theme.System, got)
}

func TestService_SetPersiste(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueStore()
	require.NoError(t, theme.NewService(kv).Set(ctx, theme.Dark))

	v, ok, _ := kv.Get(ctx, repository.KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "dark", v)

	got, err := theme.NewService(kv).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, got)
}

func TestService_ValorDesconocido(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueStore()
	require.NoError(t, kv.Set(ctx, "vite-ui-theme", "sepia"))

	got, err := theme.NewService(kv).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.System, got)

	err = theme.NewService(kv).Set(ctx, theme.Theme("sepia"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, theme.Dark, theme.System.Resolve(true))
	assert.Equal(t, theme.Light, theme.System.Resolve(false))
	assert.Equal(t, theme.Light, theme.Light.Resolve(true))
	assert.Equal(t, theme.Dark, theme.Dark.Resolve(false))
}

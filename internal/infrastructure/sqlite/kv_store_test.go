package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-minorista/internal/domain/repository"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/sqlite"
)

func TestKeyValueStore_EnMemoria(t *testing.T) {
	ctx := context.Background()
	kv, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer kv.Close()

	_, ok, err := kv.Get(ctx, repository.KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, repository.KeyTheme, "dark"))
	require.NoError(t, kv.Set(ctx, repository.KeyTheme, "light"))
	v, ok, err := kv.Get(ctx, repository.KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	require.NoError(t, kv.Delete(ctx, repository.KeyTheme))
	require.NoError(t, kv.Delete(ctx, "inexistente"))
	_, ok, err = kv.Get(ctx, repository.KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeyValueStore_PersisteEntreAperturas(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "panel.db")

	kv, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, repository.KeyToken, "tok-123"))
	require.NoError(t, kv.Close())

	kv, err = sqlite.Open(ctx, path)
	require.NoError(t, err)
	defer kv.Close()
	v, ok, err := kv.Get(ctx, repository.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-123", v)
}

package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/memory"
)

func TestKeyValueStore(t *testing.T) {
	ctx := context.Background()
	s := memory.NewKeyValueStore()

	_, ok, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "token", "abc"))
	v, ok, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, s.Delete(ctx, "token"))
	require.NoError(t, s.Delete(ctx, "token"), "borrar una clave ausente no es error")
	_, ok, _ = s.Get(ctx, "token")
	assert.False(t, ok)
}

func TestProductRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	r := memory.NewProductRepository(entity.Product{ID: "1", Name: "A"})

	require.NoError(t, r.Create(ctx, &entity.Product{ID: "2", Name: "B"}))
	assert.Error(t, r.Create(ctx, &entity.Product{ID: "2", Name: "B"}))

	p, err := r.GetByID(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, p)
	p.Name = "B2"
	require.NoError(t, r.Update(ctx, p))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "B2", list[1].Name)

	require.NoError(t, r.Delete(ctx, "1"))
	assert.ErrorIs(t, r.Delete(ctx, "1"), domain.ErrNotFound)

	missing, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_HashBcrypt(t *testing.T) {
	ctx := context.Background()
	r, err := memory.NewUserRepository(memory.SeedUser{
		User:     entity.User{ID: "1", Username: "admin", Role: entity.RoleAdministrador},
		Password: "admin",
	})
	require.NoError(t, err)

	c, err := r.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NotEqual(t, "admin", c.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("admin")))

	u, err := r.FindByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Username)
}

package memory

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository usuarios del backend simulado con contraseñas bcrypt.
type UserRepository struct {
	byUsername map[string]repository.Credential
}

// SeedUser usuario con su contraseña en texto plano (solo para sembrar).
type SeedUser struct {
	User     entity.User
	Password string
}

// NewUserRepository hashea las contraseñas de los usuarios semilla.
func NewUserRepository(seed ...SeedUser) (*UserRepository, error) {
	r := &UserRepository{byUsername: make(map[string]repository.Credential, len(seed))}
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("hash de %s: %w", s.User.Username, err)
		}
		r.byUsername[s.User.Username] = repository.Credential{User: s.User, PasswordHash: string(hash)}
	}
	return r, nil
}

// FindByUsername devuelve nil, nil si no existe.
func (r *UserRepository) FindByUsername(_ context.Context, username string) (*repository.Credential, error) {
	c, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// FindByID devuelve nil, nil si no existe.
func (r *UserRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, c := range r.byUsername {
		if c.User.ID == id {
			u := c.User
			return &u, nil
		}
	}
	return nil, nil
}

// List usuarios ordenados por ID.
func (r *UserRepository) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.byUsername))
	for _, c := range r.byUsername {
		out = append(out, c.User)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

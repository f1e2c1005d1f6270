package repository

import (
	"context"

	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

// Credential usuario con su hash bcrypt (nunca la contraseña plana).
type Credential struct {
	User         entity.User
	PasswordHash string
}

// UserRepository define el puerto de persistencia para usuarios del backend simulado.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*Credential, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
}

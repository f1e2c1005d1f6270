package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios del backend con su hash bcrypt.
type UserRepo struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, email, role, first_name, last_name`

// Upsert crea o reemplaza el usuario (por ID) con el hash dado.
func (r *UserRepo) Upsert(ctx context.Context, u entity.User, passwordHash string) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (`+userColumns+`, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, email = EXCLUDED.email,
			role = EXCLUDED.role, first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name,
			password_hash = EXCLUDED.password_hash`,
		u.ID, u.Username, u.Email, string(u.Role), u.FirstName, u.LastName, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// FindByUsername devuelve nil, nil si no existe.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*repository.Credential, error) {
	var (
		c    repository.Credential
		role string
	)
	err := r.q.QueryRow(ctx, `SELECT `+userColumns+`, password_hash FROM users WHERE username = $1`, username).Scan(
		&c.User.ID, &c.User.Username, &c.User.Email, &role, &c.User.FirstName, &c.User.LastName, &c.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	c.User.Role = entity.Role(role)
	return &c, nil
}

// FindByID devuelve nil, nil si no existe.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var out []entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u    entity.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &role, &u.FirstName, &u.LastName); err != nil {
		return nil, err
	}
	u.Role = entity.Role(role)
	return &u, nil
}

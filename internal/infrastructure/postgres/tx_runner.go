package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/memory"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con el Querier de la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// SeedData datos iniciales del backend.
type SeedData struct {
	Users     []memory.SeedUser
	Products  []entity.Product
	Sales     []entity.Sale
	Purchases []entity.Purchase
}

// Seed crea el esquema y, si la tabla de productos está vacía, carga los datos en una sola transacción.
// Los usuarios se actualizan siempre. Devuelve true si sembró el catálogo.
func (r *TxRunner) Seed(ctx context.Context, data SeedData) (bool, error) {
	seeded := false
	err := r.Run(ctx, func(q Querier) error {
		if err := EnsureSchema(ctx, q); err != nil {
			return err
		}
		users := NewUserRepository(q)
		for _, su := range data.Users {
			hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash de %s: %w", su.User.Username, err)
			}
			if err := users.Upsert(ctx, su.User, string(hash)); err != nil {
				return err
			}
		}

		var n int
		if err := q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
			return fmt.Errorf("contar productos: %w", err)
		}
		if n > 0 {
			return nil
		}
		products := NewProductRepository(q)
		for i := range data.Products {
			if err := products.Create(ctx, &data.Products[i]); err != nil {
				return err
			}
		}
		sales := NewSaleRepository(q)
		for i := range data.Sales {
			if err := sales.Create(ctx, &data.Sales[i]); err != nil {
				return err
			}
		}
		purchases := NewPurchaseRepository(q)
		for i := range data.Purchases {
			if err := purchases.Create(ctx, &data.Purchases[i]); err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	return seeded, err
}

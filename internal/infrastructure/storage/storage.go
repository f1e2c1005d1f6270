// Package storage elige los adaptadores de persistencia según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/panel-minorista/internal/domain/repository"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/apiclient"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/memory"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/postgres"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/rediskv"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/sqlite"
	"github.com/jhoicas/panel-minorista/pkg/config"
	"github.com/jhoicas/panel-minorista/pkg/logger"
)

// redisPrefix aísla las claves del panel en una instancia compartida.
const redisPrefix = "panel-minorista:"

// OpenKeyValueStore abre el almacenamiento clave-valor configurado. closeFn nunca es nil.
func OpenKeyValueStore(ctx context.Context, cfg config.StorageConfig, db config.DBConfig, log *logger.Logger) (repository.KeyValueStore, func(), error) {
	log = log.Component("storage")
	switch cfg.Driver {
	case "memory":
		return memory.NewKeyValueStore(), func() {}, nil
	case "sqlite":
		kv, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, func() {}, err
		}
		log.Debug().Str("path", cfg.SQLitePath).Msg("almacenamiento sqlite abierto")
		return kv, func() { _ = kv.Close() }, nil
	case "redis":
		rdb, err := rediskv.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, func() {}, err
		}
		return rediskv.NewKeyValueStore(rdb, redisPrefix), func() { _ = rdb.Close() }, nil
	case "postgres":
		pool, err := postgres.NewPool(ctx, db)
		if err != nil {
			return nil, func() {}, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, func() {}, err
		}
		return postgres.NewKeyValueStore(pool), pool.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}
}

// Backend repositorios del backend simulado.
type Backend struct {
	Users     repository.UserRepository
	Products  repository.ProductRepository
	Sales     repository.SaleRepository
	Purchases repository.PurchaseRepository
	Close     func()
}

// OpenBackend usa PostgreSQL (sembrado una vez) si el driver es postgres; si no, memoria sembrada.
func OpenBackend(ctx context.Context, cfg config.StorageConfig, db config.DBConfig, log *logger.Logger) (*Backend, error) {
	log = log.Component("storage")
	if cfg.Driver != "postgres" {
		users, err := memory.NewUserRepository(apiclient.SeedUsers()...)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Users:     users,
			Products:  memory.NewProductRepository(apiclient.SeedProducts()...),
			Sales:     memory.NewSaleRepository(apiclient.SeedSales()...),
			Purchases: memory.NewPurchaseRepository(apiclient.SeedPurchases()...),
			Close:     func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, db)
	if err != nil {
		return nil, err
	}
	seeded, err := postgres.NewTxRunner(pool).Seed(ctx, postgres.SeedData{
		Users:     apiclient.SeedUsers(),
		Products:  apiclient.SeedProducts(),
		Sales:     apiclient.SeedSales(),
		Purchases: apiclient.SeedPurchases(),
	})
	if err != nil {
		pool.Close()
		return nil, err
	}
	log.Info().Bool("seeded", seeded).Msg("backend postgres listo")
	return &Backend{
		Users:     postgres.NewUserRepository(pool),
		Products:  postgres.NewProductRepository(pool),
		Sales:     postgres.NewSaleRepository(pool),
		Purchases: postgres.NewPurchaseRepository(pool),
		Close:     pool.Close,
	}, nil
}

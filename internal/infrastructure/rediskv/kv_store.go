// Package rediskv guarda token y tema en Redis, compartidos entre procesos.
package rediskv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/panel-minorista/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore claves con prefijo en un cliente go-redis. Sin expiración.
type KeyValueStore struct {
	rdb    *redis.Client
	prefix string
}

// NewClient crea y valida la conexión a partir de una URL redis://.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// NewKeyValueStore usa prefix (p. ej. "panel:") para aislar las claves.
func NewKeyValueStore(rdb *redis.Client, prefix string) *KeyValueStore {
	return &KeyValueStore{rdb: rdb, prefix: prefix}
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("kv delete %s: %w", key, err)
	}
	return nil
}

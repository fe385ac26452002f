package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var _ Store = (*RedisStore)(nil)

// RedisStore implementa Store sobre Redis. Redis persiste según su propia
// configuración (RDB/AOF); este backend asume una instancia con persistencia
// habilitada.
type RedisStore struct {
	client *redis.Client
}

// RedisConfig parámetros de conexión.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore conecta y verifica con un PING.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client}, nil
}

// Get lee el blob de una clave.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("leer clave %s: %w", key, err)
	}
	return value, nil
}

// SetAll escribe todas las entradas con un TxPipeline (MULTI/EXEC).
func (s *RedisStore) SetAll(ctx context.Context, entries map[string][]byte) error {
	pipe := s.client.TxPipeline()
	for key, value := range entries {
		if value == nil {
			pipe.Del(ctx, key)
			continue
		}
		pipe.Set(ctx, key, value, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("flush redis: %w", err)
	}
	return nil
}

// Close cierra la conexión.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

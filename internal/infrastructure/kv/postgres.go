package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/e2e-commerce/pkg/config"
)

var _ Store = (*PostgresStore)(nil)

// PostgresStore implementa Store sobre PostgreSQL, para despliegues donde la
// tienda comparte una base ya existente.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore crea el pool, verifica conectividad y asegura la tabla.
func NewPostgresStore(ctx context.Context, cfg config.DBConfig) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS kv_blobs (
		key   TEXT PRIMARY KEY,
		value BYTEA NOT NULL
	)`
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("crear tabla kv_blobs: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Get lee el blob de una clave.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_blobs WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("leer clave %s: %w", key, err)
	}
	return value, nil
}

// SetAll escribe todas las entradas dentro de una transacción.
func (s *PostgresStore) SetAll(ctx context.Context, entries map[string][]byte) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for key, value := range entries {
		if value == nil {
			if _, err := tx.Exec(ctx, `DELETE FROM kv_blobs WHERE key = $1`, key); err != nil {
				return fmt.Errorf("borrar clave %s: %w", key, err)
			}
			continue
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO kv_blobs (key, value) VALUES ($1, $2)
			 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
			key, value,
		)
		if err != nil {
			return fmt.Errorf("escribir clave %s: %w", key, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close cierra el pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// seed carga los productos de ejemplo de la demo en el backend configurado,
// sin levantar el servidor HTTP. No hace nada si el catálogo ya tiene
// productos.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"

	"github.com/jhoicas/e2e-commerce/internal/application/store"
	"github.com/jhoicas/e2e-commerce/internal/application/usecase"
	"github.com/jhoicas/e2e-commerce/internal/infrastructure/kv"
	"github.com/jhoicas/e2e-commerce/internal/infrastructure/persistence"
	"github.com/jhoicas/e2e-commerce/pkg/config"
	"github.com/jhoicas/e2e-commerce/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	kvStore, err := newKVStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén clave-valor")
	}
	defer kvStore.Close()

	st, err := store.New(ctx, persistence.NewGateway(kvStore, log))
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado inicial")
	}

	created, err := usecase.SeedDemoCatalog(ctx, usecase.NewCatalogUseCase(st))
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar catálogo demo")
	}
	if created == 0 {
		log.Info().Msg("el catálogo ya tiene productos, no se sembró nada")
		return
	}
	log.Info().Int("products", created).Str("backend", cfg.Store.Backend).Msg("catálogo demo sembrado")
}

// newKVStore abre el backend configurado en STORE_BACKEND.
func newKVStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		return kv.NewPostgresStore(ctx, cfg.Store.DB)
	case config.BackendRedis:
		return kv.NewRedisStore(ctx, kv.RedisConfig{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
	case config.BackendMemory:
		return kv.NewMemoryStore(), nil
	default:
		return kv.NewSQLiteStore(cfg.Store.SQLitePath)
	}
}

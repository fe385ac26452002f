package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/e2e-commerce/internal/application/auth"
	appstore "github.com/jhoicas/e2e-commerce/internal/application/store"
	"github.com/jhoicas/e2e-commerce/internal/application/usecase"
	"github.com/jhoicas/e2e-commerce/internal/infrastructure/kv"
	"github.com/jhoicas/e2e-commerce/internal/infrastructure/persistence"
	httpRouter "github.com/jhoicas/e2e-commerce/internal/interfaces/http"
	"github.com/jhoicas/e2e-commerce/pkg/config"
	"github.com/jhoicas/e2e-commerce/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Store.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	kvStore, err := newKVStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén clave-valor")
	}
	defer kvStore.Close()

	gateway := persistence.NewGateway(kvStore, log)
	st, err := appstore.New(ctx, gateway)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado inicial")
	}

	catalogUC := usecase.NewCatalogUseCase(st)
	cartUC := usecase.NewCartUseCase(st)
	userUC := usecase.NewUserUseCase(st)
	authUC := auth.NewAuthUseCase(st, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	if cfg.App.SeedDemo {
		created, err := usecase.SeedDemoCatalog(ctx, catalogUC)
		if err != nil {
			log.Warn().Err(err).Msg("carga de catálogo demo")
		} else if created > 0 {
			log.Info().Int("products", created).Msg("catálogo demo cargado")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "E2E-Commerce API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: catalogUC,
		CartUC:    cartUC,
		UserUC:    userUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
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

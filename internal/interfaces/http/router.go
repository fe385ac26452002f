package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/e2e-commerce/internal/application/auth"
	"github.com/jhoicas/e2e-commerce/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	CartUC    *usecase.CartUseCase
	UserUC    *usecase.UserUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/recover", authHandler.Recover)

	// Catálogo: lectura pública, escritura protegida
	productHandler := NewProductHandler(deps.CatalogUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	authGroup = protected.Group("/auth")
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	protectedProducts := protected.Group("/products")
	protectedProducts.Post("/", productHandler.Create)
	protectedProducts.Put("/:id", productHandler.Update)
	protectedProducts.Delete("/:id", productHandler.Delete)

	// Carrito (protegido)
	cart := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.List)
	cart.Post("/items", cartHandler.AddItem)
	cart.Patch("/items/:productId", cartHandler.UpdateItem)
	cart.Delete("/items/:productId", cartHandler.RemoveItem)

	// Usuarios (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Patch("/:id", userHandler.Rename)
	users.Delete("/:id", userHandler.Delete)
}

package repository

import (
	"context"

	"github.com/jhoicas/e2e-commerce/internal/domain/entity"
)

// PersistenceGateway define el puerto de persistencia del motor (DIP).
// Las cuatro colecciones viajan siempre juntas: SaveAll es un único flush
// lógico y LoadAll nunca falla por estado corrupto — cada colección ilegible
// se resuelve a su valor neutro (secuencia vacía, sesión ausente).
type PersistenceGateway interface {
	LoadAll(ctx context.Context) (users []*entity.User, products []*entity.Product, cart []*entity.CartLine, sessionUserID string, err error)
	SaveAll(ctx context.Context, users []*entity.User, products []*entity.Product, cart []*entity.CartLine, sessionUserID string) error
}

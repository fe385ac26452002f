// Package persistence implementa el gateway de persistencia: el viaje de ida
// y vuelta de las cuatro colecciones durables (usuarios, productos, carrito,
// puntero de sesión) como documentos JSON sobre un almacén clave-valor.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/e2e-commerce/internal/domain/entity"
	"github.com/jhoicas/e2e-commerce/internal/domain/repository"
	"github.com/jhoicas/e2e-commerce/internal/infrastructure/kv"
	"github.com/jhoicas/e2e-commerce/pkg/logger"
)

// Claves estables bajo las que se guardan las colecciones. Se conservan los
// nombres históricos de la demo para poder importar un estado existente.
const (
	KeyUsers    = "e2e_users"
	KeyProducts = "e2e_products"
	KeyCart     = "e2e_cart"
	KeySession  = "e2e_current_user"
)

var _ repository.PersistenceGateway = (*Gateway)(nil)

// Gateway serializa y deserializa las colecciones contra un kv.Store.
type Gateway struct {
	store kv.Store
	log   *logger.Logger
}

// NewGateway construye el gateway.
func NewGateway(store kv.Store, log *logger.Logger) *Gateway {
	return &Gateway{store: store, log: log}
}

// sessionDoc es la forma persistida del puntero de sesión.
type sessionDoc struct {
	UserID string `json:"userId"`
}

// LoadAll lee las cuatro colecciones. Una clave ausente o un blob ilegible
// se resuelve al valor neutro de su contenedor: la inicialización de la
// tienda nunca aborta por estado persistido corrupto.
func (g *Gateway) LoadAll(ctx context.Context) ([]*entity.User, []*entity.Product, []*entity.CartLine, string, error) {
	var users []*entity.User
	g.loadInto(ctx, KeyUsers, &users)

	var products []*entity.Product
	g.loadInto(ctx, KeyProducts, &products)

	var cart []*entity.CartLine
	g.loadInto(ctx, KeyCart, &cart)

	var session sessionDoc
	g.loadInto(ctx, KeySession, &session)

	return users, products, cart, session.UserID, nil
}

// loadInto deserializa una clave en dest; ante cualquier problema deja dest
// con su valor cero y registra el motivo.
func (g *Gateway) loadInto(ctx context.Context, key string, dest interface{}) {
	blob, err := g.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			g.log.Warn().Err(err).Str("key", key).Msg("lectura de colección falló, se usa el valor neutro")
		}
		return
	}
	if err := json.Unmarshal(blob, dest); err != nil {
		g.log.Warn().Err(err).Str("key", key).Msg("blob corrupto, se usa el valor neutro")
	}
}

// SaveAll serializa y escribe las cuatro colecciones como un único flush
// lógico; el backend garantiza que no se observan escrituras parciales.
// Se invoca como paso final de toda operación mutadora exitosa.
func (g *Gateway) SaveAll(ctx context.Context, users []*entity.User, products []*entity.Product, cart []*entity.CartLine, sessionUserID string) error {
	entries := make(map[string][]byte, 4)

	var err error
	if entries[KeyUsers], err = marshalSeq(users); err != nil {
		return fmt.Errorf("serializar usuarios: %w", err)
	}
	if entries[KeyProducts], err = marshalSeq(products); err != nil {
		return fmt.Errorf("serializar productos: %w", err)
	}
	if entries[KeyCart], err = marshalSeq(cart); err != nil {
		return fmt.Errorf("serializar carrito: %w", err)
	}

	if sessionUserID == "" {
		// Sin sesión activa el documento se elimina, no se guarda vacío.
		entries[KeySession] = nil
	} else {
		blob, err := json.Marshal(sessionDoc{UserID: sessionUserID})
		if err != nil {
			return fmt.Errorf("serializar sesión: %w", err)
		}
		entries[KeySession] = blob
	}

	if err := g.store.SetAll(ctx, entries); err != nil {
		return fmt.Errorf("flush de colecciones: %w", err)
	}
	return nil
}

// marshalSeq serializa una secuencia garantizando `[]` en lugar de `null`
// para colecciones vacías.
func marshalSeq[T any](seq []T) ([]byte, error) {
	if seq == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(seq)
}

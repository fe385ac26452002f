// Package kv ofrece un almacén clave-valor durable con varios backends
// intercambiables: SQLite (archivo local, por defecto), PostgreSQL, Redis
// y memoria (tests). El gateway de persistencia serializa las colecciones
// como blobs JSON bajo claves estables y las escribe con SetAll.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound se devuelve cuando la clave no existe en el backend.
var ErrKeyNotFound = errors.New("kv: clave no encontrada")

// Store es el contrato mínimo que necesita el gateway.
// SetAll aplica todas las entradas como un único flush lógico: o se escriben
// todas o ninguna. Un valor nil elimina la clave.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetAll(ctx context.Context, entries map[string][]byte) error
	Close() error
}

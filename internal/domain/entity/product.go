package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Active marca el borrado lógico: un producto "eliminado" sigue almacenado
// pero queda fuera de listados y búsquedas.
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"` // precio de venta, siempre > 0
	Stock       int             `json:"stock"` // unidades disponibles, nunca negativo
	Image       string          `json:"image"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
}

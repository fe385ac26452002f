package entity

import "github.com/shopspring/decimal"

// CartLine representa una línea del carrito. Title, Price e Image son una
// foto del producto tomada al momento de agregarlo: si el producto se edita
// después, la línea conserva los valores originales (precio congelado al
// agregar). ProductID es una referencia débil, usada solo para consultar el
// stock vigente al mutar la línea.
type CartLine struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"` // siempre >= 1
}

// Subtotal devuelve Price × Quantity con el precio de la foto, no el vigente.
func (l *CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest agrega una unidad del producto al carrito.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
}

// UpdateCartItemRequest ajusta la cantidad de una línea por delta (+/-).
type UpdateCartItemRequest struct {
	Delta int `json:"delta"`
}

// CartLineResponse una línea del carrito con su subtotal al precio congelado.
type CartLineResponse struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse el carrito completo con sus totales.
type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalCount int                `json:"totalCount"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
}

package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/e2e-commerce/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Predicado de validación de productos
// ──────────────────────────────────────────────────────────────────────────────

func validProductInput() domain.ProductInput {
	return domain.ProductInput{
		Title:       "Mouse inalámbrico",
		Description: "Mouse inalámbrico con sensor óptico de 1600 DPI.",
		Category:    "electrónica",
		Price:       decimal.NewFromFloat(99.90),
		Stock:       5,
		Image:       "https://example.com/mouse.png",
	}
}

func TestValidateProduct_InputValido_SinViolaciones(t *testing.T) {
	errs := domain.ValidateProduct(validProductInput())
	assert.Empty(t, errs, "un input válido no debe producir violaciones")
}

// Cada regla incumplida produce exactamente su mensaje, en el orden de
// evaluación: título, descripción, categoría, precio, stock, imagen.
func TestValidateProduct_TodasLasReglas_EnOrden(t *testing.T) {
	in := domain.ProductInput{
		Title:       "abc", // < 5
		Description: "corta",
		Category:    "",
		Price:       decimal.Zero,
		Stock:       -1,
		Image:       "",
	}
	errs := domain.ValidateProduct(in)
	require.Len(t, errs, 6, "las seis reglas deben fallar")

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"title", "description", "category", "price", "stock", "image"}, fields,
		"las violaciones deben conservar el orden de evaluación de las reglas")
}

func TestValidateProduct_TituloLargo_Rechazado(t *testing.T) {
	in := validProductInput()
	for len([]rune(in.Title)) <= 100 {
		in.Title += " extra"
	}
	errs := domain.ValidateProduct(in)
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)
}

func TestValidateProduct_PrecioNegativo_Rechazado(t *testing.T) {
	in := validProductInput()
	in.Price = decimal.NewFromInt(-10)
	errs := domain.ValidateProduct(in)
	require.Len(t, errs, 1)
	assert.Equal(t, "price", errs[0].Field)
}

func TestValidateProduct_StockCero_Valido(t *testing.T) {
	in := validProductInput()
	in.Stock = 0
	assert.Empty(t, domain.ValidateProduct(in), "stock cero es válido; solo el negativo se rechaza")
}

// ──────────────────────────────────────────────────────────────────────────────
// Email y contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestIsValidEmail(t *testing.T) {
	casos := []struct {
		email string
		ok    bool
	}{
		{"ann@x.com", true},
		{"a.b@dominio.co", true},
		{"sin-arroba.com", false},
		{"dos@arro@bas.com", false},
		{"con espacio@x.com", false},
		{"sin@punto", false},
		{"", false},
	}
	for _, c := range casos {
		assert.Equal(t, c.ok, domain.IsValidEmail(c.email), "email %q", c.email)
	}
}

func TestIsValidPassword(t *testing.T) {
	casos := []struct {
		password string
		ok       bool
	}{
		{"Passw0rd!", true},
		{"abc123!x", true},
		{"short1!", false},     // 7 caracteres
		{"sinNumero!", false},  // falta dígito
		{"sinespecial1", false}, // falta carácter especial
		{"", false},
	}
	for _, c := range casos {
		assert.Equal(t, c.ok, domain.IsValidPassword(c.password), "contraseña %q", c.password)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Mensajes de la taxonomía de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestValidationErrors_MessagesEnOrden(t *testing.T) {
	errs := domain.ValidationErrors{
		{Field: "a", Message: "primero"},
		{Field: "b", Message: "segundo"},
	}
	assert.Equal(t, []string{"primero", "segundo"}, errs.Messages())
	assert.Equal(t, "primero; segundo", errs.Error())
}

func TestStockError_FueraDeStock(t *testing.T) {
	err := &domain.StockError{Requested: 1, Available: 0}
	assert.Equal(t, "producto fuera de stock", err.Error())
}

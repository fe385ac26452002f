package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Reglas de formato para registro de usuarios. El set de caracteres
// especiales es fijo y forma parte del contrato de validación.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitPattern = regexp.MustCompile(`\d`)
)

const passwordSpecialChars = `!@#$%^&*(),.?":{}|<>`

// IsValidEmail verifica la forma convencional de una dirección de correo.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword verifica la regla de fortaleza: al menos 8 caracteres,
// con mínimo un dígito y un carácter especial del set fijo.
func IsValidPassword(password string) bool {
	return len(password) >= 8 &&
		digitPattern.MatchString(password) &&
		strings.ContainsAny(password, passwordSpecialChars)
}

// ProductInput son los campos sujetos al predicado de validación del catálogo.
type ProductInput struct {
	Title       string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
	Image       string
}

// ValidateProduct evalúa el predicado de validación del catálogo y devuelve
// las violaciones en el orden en que se evalúan las reglas. Un producto solo
// puede persistirse si la lista es vacía; la validación ocurre siempre antes
// de escribir, nunca a posteriori.
func ValidateProduct(in ProductInput) ValidationErrors {
	var errs ValidationErrors

	if n := len([]rune(in.Title)); n < 5 || n > 100 {
		errs = append(errs, ValidationError{Field: "title", Message: "el título debe tener entre 5 y 100 caracteres"})
	}
	if len([]rune(in.Description)) < 20 {
		errs = append(errs, ValidationError{Field: "description", Message: "la descripción debe tener al menos 20 caracteres"})
	}
	if in.Category == "" {
		errs = append(errs, ValidationError{Field: "category", Message: "la categoría es obligatoria"})
	}
	if !in.Price.IsPositive() {
		errs = append(errs, ValidationError{Field: "price", Message: "el precio debe ser mayor que cero"})
	}
	if in.Stock < 0 {
		errs = append(errs, ValidationError{Field: "stock", Message: "el stock no puede ser negativo"})
	}
	if in.Image == "" {
		errs = append(errs, ValidationError{Field: "image", Message: "la URL de la imagen es obligatoria"})
	}
	return errs
}

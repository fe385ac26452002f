package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	// ErrAuth cubre cualquier fallo de login: email inexistente o contraseña
	// incorrecta. No se distingue entre ambos casos hacia afuera.
	ErrAuth = errors.New("email o contraseña incorrectos")
)

// ValidationError describe una regla de validación incumplida sobre un campo.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors agrupa las violaciones de un input rechazado, en el orden
// en que se evaluaron las reglas.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}

// Messages devuelve solo los mensajes, en orden, para mostrarlos al usuario.
func (e ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

// NotFoundError indica que una entidad referenciada no existe (o no está
// activa, en el caso de productos).
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q no encontrado", e.Entity, e.ID)
}

// DuplicateError indica un valor que debe ser único y ya está registrado.
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q ya está registrado", e.Field, e.Value)
}

// StockError indica que una mutación del carrito pide más unidades de las
// disponibles. Available==0 equivale a producto sin stock.
type StockError struct {
	Requested int
	Available int
}

func (e *StockError) Error() string {
	if e.Available == 0 {
		return "producto fuera de stock"
	}
	return fmt.Sprintf("stock insuficiente: solicitado %d, disponible %d", e.Requested, e.Available)
}

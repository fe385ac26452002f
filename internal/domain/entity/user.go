package entity

import "time"

// User representa un usuario registrado de la tienda.
// PasswordSecret guarda el hash bcrypt de la contraseña, nunca texto plano.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordSecret string    `json:"passwordSecret"`
	CreatedAt      time.Time `json:"createdAt"`
}

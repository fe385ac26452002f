package dto

import "time"

// UserResponse representación de un usuario sin material de credenciales.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}

// RenameUserRequest cambio de nombre de un usuario.
type RenameUserRequest struct {
	Name string `json:"name"`
}

package dto

// RegisterRequest alta de un usuario nuevo.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RecoverPasswordRequest solicitud de recuperación de contraseña (simulada).
type RecoverPasswordRequest struct {
	Email string `json:"email"`
}

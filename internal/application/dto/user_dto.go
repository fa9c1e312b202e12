package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nombre    string `json:"nombre,omitempty"`
	EmpresaID string `json:"empresa_id"`
	Role      string `json:"role,omitempty"` // admin, contable, comercial
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario en respuestas (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Role      string    `json:"role"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token JWT + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

package entity

import "time"

// Roles válidos para Usuario.
const (
	RoleAdmin     = "admin"
	RoleContable  = "contable"
	RoleComercial = "comercial"
)

// Usuario representa un usuario del sistema (pertenece a una Empresa).
type Usuario struct {
	ID           string
	EmpresaID    string
	Email        string
	PasswordHash string // hash bcrypt, nunca en claro tras persistir
	Nombre       string
	Role         string // admin, contable, comercial
	Estado       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

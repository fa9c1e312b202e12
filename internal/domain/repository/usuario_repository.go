package repository

import "github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	GetByEmailAndEmpresa(email, empresaID string) (*entity.Usuario, error)
}

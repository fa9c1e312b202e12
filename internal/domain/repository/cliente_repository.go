package repository

import "github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente (tabla ent).
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByEmpresaAndNIF(empresaID, nif string) (*entity.Cliente, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}

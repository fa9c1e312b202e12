package repository

import (
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/fiscal"
)

// FacturaRepository define el puerto de persistencia de facturas sobre el
// esquema heredado: cabeceras en cfa, desglose por tipos en cfa_iva y líneas
// en lab. El núcleo fiscal no conoce este esquema; el repositorio solo
// serializa los importes ya calculados.
type FacturaRepository interface {
	Create(factura *entity.Factura) error
	CreateLinea(linea *entity.LineaFactura) error
	// ReplaceDesglose reescribe las filas de cfa_iva de la factura con el
	// desglose por tipos recalculado.
	ReplaceDesglose(facturaID string, bases []fiscal.BasePorTipo) error
	Update(factura *entity.Factura) error
	GetByID(id string) (*entity.Factura, error)
	GetLineasByFacturaID(facturaID string) ([]entity.LineaFactura, error)
	GetDesglose(facturaID string) ([]fiscal.BasePorTipo, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Factura, error)
	// ExisteNumero comprueba si ya hay una factura con esa serie y número.
	ExisteNumero(empresaID, serie, numero string) (bool, error)
}

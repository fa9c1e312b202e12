package facturacion

import (
	"context"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/repository"
)

// FacturaTxRunner ejecuta una función dentro de una transacción que incluye
// los repositorios de facturación. Cabecera (cfa), líneas (lab) y desglose por
// tipos (cfa_iva) se escriben en la misma transacción: o se persisten las tres
// tablas o ninguna.
type FacturaTxRunner interface {
	RunFacturacion(ctx context.Context, fn func(
		facturaRepo repository.FacturaRepository,
		clienteRepo repository.ClienteRepository,
	) error) error
}

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura.
// Las menciones obligatorias ya vienen generadas por el dominio; el generador
// solo las pinta.
type InvoicePDFGenerator interface {
	GenerarFacturaPDF(
		ctx context.Context,
		factura *entity.Factura,
		emisor *entity.Empresa,
		cliente *entity.Cliente,
		menciones []string,
	) ([]byte, error)
}

// ExportadorFacturae serializa una factura al formato Facturae 3.2.2 y
// devuelve el XML junto con su huella (SHA-256 del documento canonicalizado).
type ExportadorFacturae interface {
	Exportar(
		factura *entity.Factura,
		emisor *entity.Empresa,
		cliente *entity.Cliente,
		menciones []string,
	) (xml []byte, huella string, err error)
}

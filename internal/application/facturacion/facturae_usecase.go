package facturacion

import (
	"fmt"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/aeat"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/repository"
)

// FacturaeUseCase exporta una factura al formato Facturae 3.2.2. Solo se
// exportan facturas ya emitidas: el XML de un borrador no tiene valor legal.
type FacturaeUseCase struct {
	facturaRepo repository.FacturaRepository
	empresaRepo repository.EmpresaRepository
	clienteRepo repository.ClienteRepository
	exportador  ExportadorFacturae
}

// NewFacturaeUseCase construye el caso de uso.
func NewFacturaeUseCase(
	facturaRepo repository.FacturaRepository,
	empresaRepo repository.EmpresaRepository,
	clienteRepo repository.ClienteRepository,
	exportador ExportadorFacturae,
) *FacturaeUseCase {
	return &FacturaeUseCase{
		facturaRepo: facturaRepo,
		empresaRepo: empresaRepo,
		clienteRepo: clienteRepo,
		exportador:  exportador,
	}
}

// ExportarFacturae genera el XML Facturae de una factura emitida y devuelve
// también la huella SHA-256 del documento canonicalizado, que el cliente
// puede archivar como comprobante de integridad.
func (uc *FacturaeUseCase) ExportarFacturae(empresaID, facturaID string) (xml []byte, huella, filename string, err error) {
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, "", "", fmt.Errorf("facturae: obtener factura: %w", err)
	}
	if factura == nil {
		return nil, "", "", domain.ErrNotFound
	}
	if factura.EmpresaID != empresaID {
		return nil, "", "", domain.ErrForbidden
	}
	if factura.Estado != entity.EstadoEmitida {
		return nil, "", "", fmt.Errorf("%w: la factura está en estado %s, emítala antes de exportar",
			domain.ErrFacturaNoValida, factura.Estado)
	}

	lineas, err := uc.facturaRepo.GetLineasByFacturaID(facturaID)
	if err != nil {
		return nil, "", "", fmt.Errorf("facturae: obtener líneas: %w", err)
	}
	factura.Lineas = lineas

	emisor, err := uc.empresaRepo.GetByID(empresaID)
	if err != nil || emisor == nil {
		return nil, "", "", fmt.Errorf("facturae: obtener empresa: %w", err)
	}
	cliente, err := uc.clienteRepo.GetByID(factura.ClienteID)
	if err != nil || cliente == nil {
		return nil, "", "", fmt.Errorf("facturae: obtener cliente: %w", err)
	}

	menciones := aeat.GenerarMencionesObligatorias(factura, emisor, cliente)

	xml, huella, err = uc.exportador.Exportar(factura, emisor, cliente, menciones)
	if err != nil {
		return nil, "", "", fmt.Errorf("facturae: exportación fallida: %w", err)
	}

	filename = fmt.Sprintf("facturae_%s-%s.xml", factura.Serie, factura.Numero)
	return xml, huella, filename, nil
}

package facturacion

import (
	"context"
	"fmt"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/aeat"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	facturaRepo repository.FacturaRepository
	empresaRepo repository.EmpresaRepository
	clienteRepo repository.ClienteRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	facturaRepo repository.FacturaRepository,
	empresaRepo repository.EmpresaRepository,
	clienteRepo repository.ClienteRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		facturaRepo: facturaRepo,
		empresaRepo: empresaRepo,
		clienteRepo: clienteRepo,
		generator:   generator,
	}
}

// DescargarFacturaPDF recupera todos los datos de la factura, genera las
// menciones obligatorias y produce el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//   - domain.ErrForbidden        si la factura no pertenece a la empresa del token.
func (uc *PDFUseCase) DescargarFacturaPDF(
	ctx context.Context,
	empresaID, facturaID string,
) (pdfBytes []byte, filename string, err error) {
	// ── 1. Cargar factura ─────────────────────────────────────────────────────
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if factura == nil {
		return nil, "", domain.ErrNotFound
	}
	if factura.EmpresaID != empresaID {
		return nil, "", domain.ErrForbidden
	}

	// ── 2. Cargar líneas ──────────────────────────────────────────────────────
	lineas, err := uc.facturaRepo.GetLineasByFacturaID(facturaID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	factura.Lineas = lineas

	// ── 3. Cargar emisor y cliente ────────────────────────────────────────────
	emisor, err := uc.empresaRepo.GetByID(empresaID)
	if err != nil || emisor == nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	cliente, err := uc.clienteRepo.GetByID(factura.ClienteID)
	if err != nil || cliente == nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}

	// ── 4. Menciones obligatorias + generación ───────────────────────────────
	menciones := aeat.GenerarMencionesObligatorias(factura, emisor, cliente)

	pdfBytes, err = uc.generator.GenerarFacturaPDF(ctx, factura, emisor, cliente, menciones)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("factura_%s-%s.pdf", factura.Serie, factura.Numero)
	return pdfBytes, filename, nil
}

package facturacion

import (
	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/dto"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/aeat"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/fiscal"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/repository"
)

// PreviewUseCase calcula líneas, totales, menciones y validación sin
// persistir nada. El panel de totales del editor lo llama en cada cambio, así
// que acepta borradores incompletos: campos ausentes degradan a cero y los
// errores de validación se devuelven como datos, nunca como error.
type PreviewUseCase struct {
	clienteRepo repository.ClienteRepository
	empresaRepo repository.EmpresaRepository
}

// NewPreviewUseCase construye el caso de uso.
func NewPreviewUseCase(clienteRepo repository.ClienteRepository, empresaRepo repository.EmpresaRepository) *PreviewUseCase {
	return &PreviewUseCase{clienteRepo: clienteRepo, empresaRepo: empresaRepo}
}

// Calcular ejecuta el cálculo completo en memoria.
func (uc *PreviewUseCase) Calcular(empresaID string, in dto.PreviewFacturaRequest) (*dto.PreviewFacturaResponse, error) {
	var cliente *entity.Cliente
	if in.ClienteID != "" {
		// El cliente puede no existir todavía en un borrador a medias; se
		// ignora el error y se calcula sin él.
		cliente, _ = uc.clienteRepo.GetByID(in.ClienteID)
		if cliente != nil && cliente.EmpresaID != empresaID {
			cliente = nil
		}
	}
	emisor, _ := uc.empresaRepo.GetByID(empresaID)

	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.FacturaOrdinaria
		if in.EsRectificativa {
			tipo = entity.FacturaRectificativa
		}
	}

	factura := &entity.Factura{
		EmpresaID:          empresaID,
		Tipo:               tipo,
		Estado:             entity.EstadoBorrador,
		EsRectificativa:    in.EsRectificativa || tipo == entity.FacturaRectificativa,
		CausaRectificacion: in.CausaRectificacion,
	}
	if cliente != nil {
		factura.ClienteID = cliente.ID
	}
	if in.AplicarRetencion {
		pct := in.PorcentajeRetencion
		factura.PorcentajeRetencion = &pct
	}

	factura.Lineas = make([]entity.LineaFactura, 0, len(in.Lineas))
	for i, lr := range in.Lineas {
		linea := entity.LineaFactura{
			Orden:                  i + 1,
			Descripcion:            lr.Descripcion,
			Cantidad:               lr.Cantidad,
			PrecioUnitario:         lr.PrecioUnitario,
			DescuentoPct:           lr.DescuentoPct,
			TipoIVA:                lr.TipoIVA,
			Exenta:                 lr.Exenta,
			CausaExencion:          lr.CausaExencion,
			InversionSujetoPasivo:  lr.InversionSujetoPasivo,
			RecargoEquivalenciaPct: lr.RecargoEquivalenciaPct,
		}
		linea.AplicarResultado(fiscal.CalcularLinea(linea.Fiscal()))
		factura.Lineas = append(factura.Lineas, linea)
	}

	totales := fiscal.CalcularTotales(factura.LineasFiscales(), factura.Retencion())
	factura.AplicarTotales(totales)

	menciones := aeat.GenerarMencionesObligatorias(factura, emisor, cliente)
	validacion := aeat.ValidarFacturaPorTipo(factura, cliente)

	return &dto.PreviewFacturaResponse{
		Lineas:     toLineaResponses(factura.Lineas),
		Totales:    toTotalesResponse(totales),
		Menciones:  menciones,
		Validacion: validacion,
	}, nil
}

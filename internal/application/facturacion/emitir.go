package facturacion

import (
	"context"
	"time"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/dto"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/aeat"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/fiscal"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/repository"
)

// EmitirFacturaUseCase pasa una factura de borrador a emitida. A diferencia
// del guardado de borradores, la emisión exige que el asesor de cumplimiento
// no reporte ningún error.
type EmitirFacturaUseCase struct {
	txRunner    FacturaTxRunner
	facturaRepo repository.FacturaRepository
	clienteRepo repository.ClienteRepository
}

// NewEmitirFacturaUseCase construye el caso de uso.
func NewEmitirFacturaUseCase(
	txRunner FacturaTxRunner,
	facturaRepo repository.FacturaRepository,
	clienteRepo repository.ClienteRepository,
) *EmitirFacturaUseCase {
	return &EmitirFacturaUseCase{txRunner: txRunner, facturaRepo: facturaRepo, clienteRepo: clienteRepo}
}

// Emitir valida la factura por tipo y, si está limpia, recalcula totales y la
// marca como emitida.
//
// Retorna:
//   - (resp, nil, nil)                     emisión correcta.
//   - (nil, errores, ErrFacturaNoValida)   la validación encontró errores; la
//     factura sigue en borrador.
//   - (nil, nil, ErrFacturaEmitida)        ya estaba emitida.
func (uc *EmitirFacturaUseCase) Emitir(ctx context.Context, empresaID, facturaID string) (*dto.EmitirFacturaResponse, []string, error) {
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, nil, err
	}
	if factura == nil {
		return nil, nil, domain.ErrNotFound
	}
	if factura.EmpresaID != empresaID {
		return nil, nil, domain.ErrForbidden
	}
	if factura.Estado == entity.EstadoEmitida {
		return nil, nil, domain.ErrFacturaEmitida
	}

	lineas, err := uc.facturaRepo.GetLineasByFacturaID(facturaID)
	if err != nil {
		return nil, nil, err
	}
	factura.Lineas = lineas

	cliente, err := uc.clienteRepo.GetByID(factura.ClienteID)
	if err != nil {
		return nil, nil, err
	}

	if errores := aeat.ValidarFacturaPorTipo(factura, cliente); len(errores) > 0 {
		return nil, errores, domain.ErrFacturaNoValida
	}

	// Recalcular antes de congelar: los totales emitidos salen siempre del
	// núcleo fiscal, nunca de los importes guardados en el borrador.
	totales := fiscal.CalcularTotales(factura.LineasFiscales(), factura.Retencion())
	factura.AplicarTotales(totales)
	factura.Estado = entity.EstadoEmitida
	factura.UpdatedAt = time.Now()

	err = uc.txRunner.RunFacturacion(ctx, func(
		facturaRepo repository.FacturaRepository,
		_ repository.ClienteRepository,
	) error {
		if err := facturaRepo.Update(factura); err != nil {
			return err
		}
		return facturaRepo.ReplaceDesglose(facturaID, totales.BasesPorTipo)
	})
	if err != nil {
		return nil, nil, err
	}

	return &dto.EmitirFacturaResponse{ID: factura.ID, Estado: factura.Estado}, nil, nil
}

package facturacion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/dto"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/aeat"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/fiscal"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/repository"
)

// CrearFacturaUseCase crea facturas en estado borrador y las consulta.
// El borrador se guarda aunque el asesor de cumplimiento detecte errores;
// solo la emisión (EmitirFacturaUseCase) los bloquea.
type CrearFacturaUseCase struct {
	txRunner    FacturaTxRunner
	facturaRepo repository.FacturaRepository
	clienteRepo repository.ClienteRepository
	empresaRepo repository.EmpresaRepository
}

// NewCrearFacturaUseCase construye el caso de uso.
func NewCrearFacturaUseCase(
	txRunner FacturaTxRunner,
	facturaRepo repository.FacturaRepository,
	clienteRepo repository.ClienteRepository,
	empresaRepo repository.EmpresaRepository,
) *CrearFacturaUseCase {
	return &CrearFacturaUseCase{
		txRunner:    txRunner,
		facturaRepo: facturaRepo,
		clienteRepo: clienteRepo,
		empresaRepo: empresaRepo,
	}
}

func tipoFacturaValido(tipo string) bool {
	switch tipo {
	case entity.FacturaOrdinaria, entity.FacturaSimplificada, entity.FacturaRectificativa,
		entity.FacturaEmitida, entity.FacturaRecibida:
		return true
	}
	return false
}

// CrearFactura calcula líneas y totales con el núcleo fiscal y persiste
// cabecera (cfa), líneas (lab) y desglose por tipos (cfa_iva) en una sola
// transacción. Los importes nunca se toman del cliente HTTP: se recalculan
// siempre a partir de cantidad, precio, descuento y tipo.
func (uc *CrearFacturaUseCase) CrearFactura(ctx context.Context, empresaID string, in dto.CreateFacturaRequest) (*dto.FacturaResponse, error) {
	if in.ClienteID == "" || in.Serie == "" {
		return nil, domain.ErrInvalidInput
	}

	// Validar cliente y que sea de la empresa
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil || cliente == nil {
		return nil, domain.ErrNotFound
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}

	emisor, err := uc.empresaRepo.GetByID(empresaID)
	if err != nil || emisor == nil {
		return nil, domain.ErrNotFound
	}

	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.FacturaOrdinaria
		if in.EsRectificativa {
			tipo = entity.FacturaRectificativa
		}
	}
	if !tipoFacturaValido(tipo) {
		return nil, domain.ErrInvalidInput
	}
	esRectificativa := in.EsRectificativa || tipo == entity.FacturaRectificativa

	now := time.Now()
	fecha := now
	if in.Fecha != "" {
		fecha, err = time.Parse("2006-01-02", in.Fecha)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	numero := in.Numero
	if numero == "" {
		numero = fmt.Sprintf("%d", now.Unix())
	}
	existe, err := uc.facturaRepo.ExisteNumero(empresaID, in.Serie, numero)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrDuplicate
	}

	facturaID := uuid.New().String()
	factura := &entity.Factura{
		ID:                      facturaID,
		EmpresaID:               empresaID,
		ClienteID:               in.ClienteID,
		Serie:                   in.Serie,
		Numero:                  numero,
		Fecha:                   fecha,
		Tipo:                    tipo,
		Estado:                  entity.EstadoBorrador,
		EsRectificativa:         esRectificativa,
		CausaRectificacion:      in.CausaRectificacion,
		ReferenciasRectificadas: in.ReferenciasRectificadas,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if in.AplicarRetencion {
		pct := in.PorcentajeRetencion
		factura.PorcentajeRetencion = &pct
	}

	// Calcular cada línea y los totales con el núcleo fiscal
	factura.Lineas = make([]entity.LineaFactura, 0, len(in.Lineas))
	for i, lr := range in.Lineas {
		linea := entity.LineaFactura{
			ID:                     uuid.New().String(),
			FacturaID:              facturaID,
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
		if !fiscal.TipoIVA(lr.TipoIVA).Valido() {
			return nil, domain.ErrInvalidInput
		}
		linea.AplicarResultado(fiscal.CalcularLinea(linea.Fiscal()))
		factura.Lineas = append(factura.Lineas, linea)
	}
	totales := fiscal.CalcularTotales(factura.LineasFiscales(), factura.Retencion())
	factura.AplicarTotales(totales)

	// Persistir cabecera, líneas y desglose atómicamente
	err = uc.txRunner.RunFacturacion(ctx, func(
		facturaRepo repository.FacturaRepository,
		_ repository.ClienteRepository,
	) error {
		if err := facturaRepo.Create(factura); err != nil {
			return err
		}
		for i := range factura.Lineas {
			if err := facturaRepo.CreateLinea(&factura.Lineas[i]); err != nil {
				return err
			}
		}
		return facturaRepo.ReplaceDesglose(facturaID, totales.BasesPorTipo)
	})
	if err != nil {
		return nil, err
	}

	menciones := aeat.GenerarMencionesObligatorias(factura, emisor, cliente)
	return toFacturaResponse(factura, cliente, totales.BasesPorTipo, menciones), nil
}

// GetFactura devuelve la factura completa con líneas, desglose y menciones.
func (uc *CrearFacturaUseCase) GetFactura(empresaID, facturaID string) (*dto.FacturaResponse, error) {
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}
	if factura.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	lineas, err := uc.facturaRepo.GetLineasByFacturaID(facturaID)
	if err != nil {
		return nil, err
	}
	factura.Lineas = lineas

	desglose, err := uc.facturaRepo.GetDesglose(facturaID)
	if err != nil {
		return nil, err
	}

	cliente, err := uc.clienteRepo.GetByID(factura.ClienteID)
	if err != nil {
		return nil, err
	}
	emisor, err := uc.empresaRepo.GetByID(empresaID)
	if err != nil {
		return nil, err
	}

	menciones := aeat.GenerarMencionesObligatorias(factura, emisor, cliente)
	return toFacturaResponse(factura, cliente, desglose, menciones), nil
}

// ListFacturas lista cabeceras de la empresa (sin líneas ni menciones).
func (uc *CrearFacturaUseCase) ListFacturas(empresaID string, limit, offset int) ([]*dto.FacturaResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.facturaRepo.ListByEmpresa(empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FacturaResponse, 0, len(list))
	for _, f := range list {
		out = append(out, toFacturaResponse(f, nil, nil, nil))
	}
	return out, nil
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/fiscal"
)

// Tipos de factura (RD 1619/2012).
const (
	FacturaOrdinaria     = "ordinaria"
	FacturaSimplificada  = "simplificada"
	FacturaRectificativa = "rectificativa"
	FacturaEmitida       = "emitida"  // registro de factura emitida (libro registro)
	FacturaRecibida      = "recibida" // registro de factura recibida
)

// Estados del ciclo de vida de una factura.
const (
	EstadoBorrador = "borrador" // editable; se permite guardar con errores de validación
	EstadoEmitida  = "emitida"  // definitiva; la emisión exige validación limpia
)

// Factura representa la cabecera de una factura con sus totales persistidos.
// Los totales se calculan siempre con internal/domain/fiscal antes de guardar;
// el desglose por tipos vive en la tabla cfa_iva y las líneas en lab.
type Factura struct {
	ID        string
	EmpresaID string
	ClienteID string
	Serie     string
	Numero    string
	Fecha     time.Time

	Tipo   string // FacturaOrdinaria, FacturaSimplificada, ...
	Estado string // EstadoBorrador | EstadoEmitida

	// Rectificación: una rectificativa debe referenciar las facturas que
	// corrige (serie+número). CausaRectificacion es un código de pkg/aeat.
	EsRectificativa          bool
	CausaRectificacion       string
	ReferenciasRectificadas  []string

	// Totales (redundantes con las líneas; se recalculan al persistir).
	BaseImponibleTotal  decimal.Decimal
	CuotaIVATotal       decimal.Decimal
	CuotaRETotal        decimal.Decimal
	PorcentajeRetencion *decimal.Decimal // nil = sin retención IRPF
	ImporteRetencion    *decimal.Decimal
	TotalFactura        decimal.Decimal

	Lineas []LineaFactura

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AplicaRetencion indica si la cabecera eligió retención IRPF.
func (f *Factura) AplicaRetencion() bool {
	return f.PorcentajeRetencion != nil
}

// Retencion devuelve la elección de retención en el formato del núcleo fiscal.
func (f *Factura) Retencion() fiscal.Retencion {
	if f.PorcentajeRetencion == nil {
		return fiscal.Retencion{}
	}
	return fiscal.Retencion{Aplicar: true, Porcentaje: *f.PorcentajeRetencion}
}

// LineasFiscales convierte las líneas al objeto valor del núcleo de cálculo.
func (f *Factura) LineasFiscales() []fiscal.Linea {
	out := make([]fiscal.Linea, 0, len(f.Lineas))
	for _, l := range f.Lineas {
		out = append(out, l.Fiscal())
	}
	return out
}

// AplicarTotales vuelca unos totales calculados sobre la cabecera.
func (f *Factura) AplicarTotales(t fiscal.Totales) {
	f.BaseImponibleTotal = t.BaseImponibleTotal
	f.CuotaIVATotal = t.CuotaIVATotal
	f.CuotaRETotal = t.CuotaRETotal
	f.PorcentajeRetencion = t.PorcentajeRetencion
	f.ImporteRetencion = t.ImporteRetencion
	f.TotalFactura = t.TotalFactura
}

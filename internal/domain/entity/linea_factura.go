package entity

import (
	"github.com/shopspring/decimal"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/fiscal"
)

// LineaFactura representa una línea de detalle de una factura.
// Los importes calculados (base, cuotas, total) se guardan en la línea para
// mostrarlos sin recalcular, pero la fuente de verdad son los campos de
// entrada: el agregador fiscal recalcula siempre a partir de ellos.
type LineaFactura struct {
	ID        string
	FacturaID string
	Orden     int

	Descripcion    string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	DescuentoPct   decimal.Decimal
	TipoIVA        int // 0, 4, 10, 21

	Exenta                 bool
	CausaExencion          string
	InversionSujetoPasivo  bool
	RecargoEquivalenciaPct decimal.Decimal

	// Importes calculados por internal/domain/fiscal.
	BaseImponible decimal.Decimal
	CuotaIVA      decimal.Decimal
	CuotaRE       decimal.Decimal
	Total         decimal.Decimal
}

// Fiscal convierte la línea al objeto valor del núcleo de cálculo.
func (l LineaFactura) Fiscal() fiscal.Linea {
	return fiscal.Linea{
		Descripcion:            l.Descripcion,
		Cantidad:               l.Cantidad,
		PrecioUnitario:         l.PrecioUnitario,
		DescuentoPct:           l.DescuentoPct,
		TipoIVA:                fiscal.TipoIVA(l.TipoIVA),
		Exenta:                 l.Exenta,
		CausaExencion:          l.CausaExencion,
		InversionSujetoPasivo:  l.InversionSujetoPasivo,
		RecargoEquivalenciaPct: l.RecargoEquivalenciaPct,
	}
}

// AplicarResultado vuelca un resultado de cálculo sobre la línea.
func (l *LineaFactura) AplicarResultado(r fiscal.ResultadoLinea) {
	l.BaseImponible = r.BaseImponible
	l.CuotaIVA = r.CuotaIVA
	l.CuotaRE = r.CuotaRE
	l.Total = r.Total
}

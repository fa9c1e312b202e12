package fiscal

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CalcularTotales agrega las líneas de una factura y produce los totales.
//
// Las líneas se recalculan siempre desde sus campos de entrada, aunque el
// llamador las traiga con importes precalculados: el agregador no puede
// asumir cuál de las dos variantes recibe y recalcular es barato y puro.
//
// Reglas de agrupación:
//   - Las líneas exentas o con ISP quedan fuera del desglose por tipos, pero
//     su base sí suma en BaseImponibleTotal (el documento impreso muestra el
//     desglose por tipos separado de la nota de exención/ISP).
//   - Una línea con tipo 0 no exenta ni ISP sí forma su propia entrada de
//     tipo 0 en el desglose.
//   - El desglose se ordena por tipo ascendente.
//
// La retención IRPF es una elección de cabecera: se calcula sobre
// BaseImponibleTotal y se resta del total. Totales negativos (rectificativas)
// son válidos y no se recortan.
func CalcularTotales(lineas []Linea, ret Retencion) Totales {
	porTipo := make(map[TipoIVA]*BasePorTipo)
	var t Totales

	for _, l := range lineas {
		r := CalcularLinea(l)
		t.BaseImponibleTotal = t.BaseImponibleTotal.Add(r.BaseImponible)
		t.CuotaIVATotal = t.CuotaIVATotal.Add(r.CuotaIVA)
		t.CuotaRETotal = t.CuotaRETotal.Add(r.CuotaRE)

		if l.Exenta || l.InversionSujetoPasivo {
			continue
		}
		b, ok := porTipo[l.TipoIVA]
		if !ok {
			b = &BasePorTipo{TipoIVA: l.TipoIVA}
			porTipo[l.TipoIVA] = b
		}
		b.Base = b.Base.Add(r.BaseImponible)
		b.CuotaIVA = b.CuotaIVA.Add(r.CuotaIVA)
		b.CuotaRE = b.CuotaRE.Add(r.CuotaRE)
	}

	t.BasesPorTipo = make([]BasePorTipo, 0, len(porTipo))
	for _, b := range porTipo {
		t.BasesPorTipo = append(t.BasesPorTipo, *b)
	}
	sort.Slice(t.BasesPorTipo, func(i, j int) bool {
		return t.BasesPorTipo[i].TipoIVA < t.BasesPorTipo[j].TipoIVA
	})

	total := t.BaseImponibleTotal.Add(t.CuotaIVATotal).Add(t.CuotaRETotal)
	if ret.Aplicar {
		pct := ret.Porcentaje
		importe := round2(t.BaseImponibleTotal.Mul(pct).Div(cien))
		t.PorcentajeRetencion = &pct
		t.ImporteRetencion = &importe
		total = total.Sub(importe)
	}
	t.TotalFactura = round2(total)
	return t
}

// RetencionImporte devuelve el importe de retención o cero si no se aplicó.
func (t Totales) RetencionImporte() decimal.Decimal {
	if t.ImporteRetencion == nil {
		return decimal.Zero
	}
	return *t.ImporteRetencion
}

package fiscal

import "github.com/shopspring/decimal"

var cien = decimal.NewFromInt(100)

// round2 redondea a 2 decimales con "half away from zero" (shopspring Round).
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// BaseLinea calcula la base imponible de una línea:
// cantidad × precio unitario × (1 − descuento/100), redondeada a 2 decimales.
//
// No valida rangos: un descuento fuera de [0,100] o un precio negativo
// (rectificativas) producen la aritmética que corresponda. La validación de
// dominio es responsabilidad de internal/domain/aeat.
func BaseLinea(l Linea) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(l.DescuentoPct.Div(cien))
	return round2(l.Cantidad.Mul(l.PrecioUnitario).Mul(factor))
}

// CuotaIVALinea calcula la cuota de IVA de la línea sobre su base redondeada.
// Devuelve cero si la línea está exenta, lleva inversión del sujeto pasivo o
// su tipo es 0: estas tres condiciones anulan la cuota sea cual sea el tipo.
func CuotaIVALinea(l Linea) decimal.Decimal {
	if l.Exenta || l.InversionSujetoPasivo || l.TipoIVA == IVACero {
		return decimal.Zero
	}
	return round2(BaseLinea(l).Mul(l.TipoIVA.Porcentaje()).Div(cien))
}

// CuotaRELinea calcula la cuota de recargo de equivalencia de la línea.
// Devuelve cero si el porcentaje de recargo es cero. El recargo es ortogonal
// a la exención y al ISP: puede coexistir con una línea exenta.
func CuotaRELinea(l Linea) decimal.Decimal {
	if l.RecargoEquivalenciaPct.IsZero() {
		return decimal.Zero
	}
	return round2(BaseLinea(l).Mul(l.RecargoEquivalenciaPct).Div(cien))
}

// TotalLinea calcula el total de la línea: base + cuota IVA + cuota RE.
func TotalLinea(l Linea) decimal.Decimal {
	return round2(BaseLinea(l).Add(CuotaIVALinea(l)).Add(CuotaRELinea(l)))
}

// CalcularLinea computa los cuatro importes de una línea de una sola vez.
func CalcularLinea(l Linea) ResultadoLinea {
	base := BaseLinea(l)
	iva := CuotaIVALinea(l)
	re := CuotaRELinea(l)
	return ResultadoLinea{
		BaseImponible: base,
		CuotaIVA:      iva,
		CuotaRE:       re,
		Total:         round2(base.Add(iva).Add(re)),
	}
}

package fiscal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/fiscal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func lineaSimple(cantidad, precio string, tipo fiscal.TipoIVA) fiscal.Linea {
	return fiscal.Linea{
		Descripcion:    "Servicio",
		Cantidad:       dec(cantidad),
		PrecioUnitario: dec(precio),
		TipoIVA:        tipo,
	}
}

func assertDecEqual(t *testing.T, esperado string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(esperado).Equal(got),
		"esperado %s, obtenido %s — %v", esperado, got.String(), msgAndArgs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Base imponible
// ──────────────────────────────────────────────────────────────────────────────

func TestBaseLinea_SinDescuento(t *testing.T) {
	l := lineaSimple("1", "450", fiscal.IVAGeneral)
	assertDecEqual(t, "450.00", fiscal.BaseLinea(l))
}

func TestBaseLinea_ConDescuento(t *testing.T) {
	l := lineaSimple("2", "100", fiscal.IVAGeneral)
	l.DescuentoPct = dec("10")
	assertDecEqual(t, "180.00", fiscal.BaseLinea(l))
}

func TestBaseLinea_DescuentoTotal(t *testing.T) {
	l := lineaSimple("5", "99.99", fiscal.IVAGeneral)
	l.DescuentoPct = dec("100")
	assertDecEqual(t, "0.00", fiscal.BaseLinea(l))
}

func TestBaseLinea_RedondeoMitadHaciaFuera(t *testing.T) {
	// 3 × 1.115 = 3.345 → 3.35 (half away from zero, no banker's rounding)
	l := lineaSimple("3", "1.115", fiscal.IVAGeneral)
	assertDecEqual(t, "3.35", fiscal.BaseLinea(l))
}

func TestBaseLinea_NegativaEnRectificativa(t *testing.T) {
	// Escenario C del libro de casos: abono de 600 € al 21%.
	l := lineaSimple("1", "-600", fiscal.IVAGeneral)
	assertDecEqual(t, "-600.00", fiscal.BaseLinea(l))
	assertDecEqual(t, "-126.00", fiscal.CuotaIVALinea(l))
	assertDecEqual(t, "-726.00", fiscal.TotalLinea(l))
}

func TestBaseLinea_ValoresCeroNoFallan(t *testing.T) {
	// El editor llama al calculador con el borrador a medio teclear: una línea
	// vacía debe producir ceros, nunca un error ni un panic.
	var vacia fiscal.Linea
	assertDecEqual(t, "0.00", fiscal.BaseLinea(vacia))
	assertDecEqual(t, "0.00", fiscal.CuotaIVALinea(vacia))
	assertDecEqual(t, "0.00", fiscal.CuotaRELinea(vacia))
	assertDecEqual(t, "0.00", fiscal.TotalLinea(vacia))
}

// ──────────────────────────────────────────────────────────────────────────────
// Cuota de IVA
// ──────────────────────────────────────────────────────────────────────────────

func TestCuotaIVALinea_EscenarioBase(t *testing.T) {
	// Escenario A: 1 × 450 al 21% → base 450.00, cuota 94.50, total 544.50.
	l := lineaSimple("1", "450", fiscal.IVAGeneral)
	r := fiscal.CalcularLinea(l)
	assertDecEqual(t, "450.00", r.BaseImponible)
	assertDecEqual(t, "94.50", r.CuotaIVA)
	assertDecEqual(t, "0.00", r.CuotaRE)
	assertDecEqual(t, "544.50", r.Total)
}

func TestCuotaIVALinea_TodosLosTipos(t *testing.T) {
	casos := []struct {
		tipo   fiscal.TipoIVA
		esperada string
	}{
		{fiscal.IVACero, "0.00"},
		{fiscal.IVASuperreducido, "4.00"},
		{fiscal.IVAReducido, "10.00"},
		{fiscal.IVAGeneral, "21.00"},
	}
	for _, c := range casos {
		l := lineaSimple("1", "100", c.tipo)
		assertDecEqual(t, c.esperada, fiscal.CuotaIVALinea(l), "tipo %d", c.tipo)
	}
}

func TestCuotaIVALinea_ExencionAnulaCuota(t *testing.T) {
	l := lineaSimple("1", "1000", fiscal.IVAGeneral)
	l.Exenta = true
	l.CausaExencion = "art20"
	assertDecEqual(t, "0.00", fiscal.CuotaIVALinea(l))
	assertDecEqual(t, "1000.00", fiscal.TotalLinea(l))
}

func TestCuotaIVALinea_ISPAnulaCuota(t *testing.T) {
	// Escenario D: ISP con tipo 21 — la cuota es cero pese al tipo.
	l := lineaSimple("1", "1000", fiscal.IVAGeneral)
	l.InversionSujetoPasivo = true
	assertDecEqual(t, "1000.00", fiscal.BaseLinea(l))
	assertDecEqual(t, "0.00", fiscal.CuotaIVALinea(l))
	assertDecEqual(t, "1000.00", fiscal.TotalLinea(l))
}

// ──────────────────────────────────────────────────────────────────────────────
// Recargo de equivalencia
// ──────────────────────────────────────────────────────────────────────────────

func TestCuotaRELinea_RecargoGeneral(t *testing.T) {
	l := lineaSimple("1", "100", fiscal.IVAGeneral)
	l.RecargoEquivalenciaPct = dec("5.2")
	assertDecEqual(t, "5.20", fiscal.CuotaRELinea(l))
	assertDecEqual(t, "126.20", fiscal.TotalLinea(l))
}

func TestCuotaRELinea_SinRecargo(t *testing.T) {
	l := lineaSimple("1", "100", fiscal.IVAGeneral)
	assertDecEqual(t, "0.00", fiscal.CuotaRELinea(l))
}

func TestCuotaRELinea_OrtogonalAExencion(t *testing.T) {
	// Combinación preservada tal cual de la aplicación original: una línea
	// exenta puede llevar recargo; el calculador no lo prohíbe.
	l := lineaSimple("1", "200", fiscal.IVAGeneral)
	l.Exenta = true
	l.CausaExencion = "art20"
	l.RecargoEquivalenciaPct = dec("5.2")
	assertDecEqual(t, "0.00", fiscal.CuotaIVALinea(l))
	assertDecEqual(t, "10.40", fiscal.CuotaRELinea(l))
}

// ──────────────────────────────────────────────────────────────────────────────
// Pureza
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularLinea_Idempotente(t *testing.T) {
	l := lineaSimple("3", "33.333", fiscal.IVAReducido)
	l.DescuentoPct = dec("7.5")
	r1 := fiscal.CalcularLinea(l)
	r2 := fiscal.CalcularLinea(l)
	assert.True(t, r1.Total.Equal(r2.Total), "el mismo input debe producir el mismo total")
	assert.True(t, r1.BaseImponible.Equal(r2.BaseImponible))
	assert.True(t, r1.CuotaIVA.Equal(r2.CuotaIVA))
}

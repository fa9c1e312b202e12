package fiscal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/fiscal"
)

func TestCalcularTotales_SinLineas(t *testing.T) {
	tot := fiscal.CalcularTotales(nil, fiscal.Retencion{})
	assertDecEqual(t, "0.00", tot.BaseImponibleTotal)
	assertDecEqual(t, "0.00", tot.CuotaIVATotal)
	assertDecEqual(t, "0.00", tot.CuotaRETotal)
	assertDecEqual(t, "0.00", tot.TotalFactura)
	assert.Empty(t, tot.BasesPorTipo)
	assert.Nil(t, tot.PorcentajeRetencion)
	assert.Nil(t, tot.ImporteRetencion)
}

func TestCalcularTotales_UnSoloTipo(t *testing.T) {
	// Escenario B: 450 + 200 + 200 al 21% → base 850.00, cuota 178.50,
	// una única entrada de desglose y total 1028.50.
	lineas := []fiscal.Linea{
		lineaSimple("1", "450", fiscal.IVAGeneral),
		lineaSimple("1", "200", fiscal.IVAGeneral),
		lineaSimple("1", "200", fiscal.IVAGeneral),
	}
	tot := fiscal.CalcularTotales(lineas, fiscal.Retencion{})

	assertDecEqual(t, "850.00", tot.BaseImponibleTotal)
	assertDecEqual(t, "178.50", tot.CuotaIVATotal)
	assertDecEqual(t, "1028.50", tot.TotalFactura)

	require.Len(t, tot.BasesPorTipo, 1)
	assert.Equal(t, fiscal.IVAGeneral, tot.BasesPorTipo[0].TipoIVA)
	assertDecEqual(t, "850.00", tot.BasesPorTipo[0].Base)
	assertDecEqual(t, "178.50", tot.BasesPorTipo[0].CuotaIVA)
	assertDecEqual(t, "0.00", tot.BasesPorTipo[0].CuotaRE)
}

func TestCalcularTotales_DesgloseOrdenadoAscendente(t *testing.T) {
	lineas := []fiscal.Linea{
		lineaSimple("1", "100", fiscal.IVAGeneral),
		lineaSimple("1", "100", fiscal.IVASuperreducido),
		lineaSimple("1", "100", fiscal.IVAReducido),
	}
	tot := fiscal.CalcularTotales(lineas, fiscal.Retencion{})

	require.Len(t, tot.BasesPorTipo, 3)
	assert.Equal(t, fiscal.IVASuperreducido, tot.BasesPorTipo[0].TipoIVA)
	assert.Equal(t, fiscal.IVAReducido, tot.BasesPorTipo[1].TipoIVA)
	assert.Equal(t, fiscal.IVAGeneral, tot.BasesPorTipo[2].TipoIVA)
}

func TestCalcularTotales_Tipo0FormaSuPropiaEntrada(t *testing.T) {
	// Una línea a tipo 0 sin exención ni ISP sí aparece en el desglose.
	lineas := []fiscal.Linea{lineaSimple("1", "100", fiscal.IVACero)}
	tot := fiscal.CalcularTotales(lineas, fiscal.Retencion{})

	require.Len(t, tot.BasesPorTipo, 1)
	assert.Equal(t, fiscal.IVACero, tot.BasesPorTipo[0].TipoIVA)
	assertDecEqual(t, "100.00", tot.BasesPorTipo[0].Base)
	assertDecEqual(t, "0.00", tot.BasesPorTipo[0].CuotaIVA)
}

func TestCalcularTotales_ExentasFueraDelDesglosePeroEnElTotal(t *testing.T) {
	// Las líneas exentas y con ISP no se atribuyen a ningún tipo, pero su
	// base sí cuenta en BaseImponibleTotal (comportamiento del original:
	// el impreso muestra el desglose separado de la nota de exención).
	exenta := lineaSimple("1", "300", fiscal.IVAGeneral)
	exenta.Exenta = true
	exenta.CausaExencion = "art20"
	isp := lineaSimple("1", "200", fiscal.IVAGeneral)
	isp.InversionSujetoPasivo = true

	lineas := []fiscal.Linea{
		lineaSimple("1", "100", fiscal.IVAGeneral),
		exenta,
		isp,
	}
	tot := fiscal.CalcularTotales(lineas, fiscal.Retencion{})

	assertDecEqual(t, "600.00", tot.BaseImponibleTotal)
	assertDecEqual(t, "21.00", tot.CuotaIVATotal)
	require.Len(t, tot.BasesPorTipo, 1)
	assert.Equal(t, fiscal.IVAGeneral, tot.BasesPorTipo[0].TipoIVA)
	assertDecEqual(t, "100.00", tot.BasesPorTipo[0].Base)
	assertDecEqual(t, "621.00", tot.TotalFactura)
}

func TestCalcularTotales_Aditividad(t *testing.T) {
	lineas := []fiscal.Linea{
		lineaSimple("3", "33.33", fiscal.IVAGeneral),
		lineaSimple("2", "17.99", fiscal.IVAReducido),
		lineaSimple("1", "0.05", fiscal.IVASuperreducido),
	}
	suma := decimal.Zero
	for _, l := range lineas {
		suma = suma.Add(fiscal.BaseLinea(l))
	}
	tot := fiscal.CalcularTotales(lineas, fiscal.Retencion{})
	assert.True(t, suma.Equal(tot.BaseImponibleTotal),
		"la suma de bases por línea (%s) debe coincidir con el total (%s)",
		suma.String(), tot.BaseImponibleTotal.String())
}

func TestCalcularTotales_RetencionIRPF(t *testing.T) {
	// Retención del 15% sobre una base de 1000: total = 1000 + 210 − 150.
	lineas := []fiscal.Linea{lineaSimple("1", "1000", fiscal.IVAGeneral)}
	tot := fiscal.CalcularTotales(lineas, fiscal.Retencion{Aplicar: true, Porcentaje: dec("15")})

	require.NotNil(t, tot.PorcentajeRetencion)
	require.NotNil(t, tot.ImporteRetencion)
	assertDecEqual(t, "15", *tot.PorcentajeRetencion)
	assertDecEqual(t, "150.00", *tot.ImporteRetencion)
	assertDecEqual(t, "1060.00", tot.TotalFactura)

	// El total con retención siempre es menor que sin ella.
	sinRet := tot.BaseImponibleTotal.Add(tot.CuotaIVATotal).Add(tot.CuotaRETotal)
	assert.True(t, tot.TotalFactura.LessThan(sinRet))
}

func TestCalcularTotales_RetencionNoSolicitada(t *testing.T) {
	lineas := []fiscal.Linea{lineaSimple("1", "1000", fiscal.IVAGeneral)}
	tot := fiscal.CalcularTotales(lineas, fiscal.Retencion{})
	assert.Nil(t, tot.PorcentajeRetencion)
	assert.Nil(t, tot.ImporteRetencion)
	assertDecEqual(t, "0.00", tot.RetencionImporte())
	assertDecEqual(t, "1210.00", tot.TotalFactura)
}

func TestCalcularTotales_RectificativaNegativa(t *testing.T) {
	// Los totales negativos de una rectificativa no se recortan a cero.
	lineas := []fiscal.Linea{lineaSimple("1", "-600", fiscal.IVAGeneral)}
	tot := fiscal.CalcularTotales(lineas, fiscal.Retencion{})
	assertDecEqual(t, "-600.00", tot.BaseImponibleTotal)
	assertDecEqual(t, "-126.00", tot.CuotaIVATotal)
	assertDecEqual(t, "-726.00", tot.TotalFactura)
}

func TestCalcularTotales_RecalculaSiempreDesdeLaEntrada(t *testing.T) {
	// El agregador ignora cualquier importe precalculado que traiga la línea:
	// dos llamadas con el mismo input producen exactamente el mismo output.
	lineas := []fiscal.Linea{
		lineaSimple("2", "49.99", fiscal.IVAGeneral),
		lineaSimple("4", "12.50", fiscal.IVAReducido),
	}
	t1 := fiscal.CalcularTotales(lineas, fiscal.Retencion{})
	t2 := fiscal.CalcularTotales(lineas, fiscal.Retencion{})
	assert.True(t, t1.TotalFactura.Equal(t2.TotalFactura))
	assert.Equal(t, len(t1.BasesPorTipo), len(t2.BasesPorTipo))
}

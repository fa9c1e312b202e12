package aeat_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/aeat"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	pkgaeat "github.com/Mackewinsson/facturacion-module-sub000/pkg/aeat"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func emisorES() *entity.Empresa {
	return &entity.Empresa{RazonSocial: "Ejemplo SL", NIF: "B12345674", Pais: "ES"}
}

func clienteEn(pais string) *entity.Cliente {
	return &entity.Cliente{Nombre: "Cliente", Tipo: entity.ClienteParticular, Pais: pais}
}

func facturaConLineas(lineas ...entity.LineaFactura) *entity.Factura {
	return &entity.Factura{
		Tipo:   entity.FacturaOrdinaria,
		Estado: entity.EstadoBorrador,
		Lineas: lineas,
	}
}

func lineaNormal() entity.LineaFactura {
	return entity.LineaFactura{
		Descripcion:    "Servicio de consultoría",
		Cantidad:       decimal.NewFromInt(1),
		PrecioUnitario: decimal.NewFromInt(100),
		TipoIVA:        21,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Menciones obligatorias
// ──────────────────────────────────────────────────────────────────────────────

func TestMenciones_SinReglasAplicables(t *testing.T) {
	f := facturaConLineas(lineaNormal())
	menciones := aeat.GenerarMencionesObligatorias(f, emisorES(), clienteEn("ES"))
	assert.Empty(t, menciones)
}

func TestMenciones_ISP(t *testing.T) {
	isp := lineaNormal()
	isp.InversionSujetoPasivo = true
	f := facturaConLineas(lineaNormal(), isp)

	menciones := aeat.GenerarMencionesObligatorias(f, emisorES(), clienteEn("ES"))
	assert.Contains(t, menciones, aeat.MencionISP)
}

func TestMenciones_ISPUnaSolaVezAunqueHayaVariasLineas(t *testing.T) {
	isp1, isp2 := lineaNormal(), lineaNormal()
	isp1.InversionSujetoPasivo = true
	isp2.InversionSujetoPasivo = true
	f := facturaConLineas(isp1, isp2)

	menciones := aeat.GenerarMencionesObligatorias(f, emisorES(), clienteEn("ES"))
	vistas := 0
	for _, m := range menciones {
		if m == aeat.MencionISP {
			vistas++
		}
	}
	assert.Equal(t, 1, vistas, "la mención ISP debe emitirse una sola vez")
}

func TestMenciones_UnaPorCausaDeExencionDistinta(t *testing.T) {
	e1, e2, e3 := lineaNormal(), lineaNormal(), lineaNormal()
	e1.Exenta, e1.CausaExencion = true, pkgaeat.ExencionArt20
	e2.Exenta, e2.CausaExencion = true, pkgaeat.ExencionArt21
	e3.Exenta, e3.CausaExencion = true, pkgaeat.ExencionArt20 // repetida
	f := facturaConLineas(e1, e2, e3)

	menciones := aeat.GenerarMencionesObligatorias(f, emisorES(), clienteEn("ES"))
	require.Len(t, menciones, 2)
	assert.Equal(t, pkgaeat.TextoExencion(pkgaeat.ExencionArt20), menciones[0])
	assert.Equal(t, pkgaeat.TextoExencion(pkgaeat.ExencionArt21), menciones[1])
}

func TestMenciones_OperacionIntracomunitaria(t *testing.T) {
	f := facturaConLineas(lineaNormal())
	menciones := aeat.GenerarMencionesObligatorias(f, emisorES(), clienteEn("FR"))
	assert.Contains(t, menciones, aeat.MencionIntracomunitaria)
	assert.NotContains(t, menciones, aeat.MencionExportacion)
}

func TestMenciones_Exportacion(t *testing.T) {
	f := facturaConLineas(lineaNormal())
	menciones := aeat.GenerarMencionesObligatorias(f, emisorES(), clienteEn("US"))
	assert.Contains(t, menciones, aeat.MencionExportacion)
	assert.NotContains(t, menciones, aeat.MencionIntracomunitaria)
}

func TestMenciones_ClienteNacionalNoGeneraMencionDeDestino(t *testing.T) {
	f := facturaConLineas(lineaNormal())
	menciones := aeat.GenerarMencionesObligatorias(f, emisorES(), clienteEn("es"))
	assert.NotContains(t, menciones, aeat.MencionIntracomunitaria)
	assert.NotContains(t, menciones, aeat.MencionExportacion)
}

func TestMenciones_RectificativaConCausa(t *testing.T) {
	f := facturaConLineas(lineaNormal())
	f.EsRectificativa = true
	f.CausaRectificacion = pkgaeat.RectificacionDevolucion
	f.ReferenciasRectificadas = []string{"A-2026-0012"}

	menciones := aeat.GenerarMencionesObligatorias(f, emisorES(), clienteEn("ES"))
	require.GreaterOrEqual(t, len(menciones), 2)
	assert.Contains(t, menciones, aeat.MencionRectificativa)
	assert.Contains(t, menciones, pkgaeat.TextoRectificacion(pkgaeat.RectificacionDevolucion))
}

func TestMenciones_Simplificada(t *testing.T) {
	f := facturaConLineas(lineaNormal())
	f.Tipo = entity.FacturaSimplificada
	menciones := aeat.GenerarMencionesObligatorias(f, emisorES(), clienteEn("ES"))
	assert.Contains(t, menciones, aeat.MencionSimplificada)
}

func TestMenciones_OrdenDeDeclaracionDeReglas(t *testing.T) {
	// ISP (regla 1) debe preceder a la exención (regla 2) y esta a la
	// mención de destino (reglas 3/4), independientemente del orden de líneas.
	exenta := lineaNormal()
	exenta.Exenta, exenta.CausaExencion = true, pkgaeat.ExencionArt20
	isp := lineaNormal()
	isp.InversionSujetoPasivo = true
	f := facturaConLineas(exenta, isp)

	menciones := aeat.GenerarMencionesObligatorias(f, emisorES(), clienteEn("DE"))
	require.Len(t, menciones, 3)
	assert.Equal(t, aeat.MencionISP, menciones[0])
	assert.Equal(t, pkgaeat.TextoExencion(pkgaeat.ExencionArt20), menciones[1])
	assert.Equal(t, aeat.MencionIntracomunitaria, menciones[2])
}

func TestMenciones_FacturaNilDevuelveListaVacia(t *testing.T) {
	assert.Empty(t, aeat.GenerarMencionesObligatorias(nil, emisorES(), clienteEn("ES")))
}

package aeat_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/aeat"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
)

func clienteEmpresario(nif string) *entity.Cliente {
	return &entity.Cliente{Nombre: "Acme SA", Tipo: entity.ClienteEmpresario, NIF: nif, Pais: "ES"}
}

func TestValidar_FacturaCorrectaSinErrores(t *testing.T) {
	f := facturaConLineas(lineaNormal())
	errores := aeat.ValidarFacturaPorTipo(f, clienteEmpresario("B12345674"))
	assert.Empty(t, errores)
}

func TestValidar_RectificativaSinReferencias(t *testing.T) {
	f := facturaConLineas(lineaNormal())
	f.EsRectificativa = true

	errores := aeat.ValidarFacturaPorTipo(f, clienteEn("ES"))
	require.NotEmpty(t, errores)
	assert.Contains(t, errores, aeat.ErrorFacturasRectificadas)
}

func TestValidar_RectificativaPorTipoSinFlag(t *testing.T) {
	// Basta con que el tipo sea rectificativa aunque el flag no esté puesto.
	f := facturaConLineas(lineaNormal())
	f.Tipo = entity.FacturaRectificativa

	errores := aeat.ValidarFacturaPorTipo(f, clienteEn("ES"))
	assert.Contains(t, errores, aeat.ErrorFacturasRectificadas)
}

func TestValidar_RectificativaConReferenciasNoDaEseError(t *testing.T) {
	f := facturaConLineas(lineaNormal())
	f.EsRectificativa = true
	f.ReferenciasRectificadas = []string{"A-2026-0007"}

	errores := aeat.ValidarFacturaPorTipo(f, clienteEn("ES"))
	assert.NotContains(t, errores, aeat.ErrorFacturasRectificadas)
}

func TestValidar_EmpresarioSinNIF(t *testing.T) {
	f := facturaConLineas(lineaNormal())
	errores := aeat.ValidarFacturaPorTipo(f, clienteEmpresario("  "))
	assert.Contains(t, errores, aeat.ErrorNIFEmpresario)
}

func TestValidar_ParticularSinNIFEsValido(t *testing.T) {
	f := facturaConLineas(lineaNormal())
	errores := aeat.ValidarFacturaPorTipo(f, clienteEn("ES"))
	assert.NotContains(t, errores, aeat.ErrorNIFEmpresario)
}

func TestValidar_SimplificadaSobreLimiteConEmpresario(t *testing.T) {
	f := facturaConLineas(lineaNormal())
	f.Tipo = entity.FacturaSimplificada
	f.TotalFactura = decimal.NewFromFloat(400.01)

	errores := aeat.ValidarFacturaPorTipo(f, clienteEmpresario("B12345674"))
	assert.Contains(t, errores, aeat.ErrorLimiteSimplificada)
}

func TestValidar_SimplificadaEnElLimiteExacto(t *testing.T) {
	// 400,00 € justos no supera el límite.
	f := facturaConLineas(lineaNormal())
	f.Tipo = entity.FacturaSimplificada
	f.TotalFactura = decimal.NewFromInt(400)

	errores := aeat.ValidarFacturaPorTipo(f, clienteEmpresario("B12345674"))
	assert.NotContains(t, errores, aeat.ErrorLimiteSimplificada)
}

func TestValidar_SimplificadaSobreLimiteConParticularEsValida(t *testing.T) {
	f := facturaConLineas(lineaNormal())
	f.Tipo = entity.FacturaSimplificada
	f.TotalFactura = decimal.NewFromInt(900)

	errores := aeat.ValidarFacturaPorTipo(f, clienteEn("ES"))
	assert.NotContains(t, errores, aeat.ErrorLimiteSimplificada)
}

func TestValidar_LineaSinDescripcion(t *testing.T) {
	conDesc := lineaNormal()
	sinDesc := lineaNormal()
	sinDesc.Descripcion = "   "
	f := facturaConLineas(conDesc, sinDesc)

	errores := aeat.ValidarFacturaPorTipo(f, clienteEn("ES"))
	require.Len(t, errores, 1)
	assert.Equal(t, "La línea 2 no tiene descripción", errores[0])
}

func TestValidar_AcumulaTodosLosErrores(t *testing.T) {
	// Política de acumulación local: todos los errores aplicables se
	// devuelven juntos para que la UI los muestre de una vez.
	sinDesc := lineaNormal()
	sinDesc.Descripcion = ""
	f := facturaConLineas(sinDesc)
	f.EsRectificativa = true

	errores := aeat.ValidarFacturaPorTipo(f, clienteEmpresario(""))
	assert.Len(t, errores, 3)
}

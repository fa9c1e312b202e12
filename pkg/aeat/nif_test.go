package aeat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mackewinsson/facturacion-module-sub000/pkg/aeat"
)

func TestValidarNIF_DNIValido(t *testing.T) {
	assert.NoError(t, aeat.ValidarNIF("12345678Z"))
	assert.NoError(t, aeat.ValidarNIF("12345678-z"), "acepta guiones y minúsculas")
}

func TestValidarNIF_DNILetraIncorrecta(t *testing.T) {
	assert.Error(t, aeat.ValidarNIF("12345678A"))
}

func TestValidarNIF_NIEValido(t *testing.T) {
	assert.NoError(t, aeat.ValidarNIF("X1234567L"))
}

func TestValidarNIF_NIELetraIncorrecta(t *testing.T) {
	assert.Error(t, aeat.ValidarNIF("X1234567T"))
}

func TestValidarNIF_CIFValido(t *testing.T) {
	assert.NoError(t, aeat.ValidarNIF("B12345674"))
}

func TestValidarNIF_CIFControlIncorrecto(t *testing.T) {
	assert.Error(t, aeat.ValidarNIF("B12345670"))
}

func TestValidarNIF_LongitudIncorrecta(t *testing.T) {
	assert.Error(t, aeat.ValidarNIF(""))
	assert.Error(t, aeat.ValidarNIF("1234"))
	assert.Error(t, aeat.ValidarNIF("12345678Z9"))
}

func TestEsUE(t *testing.T) {
	assert.True(t, aeat.EsUE("ES"))
	assert.True(t, aeat.EsUE("fr"), "insensible a mayúsculas")
	assert.True(t, aeat.EsUE(" de "), "ignora espacios")
	assert.False(t, aeat.EsUE("US"))
	assert.False(t, aeat.EsUE("GB"), "Reino Unido ya no es UE")
	assert.False(t, aeat.EsUE(""))
}

func TestTextoExencion_CausaDesconocidaCaeEnGenerico(t *testing.T) {
	assert.Equal(t, aeat.TextosExencion[aeat.ExencionOtros], aeat.TextoExencion("desconocida"))
}

func TestTextoRectificacion_CausaDesconocidaVacia(t *testing.T) {
	assert.Equal(t, "", aeat.TextoRectificacion("desconocida"))
	assert.NotEqual(t, "", aeat.TextoRectificacion(aeat.RectificacionError))
}

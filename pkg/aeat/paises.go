package aeat

import "strings"

// Estados miembros de la UE (códigos ISO 3166-1 alfa-2). Determina si una
// operación con un cliente extranjero es intracomunitaria o exportación.
var paisesUE = map[string]bool{
	"AT": true, "BE": true, "BG": true, "CY": true, "CZ": true,
	"DE": true, "DK": true, "EE": true, "ES": true, "FI": true,
	"FR": true, "GR": true, "HR": true, "HU": true, "IE": true,
	"IT": true, "LT": true, "LU": true, "LV": true, "MT": true,
	"NL": true, "PL": true, "PT": true, "RO": true, "SE": true,
	"SI": true, "SK": true,
}

// EsUE indica si el código de país pertenece a la Unión Europea.
// Acepta códigos en cualquier capitalización; cadena vacía devuelve false.
func EsUE(pais string) bool {
	return paisesUE[NormalizarPais(pais)]
}

// NormalizarPais devuelve el código ISO en mayúsculas sin espacios.
func NormalizarPais(pais string) string {
	return strings.ToUpper(strings.TrimSpace(pais))
}

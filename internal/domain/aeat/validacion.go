package aeat

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	pkgaeat "github.com/Mackewinsson/facturacion-module-sub000/pkg/aeat"
)

// Mensajes de validación. Se devuelven como strings acumulados, nunca como
// error ni panic: el llamador decide la política (guardar borrador se permite
// con errores; la emisión definitiva no).
const (
	ErrorFacturasRectificadas = "Debe indicar las facturas rectificadas"
	ErrorNIFEmpresario        = "El cliente empresario o profesional debe identificarse con NIF"
	ErrorLimiteSimplificada   = "La factura simplificada supera el límite de 400 € (IVA incluido) para destinatarios empresarios o profesionales"
)

var limiteSimplificada = decimal.NewFromInt(pkgaeat.LimiteFacturaSimplificada)

// ValidarFacturaPorTipo comprueba los invariantes propios de cada tipo de
// factura y devuelve todos los errores aplicables a la vez, para que la UI
// pueda mostrarlos juntos. Lista vacía = factura válida.
func ValidarFacturaPorTipo(f *entity.Factura, cliente *entity.Cliente) []string {
	var errores []string
	if f == nil {
		return errores
	}

	// Rectificativa: debe referenciar las facturas que corrige.
	if (f.EsRectificativa || f.Tipo == entity.FacturaRectificativa) && len(f.ReferenciasRectificadas) == 0 {
		errores = append(errores, ErrorFacturasRectificadas)
	}

	// Ordinaria o simplificada con destinatario empresario: NIF obligatorio.
	if (f.Tipo == entity.FacturaOrdinaria || f.Tipo == entity.FacturaSimplificada) &&
		cliente.EsEmpresario() && strings.TrimSpace(cliente.NIF) == "" {
		errores = append(errores, ErrorNIFEmpresario)
	}

	// Simplificada por encima del límite legal con destinatario empresario.
	// La fuente lo trata con la misma severidad que el resto; no se degrada
	// a aviso para no perderlo en la emisión.
	if f.Tipo == entity.FacturaSimplificada && cliente.EsEmpresario() &&
		f.TotalFactura.GreaterThan(limiteSimplificada) {
		errores = append(errores, ErrorLimiteSimplificada)
	}

	// Toda línea debe llevar descripción.
	for i, l := range f.Lineas {
		if strings.TrimSpace(l.Descripcion) == "" {
			errores = append(errores, fmt.Sprintf("La línea %d no tiene descripción", i+1))
		}
	}

	return errores
}

// Package aeat deriva las menciones legales obligatorias y las validaciones
// por tipo de factura según el Reglamento de facturación español
// (RD 1619/2012) y la Ley 37/1992 del IVA. Usa los catálogos de pkg/aeat.
package aeat

import (
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	pkgaeat "github.com/Mackewinsson/facturacion-module-sub000/pkg/aeat"
)

// Menciones literales que no dependen de catálogo.
const (
	MencionISP              = "Factura con inversión del sujeto pasivo"
	MencionIntracomunitaria = "Operación intracomunitaria — facturación exenta de IVA"
	MencionExportacion      = "Exportación — operación exenta de IVA"
	MencionRectificativa    = "Factura rectificativa"
	MencionSimplificada     = "Factura simplificada: no es obligatoria la identificación del destinatario (art. 7.1 RD 1619/2012)"
)

// GenerarMencionesObligatorias deriva la lista de menciones legales que deben
// aparecer en el documento impreso. Cada regla se evalúa con independencia de
// las demás y todas las que apliquen se incluyen, en el orden de declaración
// de las reglas. La función es pura: lee la factura materializada (cabecera,
// líneas post-cálculo) y los datos de emisor y cliente, y no valida nada (eso
// es ValidarFacturaPorTipo).
func GenerarMencionesObligatorias(f *entity.Factura, emisor *entity.Empresa, cliente *entity.Cliente) []string {
	var menciones []string
	if f == nil {
		return menciones
	}

	// 1. Inversión del sujeto pasivo en cualquier línea.
	for _, l := range f.Lineas {
		if l.InversionSujetoPasivo {
			menciones = append(menciones, MencionISP)
			break
		}
	}

	// 2. Una mención por cada causa de exención distinta, en orden de aparición.
	vistas := make(map[string]bool)
	for _, l := range f.Lineas {
		if !l.Exenta || vistas[l.CausaExencion] {
			continue
		}
		vistas[l.CausaExencion] = true
		menciones = append(menciones, pkgaeat.TextoExencion(l.CausaExencion))
	}

	// 3 y 4. Destino de la operación: intracomunitaria o exportación.
	if emisor != nil && cliente != nil && cliente.Pais != "" {
		paisCliente := pkgaeat.NormalizarPais(cliente.Pais)
		paisEmisor := pkgaeat.NormalizarPais(emisor.Pais)
		switch {
		case paisCliente != paisEmisor && pkgaeat.EsUE(paisCliente) && pkgaeat.EsUE(paisEmisor):
			menciones = append(menciones, MencionIntracomunitaria)
		case !pkgaeat.EsUE(paisCliente):
			menciones = append(menciones, MencionExportacion)
		}
	}

	// 5. Rectificativa: mención fija más el texto legal de la causa.
	if f.EsRectificativa || f.Tipo == entity.FacturaRectificativa {
		menciones = append(menciones, MencionRectificativa)
		if texto := pkgaeat.TextoRectificacion(f.CausaRectificacion); texto != "" {
			menciones = append(menciones, texto)
		}
	}

	// 6. Simplificada.
	if f.Tipo == entity.FacturaSimplificada {
		menciones = append(menciones, MencionSimplificada)
	}

	return menciones
}

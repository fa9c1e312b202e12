// Package aeat contiene catálogos y validaciones de facturación española
// según el Reglamento de facturación (RD 1619/2012) y la Ley 37/1992 del IVA.
package aeat

// =============================================================================
// Causas de exención de IVA (Ley 37/1992). El código se guarda en la línea;
// el texto legal es la mención obligatoria que debe aparecer impresa.
// =============================================================================

const (
	ExencionArt20 = "art20" // Exenciones en operaciones interiores (sanidad, educación...)
	ExencionArt21 = "art21" // Exportaciones de bienes
	ExencionArt22 = "art22" // Operaciones asimiladas a las exportaciones
	ExencionArt25 = "art25" // Entregas intracomunitarias de bienes
	ExencionArt69 = "art69" // Reglas de localización: operación no sujeta en el TAI
	ExencionOtros = "otros" // Otras causas (texto genérico)
)

// TextosExencion mapea cada causa de exención a su mención legal impresa.
var TextosExencion = map[string]string{
	ExencionArt20: "Operación exenta de IVA conforme al artículo 20 de la Ley 37/1992",
	ExencionArt21: "Operación exenta de IVA conforme al artículo 21 de la Ley 37/1992 (exportación)",
	ExencionArt22: "Operación exenta de IVA conforme al artículo 22 de la Ley 37/1992",
	ExencionArt25: "Operación exenta de IVA conforme al artículo 25 de la Ley 37/1992 (entrega intracomunitaria)",
	ExencionArt69: "Operación no sujeta a IVA por reglas de localización (artículos 69 y 70 de la Ley 37/1992)",
	ExencionOtros: "Operación exenta de IVA",
}

// TextoExencion devuelve la mención legal de una causa de exención.
// Causas desconocidas caen en el texto genérico.
func TextoExencion(causa string) string {
	if t, ok := TextosExencion[causa]; ok {
		return t
	}
	return TextosExencion[ExencionOtros]
}

// =============================================================================
// Causas de rectificación (art. 15 RD 1619/2012 y art. 80 Ley 37/1992).
// =============================================================================

const (
	RectificacionError      = "error"      // Error fundado de derecho o incorrecciones
	RectificacionDescuento  = "descuento"  // Descuentos o bonificaciones posteriores
	RectificacionDevolucion = "devolucion" // Devolución de mercancías o envases
	RectificacionImpago     = "impago"     // Modificación de base imponible por impago (art. 80)
)

// TextosRectificacion mapea cada causa de rectificación a su texto legal.
var TextosRectificacion = map[string]string{
	RectificacionError:      "Rectificación por error en la factura original (art. 15 RD 1619/2012)",
	RectificacionDescuento:  "Rectificación por descuento o bonificación posterior a la emisión",
	RectificacionDevolucion: "Rectificación por devolución de mercancías",
	RectificacionImpago:     "Modificación de la base imponible por crédito incobrable (art. 80 Ley 37/1992)",
}

// TextoRectificacion devuelve el texto legal de una causa de rectificación,
// o cadena vacía si la causa no está catalogada.
func TextoRectificacion(causa string) string {
	return TextosRectificacion[causa]
}

// =============================================================================
// Recargo de equivalencia (régimen especial del comercio minorista).
// Porcentaje de recargo asociado a cada tipo de IVA vigente.
// =============================================================================

// RecargoPorTipoIVA porcentaje de recargo de equivalencia que corresponde a
// cada tipo impositivo: 21% → 5,2; 10% → 1,4; 4% → 0,5.
var RecargoPorTipoIVA = map[int]float64{
	21: 5.2,
	10: 1.4,
	4:  0.5,
	0:  0,
}

// LimiteFacturaSimplificada importe máximo (IVA incluido, en euros) de una
// factura simplificada en el caso general (art. 4.1 RD 1619/2012).
const LimiteFacturaSimplificada = 400

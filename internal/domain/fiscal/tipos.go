// Package fiscal implementa el cálculo de impuestos de facturación española:
// bases imponibles, cuotas de IVA, recargo de equivalencia y retención IRPF.
//
// Todas las funciones son puras: no tienen estado, no hacen I/O y nunca
// devuelven error. El editor de líneas las invoca en cada pulsación sobre
// borradores incompletos, así que los valores cero/ausentes producen
// resultados cero en lugar de fallos.
//
// Redondeo: toda cuota o total derivado se redondea a 2 decimales con
// "half away from zero" en el momento del cálculo, no al presentarlo. Los
// importes alimentan documentos legales y deben ser reproducibles bit a bit
// entre la vista previa, el PDF y lo persistido.
package fiscal

import "github.com/shopspring/decimal"

// TipoIVA es uno de los cuatro tipos impositivos españoles vigentes.
type TipoIVA int

// Tipos de IVA vigentes (Ley 37/1992, art. 90 y 91).
const (
	IVACero          TipoIVA = 0  // Tipo cero (ciertos bienes de primera necesidad)
	IVASuperreducido TipoIVA = 4  // Superreducido
	IVAReducido      TipoIVA = 10 // Reducido
	IVAGeneral       TipoIVA = 21 // General
)

// TiposIVA lista los tipos válidos en orden ascendente.
var TiposIVA = []TipoIVA{IVACero, IVASuperreducido, IVAReducido, IVAGeneral}

// Valido indica si el tipo pertenece al conjunto cerrado de tipos vigentes.
func (t TipoIVA) Valido() bool {
	switch t {
	case IVACero, IVASuperreducido, IVAReducido, IVAGeneral:
		return true
	}
	return false
}

// Porcentaje devuelve el tipo como decimal (21 → 21).
func (t TipoIVA) Porcentaje() decimal.Decimal {
	return decimal.NewFromInt(int64(t))
}

// Linea es la entrada del calculador de líneas. Es un objeto valor transitorio:
// se construye por llamada y no se muta tras ser leído por un consumidor.
type Linea struct {
	Descripcion    string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal // negativo permitido en rectificativas
	DescuentoPct   decimal.Decimal // 0-100
	TipoIVA        TipoIVA

	Exenta        bool
	CausaExencion string // código de pkg/aeat; requerido cuando Exenta

	// InversionSujetoPasivo: ISP, el destinatario autoliquida el IVA.
	// Con ISP la cuota de IVA de la línea es siempre cero.
	InversionSujetoPasivo bool

	// RecargoEquivalenciaPct: recargo del régimen minorista (0-5,2).
	// Independiente de la exención/ISP; el calculador no prohíbe combinarlos.
	RecargoEquivalenciaPct decimal.Decimal
}

// ResultadoLinea es la salida del calculador para una línea.
type ResultadoLinea struct {
	BaseImponible decimal.Decimal
	CuotaIVA      decimal.Decimal
	CuotaRE       decimal.Decimal
	Total         decimal.Decimal
}

// BasePorTipo agrupa las bases y cuotas de todas las líneas de un mismo tipo.
// Las líneas exentas o con ISP no se atribuyen a ningún tipo.
type BasePorTipo struct {
	TipoIVA  TipoIVA
	Base     decimal.Decimal
	CuotaIVA decimal.Decimal
	CuotaRE  decimal.Decimal
}

// Retencion es la elección de retención IRPF a nivel de cabecera de factura.
// No se deriva de las líneas: la decide el emisor al crear la factura.
type Retencion struct {
	Aplicar    bool
	Porcentaje decimal.Decimal
}

// Totales es el resultado de agregar todas las líneas de una factura.
type Totales struct {
	// BasesPorTipo: una entrada por tipo de IVA presente, orden ascendente.
	// El tipo 0 solo aparece si alguna línea no exenta/ISP lo usa.
	BasesPorTipo []BasePorTipo

	// BaseImponibleTotal incluye las bases de líneas exentas y con ISP,
	// aunque estas no aparezcan desglosadas por tipo. La factura impresa
	// muestra el desglose por tipos separado de la nota de exención/ISP.
	BaseImponibleTotal decimal.Decimal
	CuotaIVATotal      decimal.Decimal
	CuotaRETotal       decimal.Decimal

	// Presentes solo cuando se aplica retención IRPF.
	PorcentajeRetencion *decimal.Decimal
	ImporteRetencion    *decimal.Decimal

	TotalFactura decimal.Decimal
}

package dto

import "github.com/shopspring/decimal"

// LineaRequest línea de factura tal y como la envía el editor. Los campos
// ausentes valen cero/false: el núcleo fiscal degrada a cero sin error, así
// que el endpoint de previsualización acepta borradores incompletos.
type LineaRequest struct {
	Descripcion            string          `json:"descripcion"`
	Cantidad               decimal.Decimal `json:"cantidad"`
	PrecioUnitario         decimal.Decimal `json:"precio_unitario"`
	DescuentoPct           decimal.Decimal `json:"descuento_pct,omitempty"`
	TipoIVA                int             `json:"tipo_iva"`
	Exenta                 bool            `json:"exenta,omitempty"`
	CausaExencion          string          `json:"causa_exencion,omitempty"`
	InversionSujetoPasivo  bool            `json:"inversion_sujeto_pasivo,omitempty"`
	RecargoEquivalenciaPct decimal.Decimal `json:"recargo_equivalencia_pct,omitempty"`
}

// CreateFacturaRequest body para POST /api/facturas. La factura se crea en
// estado borrador; la emisión definitiva es un paso aparte.
type CreateFacturaRequest struct {
	ClienteID string `json:"cliente_id"`
	Serie     string `json:"serie"`
	Numero    string `json:"numero,omitempty"` // opcional; si va vacío se genera
	Fecha     string `json:"fecha,omitempty"`  // YYYY-MM-DD; por defecto hoy
	Tipo      string `json:"tipo"`             // ordinaria, simplificada, rectificativa...

	EsRectificativa         bool     `json:"es_rectificativa,omitempty"`
	CausaRectificacion      string   `json:"causa_rectificacion,omitempty"`
	ReferenciasRectificadas []string `json:"referencias_rectificadas,omitempty"`

	// Retención IRPF: elección de cabecera, no se deriva de las líneas.
	AplicarRetencion    bool            `json:"aplicar_retencion,omitempty"`
	PorcentajeRetencion decimal.Decimal `json:"porcentaje_retencion,omitempty"`

	Lineas []LineaRequest `json:"lineas"`
}

// PreviewFacturaRequest body para POST /api/facturas/calcular. Igual que la
// creación pero sin referencias persistentes obligatorias: el panel de
// totales lo llama en cada cambio del array de líneas.
type PreviewFacturaRequest struct {
	ClienteID           string          `json:"cliente_id,omitempty"`
	Tipo                string          `json:"tipo,omitempty"`
	EsRectificativa     bool            `json:"es_rectificativa,omitempty"`
	CausaRectificacion  string          `json:"causa_rectificacion,omitempty"`
	AplicarRetencion    bool            `json:"aplicar_retencion,omitempty"`
	PorcentajeRetencion decimal.Decimal `json:"porcentaje_retencion,omitempty"`
	Lineas              []LineaRequest  `json:"lineas"`
}

// LineaResponse línea con sus importes calculados.
type LineaResponse struct {
	ID                     string          `json:"id,omitempty"`
	Orden                  int             `json:"orden"`
	Descripcion            string          `json:"descripcion"`
	Cantidad               decimal.Decimal `json:"cantidad"`
	PrecioUnitario         decimal.Decimal `json:"precio_unitario"`
	DescuentoPct           decimal.Decimal `json:"descuento_pct"`
	TipoIVA                int             `json:"tipo_iva"`
	Exenta                 bool            `json:"exenta,omitempty"`
	CausaExencion          string          `json:"causa_exencion,omitempty"`
	InversionSujetoPasivo  bool            `json:"inversion_sujeto_pasivo,omitempty"`
	RecargoEquivalenciaPct decimal.Decimal `json:"recargo_equivalencia_pct"`

	BaseImponible decimal.Decimal `json:"base_imponible"`
	CuotaIVA      decimal.Decimal `json:"cuota_iva"`
	CuotaRE       decimal.Decimal `json:"cuota_re"`
	Total         decimal.Decimal `json:"total"`
}

// BasePorTipoResponse una entrada del desglose por tipo de IVA.
type BasePorTipoResponse struct {
	TipoIVA  int             `json:"tipo_iva"`
	Base     decimal.Decimal `json:"base"`
	CuotaIVA decimal.Decimal `json:"cuota_iva"`
	CuotaRE  decimal.Decimal `json:"cuota_re"`
}

// TotalesResponse totales de la factura para el panel de totales y el PDF.
type TotalesResponse struct {
	BasesPorTipo        []BasePorTipoResponse `json:"bases_por_tipo"`
	BaseImponibleTotal  decimal.Decimal       `json:"base_imponible_total"`
	CuotaIVATotal       decimal.Decimal       `json:"cuota_iva_total"`
	CuotaRETotal        decimal.Decimal       `json:"cuota_re_total"`
	PorcentajeRetencion *decimal.Decimal      `json:"porcentaje_retencion,omitempty"`
	ImporteRetencion    *decimal.Decimal      `json:"importe_retencion,omitempty"`
	TotalFactura        decimal.Decimal       `json:"total_factura"`
}

// PreviewFacturaResponse respuesta de POST /api/facturas/calcular.
type PreviewFacturaResponse struct {
	Lineas    []LineaResponse `json:"lineas"`
	Totales   TotalesResponse `json:"totales"`
	Menciones []string        `json:"menciones"`
	// Errores de validación presentes en el borrador; informativos aquí
	// (solo la emisión los bloquea).
	Validacion []string `json:"validacion,omitempty"`
}

// FacturaResponse factura completa para GET /api/facturas/:id.
type FacturaResponse struct {
	ID            string `json:"id"`
	EmpresaID     string `json:"empresa_id"`
	ClienteID     string `json:"cliente_id"`
	ClienteNombre string `json:"cliente_nombre,omitempty"`
	Serie         string `json:"serie"`
	Numero        string `json:"numero"`
	Fecha         string `json:"fecha"`
	Tipo          string `json:"tipo"`
	Estado        string `json:"estado"`

	EsRectificativa         bool     `json:"es_rectificativa,omitempty"`
	CausaRectificacion      string   `json:"causa_rectificacion,omitempty"`
	ReferenciasRectificadas []string `json:"referencias_rectificadas,omitempty"`

	Totales   TotalesResponse `json:"totales"`
	Lineas    []LineaResponse `json:"lineas"`
	Menciones []string        `json:"menciones"`
}

// EmitirFacturaResponse respuesta de POST /api/facturas/:id/emitir.
type EmitirFacturaResponse struct {
	ID     string `json:"id"`
	Estado string `json:"estado"`
}

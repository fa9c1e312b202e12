// Package pdf implementa la representación gráfica de la factura (RD
// 1619/2012): identificación de emisor y destinatario, tabla de líneas,
// desglose por tipo de IVA, retención IRPF y menciones obligatorias.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + NIF  │  Serie-Número + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Tel / Email                            │
//	│  DESTINATARIO: Nombre + NIF + contacto                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Dto% | IVA% | Base    │
//	│  DESGLOSE: por tipo (base / cuota / recargo)                │
//	│  TOTALES: Base / IVA / RE / Retención / TOTAL               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: menciones obligatorias + leyenda                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/facturacion"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/fiscal"
)

var _ facturacion.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa facturacion.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarFacturaPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarFacturaPDF(
	_ context.Context,
	factura *entity.Factura,
	emisor *entity.Empresa,
	cliente *entity.Cliente,
	menciones []string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+factura.Serie+"-"+factura.Numero, true).
		WithAuthor(emisor.RazonSocial, true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(factura, emisor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emisorRow(emisor))
	m.AddRows(destinatarioRow(factura, cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de líneas
	m.AddRows(tableHeaderRow())
	for _, r := range tableLineaRows(factura.Lineas) {
		m.AddRows(r)
	}

	// Desglose por tipo de IVA + totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	totales := fiscal.CalcularTotales(factura.LineasFiscales(), factura.Retencion())
	for _, r := range desgloseRows(totales) {
		m.AddRows(r)
	}
	m.AddRows(totalsRow(factura))

	// Footer: menciones obligatorias + leyenda
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range mencionesRows(menciones) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func tituloFactura(factura *entity.Factura) string {
	switch factura.Tipo {
	case entity.FacturaSimplificada:
		return "FACTURA SIMPLIFICADA"
	case entity.FacturaRectificativa:
		return "FACTURA RECTIFICATIVA"
	default:
		return "FACTURA"
	}
}

// headerRow: razón social + NIF (izq) y serie-número + fecha (der).
func headerRow(factura *entity.Factura, emisor *entity.Empresa) core.Row {
	numFac := factura.Serie + "-" + factura.Numero
	fecha := factura.Fecha.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(emisor.RazonSocial, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIF: "+emisor.NIF, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(tituloFactura(factura), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(numFac, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// emisorRow: datos del emisor (empresa).
func emisorRow(emisor *entity.Empresa) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL EMISOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(emisor.Direccion, "—"),
				nonEmpty(emisor.Telefono, "—"),
				nonEmpty(emisor.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// destinatarioRow: datos del destinatario. En las simplificadas el
// destinatario puede no estar identificado.
func destinatarioRow(factura *entity.Factura, cliente *entity.Cliente) core.Row {
	if factura.Tipo == entity.FacturaSimplificada && cliente == nil {
		return row.New(8).Add(col.New(12).Add(
			text.New("DESTINATARIO: no identificado (factura simplificada)", props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DESTINATARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("NIF: %s   |   País: %s   |   Email: %s",
				nonEmpty(cliente.NIF, "—"),
				nonEmpty(cliente.Pais, "ES"),
				nonEmpty(cliente.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 4, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Dto%", 1, align.Center),
		h("IVA%", 1, align.Center),
		h("Base", 3, align.Right),
	)
}

// tableLineaRows: una fila por línea de la factura.
func tableLineaRows(lineas []entity.LineaFactura) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		ivaLabel := fmt.Sprintf("%d%%", l.TipoIVA)
		if l.Exenta {
			ivaLabel = "Exenta"
		} else if l.InversionSujetoPasivo {
			ivaLabel = "ISP"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				l.Cantidad.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				l.Descripcion,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatearImporte(l.PrecioUnitario),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.DescuentoPct.String()+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				ivaLabel,
				props.Text{Size: 7, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				formatearImporte(l.BaseImponible),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// desgloseRows: una fila por tipo de IVA con base, cuota y recargo.
func desgloseRows(totales fiscal.Totales) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("DESGLOSE POR TIPO DE IVA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, b := range totales.BasesPorTipo {
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("IVA %d%%", int(b.TipoIVA)),
				props.Text{Size: 8, Top: 0.5, Left: 2},
			)),
			col.New(3).Add(text.New(
				"Base: "+formatearImporte(b.Base),
				props.Text{Size: 8, Align: align.Right, Top: 0.5},
			)),
			col.New(3).Add(text.New(
				"Cuota: "+formatearImporte(b.CuotaIVA),
				props.Text{Size: 8, Align: align.Right, Top: 0.5},
			)),
			col.New(4).Add(text.New(
				"Recargo: "+formatearImporte(b.CuotaRE),
				props.Text{Size: 8, Align: align.Right, Top: 0.5, Right: 1},
			)),
		))
	}
	return rows
}

// totalsRow: bloque de totales alineado a la derecha, con retención si aplica.
func totalsRow(factura *entity.Factura) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	labels := []core.Component{
		label("Base imponible:"),
		label("Cuota IVA:"),
	}
	values := []core.Component{
		value(formatearImporte(factura.BaseImponibleTotal)),
		value(formatearImporte(factura.CuotaIVATotal)),
	}
	if !factura.CuotaRETotal.IsZero() {
		labels = append(labels, label("Recargo equivalencia:"))
		values = append(values, value(formatearImporte(factura.CuotaRETotal)))
	}
	if factura.AplicaRetencion() && factura.ImporteRetencion != nil {
		labels = append(labels, label(fmt.Sprintf("Retención IRPF (%s%%):", factura.PorcentajeRetencion.String())))
		values = append(values, value("-"+formatearImporte(*factura.ImporteRetencion)))
	}
	labels = append(labels, grandLabel("TOTAL FACTURA:"))
	values = append(values, grandValue(formatearImporte(factura.TotalFactura)))

	alto := float64(8 + 6*len(labels))
	return row.New(alto).Add(
		col.New(3), // espacio izquierdo
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
		col.New(1), // espacio derecho
	)
}

// mencionesRows: menciones obligatorias generadas por el dominio + leyenda.
func mencionesRows(menciones []string) []core.Row {
	rows := []core.Row{}
	if len(menciones) > 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("MENCIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)))
		for _, m := range menciones {
			rows = append(rows, row.New(5).Add(col.New(12).Add(
				text.New("• "+m, props.Text{Size: 7.5, Color: colorGray, Top: 0.5, Left: 2}),
			)))
		}
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Factura expedida conforme al Reglamento de facturación (RD 1619/2012) "+
				"y a la Ley 37/1992 del IVA. Conserve este documento como justificante fiscal.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

var printerES = message.NewPrinter(language.EuropeanSpanish)

// formatearImporte formatea un importe en es-ES: miles con punto y decimales
// con coma. Ej: 1234.5 → "1.234,50 €". Solo presentación; los cálculos nunca
// pasan por float64.
func formatearImporte(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printerES.Sprintf("%v €", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

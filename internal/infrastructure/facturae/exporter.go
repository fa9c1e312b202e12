// Package facturae serializa facturas al formato Facturae 3.2.2 (Orden
// PRE/2971/2007 y posteriores). Genera el documento sin firmar; la huella
// SHA-256 del XML canonicalizado sirve como comprobante de integridad del
// fichero exportado.
package facturae

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/ucarion/c14n"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/facturacion"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/fiscal"
	"github.com/Mackewinsson/facturacion-module-sub000/pkg/aeat"
)

// Namespaces y constantes del esquema Facturae 3.2.2.
const (
	NsFacturae = "http://www.facturae.gob.es/formato/Versiones/Facturaev3_2_2.xml"
	NsDs       = "http://www.w3.org/2000/09/xmldsig#"

	schemaVersion = "3.2.2"

	// Códigos de impuesto Facturae
	taxIVA  = "01" // IVA
	taxIRPF = "04" // IRPF (retención)
)

var _ facturacion.ExportadorFacturae = (*Exporter)(nil)

// Exporter implementa facturacion.ExportadorFacturae con etree.
type Exporter struct{}

// NewExporter crea el exportador.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Exportar genera el XML Facturae de la factura y su huella SHA-256.
func (e *Exporter) Exportar(
	factura *entity.Factura,
	emisor *entity.Empresa,
	cliente *entity.Cliente,
	menciones []string,
) ([]byte, string, error) {
	if factura == nil || emisor == nil || cliente == nil {
		return nil, "", fmt.Errorf("facturae: faltan factura, emisor o cliente")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("fe:Facturae")
	root.CreateAttr("xmlns:fe", NsFacturae)
	root.CreateAttr("xmlns:ds", NsDs)

	totales := fiscal.CalcularTotales(factura.LineasFiscales(), factura.Retencion())

	e.writeFileHeader(root, factura, totales)
	e.writeParties(root, emisor, cliente)
	e.writeInvoice(root.CreateElement("Invoices"), factura, totales, menciones)

	var buf bytes.Buffer
	doc.Indent(2)
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, "", fmt.Errorf("facturae: serializar: %w", err)
	}
	xmlBytes := buf.Bytes()

	huella, err := huellaSHA256(xmlBytes)
	if err != nil {
		return nil, "", fmt.Errorf("facturae: calcular huella: %w", err)
	}
	return xmlBytes, huella, nil
}

// writeFileHeader: FileHeader con versión de esquema, modalidad y lote.
func (e *Exporter) writeFileHeader(root *etree.Element, factura *entity.Factura, totales fiscal.Totales) {
	fh := root.CreateElement("FileHeader")
	fh.CreateElement("SchemaVersion").SetText(schemaVersion)
	fh.CreateElement("Modality").SetText("I") // individual
	fh.CreateElement("InvoiceIssuerType").SetText("EM")

	batch := fh.CreateElement("Batch")
	batch.CreateElement("BatchIdentifier").SetText(factura.Serie + factura.Numero)
	batch.CreateElement("InvoicesCount").SetText("1")
	amount(batch.CreateElement("TotalInvoicesAmount"), totales.TotalFactura)
	amount(batch.CreateElement("TotalOutstandingAmount"), totales.TotalFactura)
	amount(batch.CreateElement("TotalExecutableAmount"), totales.TotalFactura)
	batch.CreateElement("InvoiceCurrencyCode").SetText("EUR")
}

// writeParties: emisor (SellerParty) y destinatario (BuyerParty).
func (e *Exporter) writeParties(root *etree.Element, emisor *entity.Empresa, cliente *entity.Cliente) {
	parties := root.CreateElement("Parties")

	seller := parties.CreateElement("SellerParty")
	e.writeTaxIdentification(seller, emisor.NIF, emisor.Pais)
	sellerLE := seller.CreateElement("LegalEntity")
	sellerLE.CreateElement("CorporateName").SetText(emisor.RazonSocial)
	if emisor.Direccion != "" {
		addr := sellerLE.CreateElement("AddressInSpain")
		addr.CreateElement("Address").SetText(emisor.Direccion)
		addr.CreateElement("CountryCode").SetText(paisFacturae(emisor.Pais))
	}

	buyer := parties.CreateElement("BuyerParty")
	e.writeTaxIdentification(buyer, cliente.NIF, cliente.Pais)
	if cliente.EsEmpresario() {
		le := buyer.CreateElement("LegalEntity")
		le.CreateElement("CorporateName").SetText(cliente.Nombre)
	} else {
		ind := buyer.CreateElement("Individual")
		ind.CreateElement("Name").SetText(cliente.Nombre)
	}
}

func (e *Exporter) writeTaxIdentification(party *etree.Element, nif, pais string) {
	ti := party.CreateElement("TaxIdentification")
	// F: persona jurídica; R: residente en España
	ti.CreateElement("PersonTypeCode").SetText("J")
	if aeat.NormalizarPais(pais) == "ES" {
		ti.CreateElement("ResidenceTypeCode").SetText("R")
	} else if aeat.EsUE(pais) {
		ti.CreateElement("ResidenceTypeCode").SetText("U")
	} else {
		ti.CreateElement("ResidenceTypeCode").SetText("E")
	}
	if nif != "" {
		ti.CreateElement("TaxIdentificationNumber").SetText(nif)
	}
}

// writeInvoice: cabecera, impuestos, totales, líneas y literales legales.
func (e *Exporter) writeInvoice(invoices *etree.Element, factura *entity.Factura, totales fiscal.Totales, menciones []string) {
	inv := invoices.CreateElement("Invoice")

	// InvoiceHeader
	header := inv.CreateElement("InvoiceHeader")
	header.CreateElement("InvoiceNumber").SetText(factura.Numero)
	header.CreateElement("InvoiceSeriesCode").SetText(factura.Serie)
	header.CreateElement("InvoiceDocumentType").SetText("FC") // factura completa
	if factura.EsRectificativa {
		header.CreateElement("InvoiceClass").SetText("OR") // original rectificativa
		corr := header.CreateElement("Corrective")
		for _, ref := range factura.ReferenciasRectificadas {
			corr.CreateElement("InvoiceNumber").SetText(ref)
		}
		if texto := aeat.TextoRectificacion(factura.CausaRectificacion); texto != "" {
			corr.CreateElement("ReasonDescription").SetText(texto)
		}
	} else {
		header.CreateElement("InvoiceClass").SetText("OO") // original
	}

	// InvoiceIssueData
	issue := inv.CreateElement("InvoiceIssueData")
	issue.CreateElement("IssueDate").SetText(factura.Fecha.Format("2006-01-02"))
	issue.CreateElement("InvoiceCurrencyCode").SetText("EUR")
	issue.CreateElement("TaxCurrencyCode").SetText("EUR")
	issue.CreateElement("LanguageName").SetText("es")

	// TaxesOutputs: una entrada por tipo de IVA del desglose
	taxes := inv.CreateElement("TaxesOutputs")
	for _, b := range totales.BasesPorTipo {
		tax := taxes.CreateElement("Tax")
		tax.CreateElement("TaxTypeCode").SetText(taxIVA)
		tax.CreateElement("TaxRate").SetText(decimal.NewFromInt(int64(b.TipoIVA)).StringFixed(2))
		amount(tax.CreateElement("TaxableBase"), b.Base)
		amount(tax.CreateElement("TaxAmount"), b.CuotaIVA)
		if !b.CuotaRE.IsZero() {
			amount(tax.CreateElement("EquivalenceSurchargeAmount"), b.CuotaRE)
		}
	}

	// TaxesWithheld: retención IRPF de cabecera
	if totales.PorcentajeRetencion != nil && totales.ImporteRetencion != nil {
		withheld := inv.CreateElement("TaxesWithheld")
		tax := withheld.CreateElement("Tax")
		tax.CreateElement("TaxTypeCode").SetText(taxIRPF)
		tax.CreateElement("TaxRate").SetText(totales.PorcentajeRetencion.StringFixed(2))
		amount(tax.CreateElement("TaxableBase"), totales.BaseImponibleTotal)
		amount(tax.CreateElement("TaxAmount"), *totales.ImporteRetencion)
	}

	// InvoiceTotals
	tot := inv.CreateElement("InvoiceTotals")
	tot.CreateElement("TotalGrossAmount").SetText(totales.BaseImponibleTotal.StringFixed(2))
	tot.CreateElement("TotalGrossAmountBeforeTaxes").SetText(totales.BaseImponibleTotal.StringFixed(2))
	tot.CreateElement("TotalTaxOutputs").SetText(totales.CuotaIVATotal.Add(totales.CuotaRETotal).StringFixed(2))
	tot.CreateElement("TotalTaxesWithheld").SetText(totales.RetencionImporte().StringFixed(2))
	tot.CreateElement("InvoiceTotal").SetText(totales.TotalFactura.StringFixed(2))
	tot.CreateElement("TotalOutstandingAmount").SetText(totales.TotalFactura.StringFixed(2))
	tot.CreateElement("TotalExecutableAmount").SetText(totales.TotalFactura.StringFixed(2))

	// Items: una InvoiceLine por línea
	items := inv.CreateElement("Items")
	for _, l := range factura.Lineas {
		e.writeInvoiceLine(items, l)
	}

	// LegalLiterals: menciones obligatorias del asesor de cumplimiento
	if len(menciones) > 0 {
		legal := inv.CreateElement("LegalLiterals")
		for _, m := range menciones {
			legal.CreateElement("LegalReference").SetText(m)
		}
	}
}

func (e *Exporter) writeInvoiceLine(items *etree.Element, l entity.LineaFactura) {
	line := items.CreateElement("InvoiceLine")
	line.CreateElement("ItemDescription").SetText(l.Descripcion)
	line.CreateElement("Quantity").SetText(l.Cantidad.String())
	line.CreateElement("UnitPriceWithoutTax").SetText(l.PrecioUnitario.StringFixed(2))
	line.CreateElement("TotalCost").SetText(l.BaseImponible.StringFixed(2))
	if !l.DescuentoPct.IsZero() {
		discounts := line.CreateElement("DiscountsAndRebates")
		d := discounts.CreateElement("Discount")
		d.CreateElement("DiscountReason").SetText("Descuento comercial")
		d.CreateElement("DiscountRate").SetText(l.DescuentoPct.StringFixed(2))
	}
	line.CreateElement("GrossAmount").SetText(l.BaseImponible.StringFixed(2))

	taxes := line.CreateElement("TaxesOutputs")
	tax := taxes.CreateElement("Tax")
	tax.CreateElement("TaxTypeCode").SetText(taxIVA)
	rate := decimal.NewFromInt(int64(l.TipoIVA))
	if l.Exenta || l.InversionSujetoPasivo {
		rate = decimal.Zero
	}
	tax.CreateElement("TaxRate").SetText(rate.StringFixed(2))
	amount(tax.CreateElement("TaxableBase"), l.BaseImponible)
	amount(tax.CreateElement("TaxAmount"), l.CuotaIVA)
	if !l.CuotaRE.IsZero() {
		amount(tax.CreateElement("EquivalenceSurchargeAmount"), l.CuotaRE)
	}
}

// amount escribe un importe Facturae (TotalAmount con dos decimales).
func amount(parent *etree.Element, d decimal.Decimal) {
	parent.CreateElement("TotalAmount").SetText(d.StringFixed(2))
}

// paisFacturae convierte el ISO alfa-2 al alfa-3 que usa el esquema para los
// países habituales; por defecto España.
func paisFacturae(pais string) string {
	if aeat.NormalizarPais(pais) == "ES" || pais == "" {
		return "ESP"
	}
	return aeat.NormalizarPais(pais)
}

// huellaSHA256 canonicaliza el XML (C14N) y devuelve el SHA-256 en hex.
func huellaSHA256(xmlBytes []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(xmlBytes))
	dec.Entity = map[string]string{}
	canon, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}

package facturacion

import (
	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/dto"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/fiscal"
)

func toLineaResponse(l entity.LineaFactura) dto.LineaResponse {
	return dto.LineaResponse{
		ID:                     l.ID,
		Orden:                  l.Orden,
		Descripcion:            l.Descripcion,
		Cantidad:               l.Cantidad,
		PrecioUnitario:         l.PrecioUnitario,
		DescuentoPct:           l.DescuentoPct,
		TipoIVA:                l.TipoIVA,
		Exenta:                 l.Exenta,
		CausaExencion:          l.CausaExencion,
		InversionSujetoPasivo:  l.InversionSujetoPasivo,
		RecargoEquivalenciaPct: l.RecargoEquivalenciaPct,
		BaseImponible:          l.BaseImponible,
		CuotaIVA:               l.CuotaIVA,
		CuotaRE:                l.CuotaRE,
		Total:                  l.Total,
	}
}

func toLineaResponses(lineas []entity.LineaFactura) []dto.LineaResponse {
	out := make([]dto.LineaResponse, 0, len(lineas))
	for _, l := range lineas {
		out = append(out, toLineaResponse(l))
	}
	return out
}

func toBasesPorTipoResponse(bases []fiscal.BasePorTipo) []dto.BasePorTipoResponse {
	out := make([]dto.BasePorTipoResponse, 0, len(bases))
	for _, b := range bases {
		out = append(out, dto.BasePorTipoResponse{
			TipoIVA:  int(b.TipoIVA),
			Base:     b.Base,
			CuotaIVA: b.CuotaIVA,
			CuotaRE:  b.CuotaRE,
		})
	}
	return out
}

func toTotalesResponse(t fiscal.Totales) dto.TotalesResponse {
	return dto.TotalesResponse{
		BasesPorTipo:        toBasesPorTipoResponse(t.BasesPorTipo),
		BaseImponibleTotal:  t.BaseImponibleTotal,
		CuotaIVATotal:       t.CuotaIVATotal,
		CuotaRETotal:        t.CuotaRETotal,
		PorcentajeRetencion: t.PorcentajeRetencion,
		ImporteRetencion:    t.ImporteRetencion,
		TotalFactura:        t.TotalFactura,
	}
}

// totalesDeCabecera arma los totales de respuesta a partir de los importes
// persistidos en la cabecera más el desglose de cfa_iva.
func totalesDeCabecera(f *entity.Factura, desglose []fiscal.BasePorTipo) dto.TotalesResponse {
	return dto.TotalesResponse{
		BasesPorTipo:        toBasesPorTipoResponse(desglose),
		BaseImponibleTotal:  f.BaseImponibleTotal,
		CuotaIVATotal:       f.CuotaIVATotal,
		CuotaRETotal:        f.CuotaRETotal,
		PorcentajeRetencion: f.PorcentajeRetencion,
		ImporteRetencion:    f.ImporteRetencion,
		TotalFactura:        f.TotalFactura,
	}
}

func toFacturaResponse(f *entity.Factura, cliente *entity.Cliente, desglose []fiscal.BasePorTipo, menciones []string) *dto.FacturaResponse {
	resp := &dto.FacturaResponse{
		ID:                      f.ID,
		EmpresaID:               f.EmpresaID,
		ClienteID:               f.ClienteID,
		Serie:                   f.Serie,
		Numero:                  f.Numero,
		Fecha:                   f.Fecha.Format("2006-01-02"),
		Tipo:                    f.Tipo,
		Estado:                  f.Estado,
		EsRectificativa:         f.EsRectificativa,
		CausaRectificacion:      f.CausaRectificacion,
		ReferenciasRectificadas: f.ReferenciasRectificadas,
		Totales:                 totalesDeCabecera(f, desglose),
		Lineas:                  toLineaResponses(f.Lineas),
		Menciones:               menciones,
	}
	if cliente != nil {
		resp.ClienteNombre = cliente.Nombre
	}
	if resp.Menciones == nil {
		resp.Menciones = []string{}
	}
	return resp
}

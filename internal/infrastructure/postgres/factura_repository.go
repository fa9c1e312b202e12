package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/fiscal"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository sobre el esquema heredado:
// cabeceras en cfa, líneas en lab y desglose por tipos en cfa_iva.
// Usable con pool o tx (Querier).
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

const facturaColumns = `
	id, empresa_id, ent_id, serie, numero, fecha, tipo, estado,
	es_rectificativa, causa_rectificacion, referencias_rectificadas,
	base_imponible_total, cuota_iva_total, cuota_re_total,
	pct_retencion, importe_retencion, total_factura,
	created_at, updated_at`

// Create persiste la cabecera de la factura en cfa.
func (r *FacturaRepo) Create(factura *entity.Factura) error {
	if factura.ID == "" {
		factura.ID = uuid.New().String()
	}
	query := `
		INSERT INTO cfa (id, empresa_id, ent_id, serie, numero, fecha, tipo, estado,
			es_rectificativa, causa_rectificacion, referencias_rectificadas,
			base_imponible_total, cuota_iva_total, cuota_re_total,
			pct_retencion, importe_retencion, total_factura,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		factura.ID, factura.EmpresaID, factura.ClienteID, factura.Serie, factura.Numero,
		factura.Fecha, factura.Tipo, factura.Estado,
		factura.EsRectificativa, nullIfEmpty(factura.CausaRectificacion), factura.ReferenciasRectificadas,
		factura.BaseImponibleTotal, factura.CuotaIVATotal, factura.CuotaRETotal,
		factura.PorcentajeRetencion, factura.ImporteRetencion, factura.TotalFactura,
		factura.CreatedAt, factura.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("el número de factura ya existe: %w", err)
		}
		return fmt.Errorf("insert cfa: %w", err)
	}
	return nil
}

// CreateLinea persiste una línea en lab.
func (r *FacturaRepo) CreateLinea(linea *entity.LineaFactura) error {
	if linea.ID == "" {
		linea.ID = uuid.New().String()
	}
	query := `
		INSERT INTO lab (id, cfa_id, orden, descripcion, cantidad, precio_unitario,
			descuento_pct, tipo_iva, exenta, causa_exencion, isp, recargo_pct,
			base_imponible, cuota_iva, cuota_re, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		linea.ID, linea.FacturaID, linea.Orden, linea.Descripcion, linea.Cantidad,
		linea.PrecioUnitario, linea.DescuentoPct, linea.TipoIVA, linea.Exenta,
		nullIfEmpty(linea.CausaExencion), linea.InversionSujetoPasivo, linea.RecargoEquivalenciaPct,
		linea.BaseImponible, linea.CuotaIVA, linea.CuotaRE, linea.Total,
	)
	if err != nil {
		return fmt.Errorf("insert lab: %w", err)
	}
	return nil
}

// ReplaceDesglose reescribe las filas de cfa_iva con el desglose recalculado.
func (r *FacturaRepo) ReplaceDesglose(facturaID string, bases []fiscal.BasePorTipo) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM cfa_iva WHERE cfa_id = $1`, facturaID); err != nil {
		return fmt.Errorf("delete cfa_iva: %w", err)
	}
	for _, b := range bases {
		_, err := r.q.Exec(ctx,
			`INSERT INTO cfa_iva (cfa_id, tipo_iva, base, cuota_iva, cuota_re) VALUES ($1, $2, $3, $4, $5)`,
			facturaID, int(b.TipoIVA), b.Base, b.CuotaIVA, b.CuotaRE,
		)
		if err != nil {
			return fmt.Errorf("insert cfa_iva: %w", err)
		}
	}
	return nil
}

// Update actualiza cabecera y totales de la factura.
func (r *FacturaRepo) Update(factura *entity.Factura) error {
	query := `
		UPDATE cfa
		SET ent_id                   = $2,
		    serie                    = $3,
		    numero                   = $4,
		    fecha                    = $5,
		    tipo                     = $6,
		    estado                   = $7,
		    es_rectificativa         = $8,
		    causa_rectificacion      = $9,
		    referencias_rectificadas = $10,
		    base_imponible_total     = $11,
		    cuota_iva_total          = $12,
		    cuota_re_total           = $13,
		    pct_retencion            = $14,
		    importe_retencion        = $15,
		    total_factura            = $16,
		    updated_at               = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		factura.ID, factura.ClienteID, factura.Serie, factura.Numero, factura.Fecha,
		factura.Tipo, factura.Estado,
		factura.EsRectificativa, nullIfEmpty(factura.CausaRectificacion), factura.ReferenciasRectificadas,
		factura.BaseImponibleTotal, factura.CuotaIVATotal, factura.CuotaRETotal,
		factura.PorcentajeRetencion, factura.ImporteRetencion, factura.TotalFactura,
		factura.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cfa: %w", err)
	}
	return nil
}

func scanFactura(row pgx.Row) (*entity.Factura, error) {
	var f entity.Factura
	var causaRect *string
	err := row.Scan(
		&f.ID, &f.EmpresaID, &f.ClienteID, &f.Serie, &f.Numero, &f.Fecha,
		&f.Tipo, &f.Estado,
		&f.EsRectificativa, &causaRect, &f.ReferenciasRectificadas,
		&f.BaseImponibleTotal, &f.CuotaIVATotal, &f.CuotaRETotal,
		&f.PorcentajeRetencion, &f.ImporteRetencion, &f.TotalFactura,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.CausaRectificacion = derefStr(causaRect)
	return &f, nil
}

// GetByID obtiene la cabecera de una factura por ID (sin líneas).
func (r *FacturaRepo) GetByID(id string) (*entity.Factura, error) {
	query := `SELECT` + facturaColumns + ` FROM cfa WHERE id = $1`
	f, err := scanFactura(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cfa: %w", err)
	}
	return f, nil
}

// GetLineasByFacturaID devuelve las líneas ordenadas por orden.
func (r *FacturaRepo) GetLineasByFacturaID(facturaID string) ([]entity.LineaFactura, error) {
	query := `
		SELECT id, cfa_id, orden, descripcion, cantidad, precio_unitario,
		       descuento_pct, tipo_iva, exenta, causa_exencion, isp, recargo_pct,
		       base_imponible, cuota_iva, cuota_re, total
		FROM lab WHERE cfa_id = $1 ORDER BY orden`
	rows, err := r.q.Query(context.Background(), query, facturaID)
	if err != nil {
		return nil, fmt.Errorf("query lab: %w", err)
	}
	defer rows.Close()

	var lineas []entity.LineaFactura
	for rows.Next() {
		var l entity.LineaFactura
		var causa *string
		if err := rows.Scan(
			&l.ID, &l.FacturaID, &l.Orden, &l.Descripcion, &l.Cantidad, &l.PrecioUnitario,
			&l.DescuentoPct, &l.TipoIVA, &l.Exenta, &causa, &l.InversionSujetoPasivo, &l.RecargoEquivalenciaPct,
			&l.BaseImponible, &l.CuotaIVA, &l.CuotaRE, &l.Total,
		); err != nil {
			return nil, fmt.Errorf("scan lab: %w", err)
		}
		l.CausaExencion = derefStr(causa)
		lineas = append(lineas, l)
	}
	return lineas, rows.Err()
}

// GetDesglose devuelve las filas de cfa_iva ordenadas por tipo ascendente.
func (r *FacturaRepo) GetDesglose(facturaID string) ([]fiscal.BasePorTipo, error) {
	query := `SELECT tipo_iva, base, cuota_iva, cuota_re FROM cfa_iva WHERE cfa_id = $1 ORDER BY tipo_iva`
	rows, err := r.q.Query(context.Background(), query, facturaID)
	if err != nil {
		return nil, fmt.Errorf("query cfa_iva: %w", err)
	}
	defer rows.Close()

	var out []fiscal.BasePorTipo
	for rows.Next() {
		var tipo int
		var base, cuotaIVA, cuotaRE decimal.Decimal
		if err := rows.Scan(&tipo, &base, &cuotaIVA, &cuotaRE); err != nil {
			return nil, fmt.Errorf("scan cfa_iva: %w", err)
		}
		out = append(out, fiscal.BasePorTipo{
			TipoIVA:  fiscal.TipoIVA(tipo),
			Base:     base,
			CuotaIVA: cuotaIVA,
			CuotaRE:  cuotaRE,
		})
	}
	return out, rows.Err()
}

// ListByEmpresa lista cabeceras de facturas de la empresa, más recientes primero.
func (r *FacturaRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Factura, error) {
	query := `SELECT` + facturaColumns + `
		FROM cfa WHERE empresa_id = $1
		ORDER BY fecha DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query cfa: %w", err)
	}
	defer rows.Close()

	var out []*entity.Factura
	for rows.Next() {
		f, err := scanFactura(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cfa: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// ExisteNumero comprueba si ya hay una factura con esa serie y número en la empresa.
func (r *FacturaRepo) ExisteNumero(empresaID, serie, numero string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM cfa WHERE empresa_id = $1 AND serie = $2 AND numero = $3)`,
		empresaID, serie, numero,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe numero: %w", err)
	}
	return existe, nil
}

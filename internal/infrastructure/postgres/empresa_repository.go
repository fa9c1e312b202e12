package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación de EmpresaRepository.
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

const empresaColumns = `id, razon_social, nif, pais, direccion, telefono, email, regimen_recargo, estado, created_at, updated_at`

// Create persiste una empresa.
func (r *EmpresaRepo) Create(empresa *entity.Empresa) error {
	if empresa.ID == "" {
		empresa.ID = uuid.New().String()
	}
	query := `
		INSERT INTO empresas (id, razon_social, nif, pais, direccion, telefono, email, regimen_recargo, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.RazonSocial, empresa.NIF, empresa.Pais,
		nullIfEmpty(empresa.Direccion), nullIfEmpty(empresa.Telefono), nullIfEmpty(empresa.Email),
		empresa.RegimenRecargo, empresa.Estado, empresa.CreatedAt, empresa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("el NIF de la empresa ya existe: %w", err)
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

func scanEmpresa(row pgx.Row) (*entity.Empresa, error) {
	var e entity.Empresa
	var direccion, telefono, email *string
	err := row.Scan(
		&e.ID, &e.RazonSocial, &e.NIF, &e.Pais,
		&direccion, &telefono, &email,
		&e.RegimenRecargo, &e.Estado, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Direccion = derefStr(direccion)
	e.Telefono = derefStr(telefono)
	e.Email = derefStr(email)
	return &e, nil
}

// GetByID obtiene una empresa por ID.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE id = $1`
	e, err := scanEmpresa(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return e, nil
}

// List lista empresas ordenadas por razón social.
func (r *EmpresaRepo) List(limit, offset int) ([]*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas ORDER BY razon_social LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query empresas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Empresa
	for rows.Next() {
		e, err := scanEmpresa(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update actualiza los datos de una empresa.
func (r *EmpresaRepo) Update(empresa *entity.Empresa) error {
	query := `
		UPDATE empresas
		SET razon_social = $2, nif = $3, pais = $4, direccion = $5,
		    telefono = $6, email = $7, regimen_recargo = $8, estado = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.RazonSocial, empresa.NIF, empresa.Pais,
		nullIfEmpty(empresa.Direccion), nullIfEmpty(empresa.Telefono), nullIfEmpty(empresa.Email),
		empresa.RegimenRecargo, empresa.Estado, empresa.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}

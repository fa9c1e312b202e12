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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository sobre la tabla heredada ent.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColumns = `id, empresa_id, nombre, tipo, nif, pais, direccion, email, telefono, created_at, updated_at`

// Create persiste un cliente en ent.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	if cliente.ID == "" {
		cliente.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ent (id, empresa_id, nombre, tipo, nif, pais, direccion, email, telefono, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.EmpresaID, cliente.Nombre, cliente.Tipo,
		nullIfEmpty(cliente.NIF), cliente.Pais,
		nullIfEmpty(cliente.Direccion), nullIfEmpty(cliente.Email), nullIfEmpty(cliente.Telefono),
		cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("cliente duplicado: %w", err)
		}
		return fmt.Errorf("insert ent: %w", err)
	}
	return nil
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	var nif, direccion, email, telefono *string
	err := row.Scan(
		&c.ID, &c.EmpresaID, &c.Nombre, &c.Tipo, &nif, &c.Pais,
		&direccion, &email, &telefono, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.NIF = derefStr(nif)
	c.Direccion = derefStr(direccion)
	c.Email = derefStr(email)
	c.Telefono = derefStr(telefono)
	return &c, nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM ent WHERE id = $1`
	c, err := scanCliente(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ent: %w", err)
	}
	return c, nil
}

// GetByEmpresaAndNIF busca un cliente de la empresa por NIF.
func (r *ClienteRepo) GetByEmpresaAndNIF(empresaID, nif string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM ent WHERE empresa_id = $1 AND nif = $2`
	c, err := scanCliente(r.q.QueryRow(context.Background(), query, empresaID, nif))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ent por nif: %w", err)
	}
	return c, nil
}

// ListByEmpresa lista clientes de la empresa ordenados por nombre.
func (r *ClienteRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM ent WHERE empresa_id = $1 ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query ent: %w", err)
	}
	defer rows.Close()

	var out []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ent: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update actualiza los datos de un cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE ent
		SET nombre = $2, tipo = $3, nif = $4, pais = $5,
		    direccion = $6, email = $7, telefono = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombre, cliente.Tipo, nullIfEmpty(cliente.NIF), cliente.Pais,
		nullIfEmpty(cliente.Direccion), nullIfEmpty(cliente.Email), nullIfEmpty(cliente.Telefono),
		cliente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ent: %w", err)
	}
	return nil
}

// Delete elimina un cliente.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ent WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ent: %w", err)
	}
	return nil
}

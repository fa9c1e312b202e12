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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioColumns = `id, empresa_id, email, password_hash, nombre, role, estado, created_at, updated_at`

// Create persiste un usuario.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	if usuario.ID == "" {
		usuario.ID = uuid.New().String()
	}
	query := `
		INSERT INTO usuarios (id, empresa_id, email, password_hash, nombre, role, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.EmpresaID, usuario.Email, usuario.PasswordHash,
		usuario.Nombre, usuario.Role, usuario.Estado, usuario.CreatedAt, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("el email ya está registrado: %w", err)
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.EmpresaID, &u.Email, &u.PasswordHash,
		&u.Nombre, &u.Role, &u.Estado, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`
	u, err := scanUsuario(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// FindByEmail busca un usuario por email (único global).
func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE email = $1`
	u, err := scanUsuario(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por email: %w", err)
	}
	return u, nil
}

// GetByEmailAndEmpresa busca un usuario por email dentro de una empresa.
func (r *UsuarioRepo) GetByEmailAndEmpresa(email, empresaID string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE email = $1 AND empresa_id = $2`
	u, err := scanUsuario(r.q.QueryRow(context.Background(), query, email, empresaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por email y empresa: %w", err)
	}
	return u, nil
}

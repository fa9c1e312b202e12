package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/facturacion"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/repository"
)

// Ensure TxRunner implements facturacion.FacturaTxRunner.
var _ facturacion.FacturaTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunFacturacion inicia una transacción, ejecuta fn con repos atados a la tx y
// hace Commit o Rollback. Cabecera, líneas y desglose se escriben juntos o no
// se escribe ninguno.
func (r *TxRunner) RunFacturacion(ctx context.Context, fn func(
	facturaRepo repository.FacturaRepository,
	clienteRepo repository.ClienteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	facturaRepo := NewFacturaRepository(tx)
	clienteRepo := NewClienteRepository(tx)

	if err := fn(facturaRepo, clienteRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

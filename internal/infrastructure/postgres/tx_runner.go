package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ysbai/gazdistrib-api/internal/application/distribution"
	"github.com/ysbai/gazdistrib-api/internal/domain/repository"
)

var _ distribution.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run démarre une transaction, exécute fn avec des repositories liés à la
// transaction, puis Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	cylinderRepo repository.CylinderRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cylinderRepo := NewCylinderRepository(tx)
	invoiceRepo := NewInvoiceRepository(tx)

	if err := fn(cylinderRepo, invoiceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

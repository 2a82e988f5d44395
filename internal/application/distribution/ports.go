package distribution

import (
	"context"

	"github.com/ysbai/gazdistrib-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction de BD, avec des
// repositories liés à cette transaction. Garantit l'atomicité entre
// l'enregistrement des factures et la mise à jour du stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		cylinderRepo repository.CylinderRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

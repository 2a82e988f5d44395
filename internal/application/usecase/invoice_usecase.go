package usecase

import (
	"context"

	"github.com/ysbai/gazdistrib-api/internal/application/dto"
	"github.com/ysbai/gazdistrib-api/internal/domain"
	"github.com/ysbai/gazdistrib-api/internal/domain/repository"
)

// InvoiceUseCase consultation et suppression des factures. La création passe
// par la distribution (automatique) ou la saisie manuelle.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceUseCase construit le cas d'usage.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo}
}

// List retourne toutes les factures (les plus récentes d'abord).
func (uc *InvoiceUseCase) List(ctx context.Context) ([]dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponses(invoices), nil
}

// GetByID retourne une facture avec ses lignes.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewInvoiceResponse(*inv)
	return &resp, nil
}

// Delete supprime une facture (remplacement intégral ou suppression : les
// factures persistées ne sont jamais modifiées ligne à ligne).
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(id)
}

package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/ysbai/gazdistrib-api/internal/application/dto"
	"github.com/ysbai/gazdistrib-api/internal/domain"
	"github.com/ysbai/gazdistrib-api/internal/domain/entity"
	"github.com/ysbai/gazdistrib-api/internal/domain/repository"
)

// InventoryUseCase gestion du stock de bouteilles (un enregistrement par
// type du référentiel).
type InventoryUseCase struct {
	cylinderRepo repository.CylinderRepository
}

// NewInventoryUseCase construit le cas d'usage.
func NewInventoryUseCase(cylinderRepo repository.CylinderRepository) *InventoryUseCase {
	return &InventoryUseCase{cylinderRepo: cylinderRepo}
}

// List retourne le stock, dans l'ordre du référentiel.
func (uc *InventoryUseCase) List(ctx context.Context) ([]dto.StockResponse, error) {
	inventory, err := uc.cylinderRepo.List()
	if err != nil {
		return nil, err
	}
	return dto.NewStockResponses(inventory), nil
}

// Update met à jour le stock d'un type de bouteille. Le restant est
// recalculé (total - distribué) pour maintenir l'invariant au repos.
func (uc *InventoryUseCase) Update(ctx context.Context, cylinderType string, in dto.StockUpdateRequest) (*dto.StockResponse, error) {
	if !entity.IsCylinderType(cylinderType) {
		return nil, domain.ErrInvalidInput
	}
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.DistributedQuantity > in.TotalQuantity {
		return nil, domain.ErrInvalidInput
	}

	stock, err := uc.cylinderRepo.GetByType(cylinderType)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		stock = &entity.CylinderStock{ID: uuid.New().String(), Type: cylinderType}
	}
	stock.TotalQuantity = in.TotalQuantity
	stock.DistributedQuantity = in.DistributedQuantity
	stock.RemainingQuantity = in.TotalQuantity - in.DistributedQuantity
	stock.UnitPrice = in.UnitPrice
	stock.TaxRate = in.TaxRate
	if err := uc.cylinderRepo.Upsert(stock); err != nil {
		return nil, err
	}
	resp := dto.NewStockResponse(*stock)
	return &resp, nil
}

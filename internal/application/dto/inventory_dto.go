package dto

import "github.com/shopspring/decimal"

// StockUpdateRequest body pour PUT /api/inventory/:type.
// Le restant est recalculé côté serveur : total - distribué.
type StockUpdateRequest struct {
	TotalQuantity       int64           `json:"total_quantity" validate:"min=0"`
	DistributedQuantity int64           `json:"distributed_quantity" validate:"min=0"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	TaxRate             decimal.Decimal `json:"tax_rate"`
}

// StockResponse ligne de stock dans les réponses.
type StockResponse struct {
	ID                  string          `json:"id"`
	Type                string          `json:"type"`
	TotalQuantity       int64           `json:"total_quantity"`
	DistributedQuantity int64           `json:"distributed_quantity"`
	RemainingQuantity   int64           `json:"remaining_quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	TaxRate             decimal.Decimal `json:"tax_rate"`
}

package dto

import (
	"github.com/ysbai/gazdistrib-api/internal/domain/entity"
	"github.com/ysbai/gazdistrib-api/pkg/format"
)

// NewClientResponse mappe un client vers sa réponse.
func NewClientResponse(c entity.Client) ClientResponse {
	return ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		Code:    c.Code,
		ICE:     c.ICE,
		Address: c.Address,
	}
}

// NewStockResponse mappe une ligne de stock vers sa réponse.
func NewStockResponse(s entity.CylinderStock) StockResponse {
	return StockResponse{
		ID:                  s.ID,
		Type:                s.Type,
		TotalQuantity:       s.TotalQuantity,
		DistributedQuantity: s.DistributedQuantity,
		RemainingQuantity:   s.RemainingQuantity,
		UnitPrice:           s.UnitPrice,
		TaxRate:             s.TaxRate,
	}
}

// NewStockResponses mappe un inventaire complet.
func NewStockResponses(inventory []entity.CylinderStock) []StockResponse {
	out := make([]StockResponse, 0, len(inventory))
	for _, s := range inventory {
		out = append(out, NewStockResponse(s))
	}
	return out
}

// NewInvoiceResponse mappe une facture vers sa réponse, date formatée selon
// hideDay et total en lettres pour la mention légale.
func NewInvoiceResponse(inv entity.Invoice) InvoiceResponse {
	items := make([]InvoiceLineResponse, 0, len(inv.Items))
	for _, line := range inv.Items {
		items = append(items, InvoiceLineResponse{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TaxRate:     line.TaxRate,
			Amount:      line.Amount,
		})
	}
	return InvoiceResponse{
		ID:            inv.ID,
		Number:        inv.Number,
		Date:          format.Date(inv.Date, inv.HideDay),
		Client:        NewClientResponse(inv.Client),
		Items:         items,
		Subtotal:      inv.Subtotal,
		TaxAmount:     inv.TaxAmount,
		Total:         inv.Total,
		TotalInWords:  format.AmountInWords(inv.Total),
		CompanyName:   inv.CompanyName,
		DisplayAmount: format.Amount(inv.Total),
	}
}

// NewInvoiceResponses mappe une liste de factures.
func NewInvoiceResponses(invoices []entity.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, NewInvoiceResponse(inv))
	}
	return out
}

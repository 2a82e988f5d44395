package dto

import "github.com/shopspring/decimal"

// ManualInvoiceRequest body pour POST /api/invoices (saisie manuelle,
// préfixe FP). Les lignes décrémentent le stock dans la même transaction.
type ManualInvoiceRequest struct {
	ClientID string               `json:"client_id" validate:"required"`
	Date     string               `json:"date,omitempty"` // "2006-01-02", défaut : aujourd'hui
	HideDay  bool                 `json:"hide_day"`
	Items    []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

// InvoiceItemRequest ligne de facture manuelle.
type InvoiceItemRequest struct {
	CylinderType string          `json:"cylinder_type" validate:"required"`
	Quantity     int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice    decimal.Decimal `json:"unit_price"` // vide = prix du stock
}

// InvoiceResponse facture avec ses lignes.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	Number        string                `json:"number"`
	Date          string                `json:"date"` // formatée selon hide_day
	Client        ClientResponse        `json:"client"`
	Items         []InvoiceLineResponse `json:"items"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TaxAmount     decimal.Decimal       `json:"tax_amount"`
	Total         decimal.Decimal       `json:"total"`
	TotalInWords  string                `json:"total_in_words"`
	CompanyName   string                `json:"company_name"`
	DisplayAmount string                `json:"display_amount"` // total formaté « 12 345,67 DH »
}

// InvoiceLineResponse ligne dans la réponse.
type InvoiceLineResponse struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Amount      decimal.Decimal `json:"amount"`
}

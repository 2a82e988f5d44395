package dto

import "github.com/shopspring/decimal"

// SettingsRequest body pour PUT /api/settings.
type SettingsRequest struct {
	SelectedCompany   string           `json:"selected_company" validate:"required"`
	MinInvoiceAmount  decimal.Decimal  `json:"min_invoice_amount"`
	MaxInvoiceAmount  decimal.Decimal  `json:"max_invoice_amount"`
	CustomDaysByMonth map[string][]int `json:"custom_days_by_month,omitempty"`
}

// SettingsResponse réglages dans les réponses.
type SettingsResponse struct {
	SelectedCompany   string           `json:"selected_company"`
	MinInvoiceAmount  decimal.Decimal  `json:"min_invoice_amount"`
	MaxInvoiceAmount  decimal.Decimal  `json:"max_invoice_amount"`
	CustomDaysByMonth map[string][]int `json:"custom_days_by_month,omitempty"`
}

// SetInvoiceNumberRequest body pour PUT /api/settings/invoice-number.
// Le prochain numéro émis sera exactement Next.
type SetInvoiceNumberRequest struct {
	Next int `json:"next" validate:"required,gt=0"`
}

// InvoiceNumberResponse état courant de la séquence.
type InvoiceNumberResponse struct {
	Current int `json:"current"`
}

// CompanyResponse fiche société du référentiel.
type CompanyResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Fax     string `json:"fax"`
	RC      string `json:"rc"`
	TF      string `json:"tf,omitempty"`
	IF      string `json:"if,omitempty"`
	CNSS    string `json:"cnss"`
	Patente string `json:"patente,omitempty"`
	ICE     string `json:"ice"`
}

package dto

import "github.com/shopspring/decimal"

// GenerateRequest body pour POST /api/distribution/generate.
// Month/Year ciblent le mois de distribution ; Holidays liste les jours
// fériés du mois à exclure du calendrier ; StartingNumber force le point de
// départ de la numérotation (0 = séquence courante) ; Seed fige le
// générateur aléatoire (0 = entropie), utile pour rejouer une génération.
type GenerateRequest struct {
	Month          int   `json:"month" validate:"required,min=1,max=12"`
	Year           int   `json:"year" validate:"required,min=2000,max=2100"`
	Holidays       []int `json:"holidays,omitempty" validate:"omitempty,dive,min=1,max=31"`
	HideDay        bool  `json:"hide_day"`
	StartingNumber int   `json:"starting_number,omitempty" validate:"omitempty,gt=0"`
	Seed           int64 `json:"seed,omitempty"`
}

// GenerateResponse aperçu d'une génération : rien n'est persisté tant que
// la distribution n'est pas confirmée.
type GenerateResponse struct {
	Invoices           []InvoiceResponse `json:"invoices"`
	RemainingInventory []StockResponse   `json:"remaining_inventory"`
	RemainingValue     decimal.Decimal   `json:"remaining_value"` // valeur TTC du restant
	DistributionDays   []int             `json:"distribution_days"`
}

// ConfirmRequest body pour POST /api/distribution/confirm.
// IncludeRemainder replie le stock restant de l'aperçu dans une dernière
// facture de reliquat, datée au dernier jour planifié.
type ConfirmRequest struct {
	IncludeRemainder bool `json:"include_remainder"`
}

// ConfirmResponse résultat de la confirmation.
type ConfirmResponse struct {
	SavedInvoices  int  `json:"saved_invoices"`
	RemainderAdded bool `json:"remainder_added"`
}

// DaysResponse jours de distribution d'un mois.
type DaysResponse struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Days  []int `json:"days"`
}

package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Settings représente les réglages de génération (ligne unique en base).
// CustomDaysByMonth associe une clé "YYYY-MM" à une liste de jours de
// distribution imposés pour ce mois (remplace l'énumération par défaut).
type Settings struct {
	SelectedCompany   string
	MinInvoiceAmount  decimal.Decimal
	MaxInvoiceAmount  decimal.Decimal
	CustomDaysByMonth map[string][]int
	UpdatedAt         time.Time
}

// MonthKey retourne la clé "YYYY-MM" utilisée par CustomDaysByMonth.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// CustomDays retourne les jours imposés pour un mois (nil si aucun).
func (s Settings) CustomDays(year, month int) []int {
	if s.CustomDaysByMonth == nil {
		return nil
	}
	return s.CustomDaysByMonth[MonthKey(year, month)]
}

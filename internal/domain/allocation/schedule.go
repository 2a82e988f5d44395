package allocation

import (
	"time"

	"github.com/ysbai/gazdistrib-api/internal/domain/entity"
)

// AssignDays répartit les factures sur les jours de distribution du mois,
// dans l'ordre de génération : perDay = ceil(n / len(days)), la facture i
// reçoit days[min(i/perDay, len(days)-1)].
//
// Fonction pure : retourne une nouvelle liste, les entrées ne sont pas
// mutées. Si days est vide, les dates posées par le moteur sont conservées
// telles quelles (branche explicite, pas un oubli).
func AssignDays(invoices []entity.Invoice, days []int, year, month int) []entity.Invoice {
	out := make([]entity.Invoice, len(invoices))
	copy(out, invoices)
	if len(days) == 0 || len(invoices) == 0 {
		return out
	}

	perDay := (len(invoices) + len(days) - 1) / len(days)
	for i := range out {
		dayIndex := i / perDay
		if dayIndex > len(days)-1 {
			dayIndex = len(days) - 1
		}
		out[i].Date = time.Date(year, time.Month(month), days[dayIndex], 0, 0, 0, 0, time.UTC)
	}
	return out
}

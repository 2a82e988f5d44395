package allocation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ysbai/gazdistrib-api/internal/domain/allocation"
	"github.com/ysbai/gazdistrib-api/internal/domain/entity"
)

func invoicesOf(n int) []entity.Invoice {
	invoices := make([]entity.Invoice, n)
	for i := range invoices {
		invoices[i] = entity.Invoice{ID: string(rune('A' + i))}
	}
	return invoices
}

func day(d int) time.Time {
	return time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC)
}

// TestAssignDays_RepartitionEquilibree : 10 factures sur 3 jours, perDay
// vaut ceil(10/3) = 4 : les 4 premières au jour 2, les 4 suivantes au jour 4,
// les 2 dernières au jour 6.
func TestAssignDays_RepartitionEquilibree(t *testing.T) {
	out := allocation.AssignDays(invoicesOf(10), []int{2, 4, 6}, 2025, 4)

	expected := []int{2, 2, 2, 2, 4, 4, 4, 4, 6, 6}
	for i, inv := range out {
		assert.Equal(t, day(expected[i]), inv.Date, "facture %d", i)
	}
}

// TestAssignDays_MoinsDeFacturesQueDeJours : chaque facture sur son propre
// jour, les jours excédentaires restent inutilisés.
func TestAssignDays_MoinsDeFacturesQueDeJours(t *testing.T) {
	out := allocation.AssignDays(invoicesOf(2), []int{3, 10, 17, 24}, 2025, 4)

	assert.Equal(t, day(3), out[0].Date)
	assert.Equal(t, day(10), out[1].Date)
}

// TestAssignDays_DebordementSurDernierJour : plus de factures que la
// capacité théorique, l'excédent s'accumule sur le dernier jour.
func TestAssignDays_DebordementSurDernierJour(t *testing.T) {
	out := allocation.AssignDays(invoicesOf(7), []int{5, 12}, 2025, 4)

	// perDay = ceil(7/2) = 4 : indices 0-3 au jour 5, 4-6 au jour 12.
	for i := 0; i < 4; i++ {
		assert.Equal(t, day(5), out[i].Date)
	}
	for i := 4; i < 7; i++ {
		assert.Equal(t, day(12), out[i].Date)
	}
}

// TestAssignDays_SansJours : aucun jour de distribution, les dates d'origine
// sont conservées (branche explicite, pas une erreur).
func TestAssignDays_SansJours(t *testing.T) {
	invoices := invoicesOf(3)
	original := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	for i := range invoices {
		invoices[i].Date = original
	}

	out := allocation.AssignDays(invoices, nil, 2025, 4)

	for _, inv := range out {
		assert.Equal(t, original, inv.Date)
	}
}

// TestAssignDays_EntreeNonMutee : fonction pure, la liste d'origine garde
// ses dates.
func TestAssignDays_EntreeNonMutee(t *testing.T) {
	invoices := invoicesOf(4)
	original := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := range invoices {
		invoices[i].Date = original
	}

	allocation.AssignDays(invoices, []int{2, 9}, 2025, 4)

	for _, inv := range invoices {
		assert.Equal(t, original, inv.Date)
	}
}

// TestAssignDays_OrdrePreserve : la répartition ne réordonne pas les
// factures.
func TestAssignDays_OrdrePreserve(t *testing.T) {
	out := allocation.AssignDays(invoicesOf(5), []int{1, 2, 3}, 2025, 4)

	for i, inv := range out {
		assert.Equal(t, string(rune('A'+i)), inv.ID)
	}
}

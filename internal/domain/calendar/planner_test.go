package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ysbai/gazdistrib-api/internal/domain/calendar"
)

// TestDays_ExclutDimanches vérifie que seuls les dimanches sont exclus par
// défaut : les samedis restent des jours de distribution (semaine de six
// jours).
func TestDays_ExclutDimanches(t *testing.T) {
	// Juin 2025 : les dimanches tombent les 1, 8, 15, 22 et 29.
	days := calendar.Days(2025, 6, nil, nil)

	assert.Len(t, days, 25, "30 jours moins 5 dimanches")
	for _, day := range days {
		wd := time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC).Weekday()
		assert.NotEqual(t, time.Sunday, wd, "le jour %d ne doit pas être un dimanche", day)
	}
	// Le samedi 7 juin est bien présent.
	assert.Contains(t, days, 7)
}

// TestDays_ExclutFeries vérifie le retrait des jours fériés déclarés.
func TestDays_ExclutFeries(t *testing.T) {
	days := calendar.Days(2025, 6, []int{2, 3}, nil)

	assert.NotContains(t, days, 2)
	assert.NotContains(t, days, 3)
	assert.Len(t, days, 23)
}

// TestDays_JoursImposes vérifie qu'une liste imposée remplace l'énumération :
// elle est filtrée (bornes du mois, fériés, dimanches), dédupliquée et triée.
func TestDays_JoursImposes(t *testing.T) {
	// Juin 2025 : le 1 est un dimanche, le 40 hors du mois, le 5 est férié,
	// le 7 apparaît deux fois.
	days := calendar.Days(2025, 6, []int{5}, []int{7, 40, 1, 5, 7, 3})

	assert.Equal(t, []int{3, 7}, days)
}

// TestDays_JoursImposesTousInvalides vérifie qu'une liste imposée entièrement
// filtrée donne un résultat vide, sans repli sur l'énumération par défaut.
func TestDays_JoursImposesTousInvalides(t *testing.T) {
	days := calendar.Days(2025, 6, nil, []int{1, 8, 40})

	assert.Empty(t, days)
}

// TestDays_FevrierBissextile vérifie la borne du mois en année bissextile.
func TestDays_FevrierBissextile(t *testing.T) {
	days := calendar.Days(2024, 2, nil, nil)

	assert.Contains(t, days, 29, "2024 est bissextile, le 29 février existe")
	// Février 2024 : les dimanches tombent les 4, 11, 18 et 25.
	assert.Len(t, days, 25)
}

// TestDays_FevrierNonBissextile vérifie que le 29 n'apparaît jamais hors
// année bissextile, même imposé.
func TestDays_FevrierNonBissextile(t *testing.T) {
	days := calendar.Days(2025, 2, nil, []int{28, 29})

	assert.Equal(t, []int{28}, days)
}

// TestDays_TriCroissant vérifie le tri de la liste imposée.
func TestDays_TriCroissant(t *testing.T) {
	days := calendar.Days(2025, 6, nil, []int{20, 3, 12})

	assert.Equal(t, []int{3, 12, 20}, days)
}

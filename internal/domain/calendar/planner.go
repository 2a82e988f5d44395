// Package calendar calcule les jours de distribution valides d'un mois.
//
// La semaine de distribution compte six jours : seuls les dimanches sont
// structurellement exclus, les samedis restent éligibles. Les jours fériés
// déclarés sont retirés, et une liste de jours imposés peut remplacer
// l'énumération par défaut.
package calendar

import (
	"sort"
	"time"
)

// Days retourne les jours de distribution du mois, triés croissants et
// dédupliqués.
//
// Si custom est non vide, il est filtré : jours dans [1, dernier jour du
// mois], hors fériés, et dont le jour de semaine n'est pas dimanche.
// Sinon, chaque jour du mois est retenu sauf dimanche ou férié.
//
// Un mois hors [1,12] suit l'arithmétique de time.Date (normalisation),
// sans traitement spécial.
func Days(year, month int, holidays, custom []int) []int {
	lastDay := lastDayOfMonth(year, month)
	holidaySet := make(map[int]bool, len(holidays))
	for _, d := range holidays {
		holidaySet[d] = true
	}

	if len(custom) > 0 {
		seen := make(map[int]bool, len(custom))
		days := make([]int, 0, len(custom))
		for _, day := range custom {
			if day < 1 || day > lastDay || holidaySet[day] || seen[day] {
				continue
			}
			if weekday(year, month, day) == time.Sunday {
				continue
			}
			seen[day] = true
			days = append(days, day)
		}
		sort.Ints(days)
		return days
	}

	days := make([]int, 0, lastDay)
	for day := 1; day <= lastDay; day++ {
		if weekday(year, month, day) == time.Sunday || holidaySet[day] {
			continue
		}
		days = append(days, day)
	}
	return days
}

// lastDayOfMonth via l'arithmétique native : jour 0 du mois suivant.
// Les années bissextiles sont couvertes sans table.
func lastDayOfMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func weekday(year, month, day int) time.Weekday {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
}

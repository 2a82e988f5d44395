// Package format regroupe le formatage d'affichage des factures :
// dates au format français, montants localisés et montant en lettres
// (mention légale « Arrêtée la présente facture à la somme de… »).
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var french = message.NewPrinter(language.French)

// Date formate une date de facture : MM/YYYY quand hideDay est actif
// (numérotation mensuelle sans jour), sinon JJ/MM/AAAA.
func Date(t time.Time, hideDay bool) string {
	if hideDay {
		return t.Format("01/2006")
	}
	return t.Format("02/01/2006")
}

// Amount formate un montant en dirhams avec séparateurs français
// (ex : « 12 345,67 DH »).
func Amount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return french.Sprintf("%.2f DH", f)
}

var units = []string{"", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf"}
var teens = []string{"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize", "dix-sept", "dix-huit", "dix-neuf"}
var tens = []string{"", "dix", "vingt", "trente", "quarante", "cinquante", "soixante", "soixante-dix", "quatre-vingt", "quatre-vingt-dix"}

// AmountInWords convertit un montant en toutes lettres françaises, avec les
// centimes le cas échéant. Version simplifiée suffisante pour des montants
// de facture (< 1 000 000 de dirhams).
func AmountInWords(d decimal.Decimal) string {
	whole := d.IntPart()
	cents := d.Sub(decimal.NewFromInt(whole)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	if whole == 0 && cents == 0 {
		return "zéro"
	}
	words := numberWords(whole)
	if whole == 0 {
		words = "zéro"
	}
	if cents > 0 {
		return fmt.Sprintf("%s et %s centimes", words, numberWords(cents))
	}
	return words
}

func numberWords(n int64) string {
	switch {
	case n < 10:
		return units[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		unit := n % 10
		ten := n / 10
		if unit == 0 {
			return tens[ten]
		}
		return tens[ten] + "-" + units[unit]
	case n < 1000:
		hundred := n / 100
		remainder := n % 100
		head := "cent"
		if hundred > 1 {
			head = units[hundred] + " cents"
		}
		if remainder == 0 {
			return head
		}
		return head + " " + numberWords(remainder)
	case n < 1000000:
		thousand := n / 1000
		remainder := n % 1000
		head := "mille"
		if thousand > 1 {
			head = numberWords(thousand) + " mille"
		}
		if remainder == 0 {
			return head
		}
		return head + " " + numberWords(remainder)
	}
	return "nombre trop grand"
}

package format_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/ysbai/gazdistrib-api/pkg/format"
)

func TestDate_Complete(t *testing.T) {
	d := time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "07/04/2025", format.Date(d, false))
}

func TestDate_JourMasque(t *testing.T) {
	d := time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "04/2025", format.Date(d, true))
}

func TestAmount_SeparateursFrancais(t *testing.T) {
	got := format.Amount(decimal.RequireFromString("12345.67"))
	// golang.org/x/text utilise l'espace insécable étroite comme séparateur
	// de milliers en français.
	assert.Contains(t, got, "45,67 DH")
	assert.NotContains(t, got, ".")
}

func TestAmountInWords_Entier(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "zéro"},
		{7, "sept"},
		{15, "quinze"},
		{42, "quarante-deux"},
		{80, "quatre-vingt"},
		{100, "cent"},
		{300, "trois cents"},
		{1000, "mille"},
		{5200, "cinq mille deux cents"},
		{8750, "huit mille sept cents cinquante"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, format.AmountInWords(decimal.NewFromInt(c.in)), "montant %d", c.in)
	}
}

func TestAmountInWords_Centimes(t *testing.T) {
	got := format.AmountInWords(decimal.RequireFromString("125.50"))
	assert.Equal(t, "cent vingt-cinq et cinquante centimes", got)
}

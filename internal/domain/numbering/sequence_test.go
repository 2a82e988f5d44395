package numbering_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ysbai/gazdistrib-api/internal/domain/numbering"
)

var avril2025 = time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

// TestNext_Format vérifie le format complet PREFIX/YY/MM/NNNNN : année sur
// deux chiffres, mois sur deux chiffres, suffixe sur cinq chiffres.
func TestNext_Format(t *testing.T) {
	seq := numbering.NewSequence(nil)
	seq.Initialize(42)

	assert.Equal(t, "FA/25/04/00042", seq.Next(avril2025, "FA"))
}

// TestNext_StrictementCroissant vérifie que des émissions successives
// produisent des suffixes strictement croissants, même en alternant les
// préfixes (la séquence est partagée entre FA et FP).
func TestNext_StrictementCroissant(t *testing.T) {
	seq := numbering.NewSequence(nil)
	seq.Initialize(1)

	assert.Equal(t, "FA/25/04/00001", seq.Next(avril2025, "FA"))
	assert.Equal(t, "FP/25/04/00002", seq.Next(avril2025, "FP"))
	assert.Equal(t, "FA/25/04/00003", seq.Next(avril2025, "FA"))
}

// TestNext_DateEffective vérifie que l'année et le mois émis viennent de la
// date effective de la facture, pas de l'horloge murale.
func TestNext_DateEffective(t *testing.T) {
	seq := numbering.NewSequence(nil)
	seq.Initialize(7)

	decembre := time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "FA/24/12/00007", seq.Next(decembre, "FA"))
}

// TestInitialize_RepriseDepuisPersiste vérifie la reprise au maximum des
// suffixes persistés : les numéros non parsables comptent pour zéro.
func TestInitialize_RepriseDepuisPersiste(t *testing.T) {
	seq := numbering.NewSequence(func() []string {
		return []string{
			"FA/25/03/00012",
			"FP/25/03/00047",
			"FA/25/02/00031",
			"BROUILLON",        // pas assez de segments
			"FA/25/01/ABCDE",   // suffixe non numérique
		}
	})

	assert.Equal(t, 47, seq.Current())
	assert.Equal(t, "FA/25/04/00048", seq.Next(avril2025, "FA"))
}

// TestInitialize_Idempotent vérifie que réinitialiser sans valeur de départ
// ne recule jamais un compteur déjà positionné.
func TestInitialize_Idempotent(t *testing.T) {
	loads := 0
	seq := numbering.NewSequence(func() []string {
		loads++
		return []string{"FA/25/01/00005"}
	})

	seq.Initialize(0)
	seq.Next(avril2025, "FA") // compteur à 6
	seq.Initialize(0)

	assert.Equal(t, 6, seq.Current())
	assert.Equal(t, 1, loads, "le chargement ne doit se produire qu'une fois")
}

// TestInitialize_DepartExplicite vérifie qu'un départ explicite prime sur la
// reprise : le prochain numéro émis est exactement la valeur demandée.
func TestInitialize_DepartExplicite(t *testing.T) {
	seq := numbering.NewSequence(func() []string {
		return []string{"FA/25/01/09999"}
	})

	seq.Initialize(100)
	assert.Equal(t, "FA/25/04/00100", seq.Next(avril2025, "FA"))
}

// TestSetCurrent_Realignement vérifie le réalignement opérateur, y compris
// vers l'arrière, et l'ignorance silencieuse des valeurs non positives.
func TestSetCurrent_Realignement(t *testing.T) {
	seq := numbering.NewSequence(nil)
	seq.Initialize(50)
	seq.Next(avril2025, "FA")

	seq.SetCurrent(10)
	assert.Equal(t, "FA/25/04/00010", seq.Next(avril2025, "FA"))

	seq.SetCurrent(0)
	seq.SetCurrent(-3)
	assert.Equal(t, "FA/25/04/00011", seq.Next(avril2025, "FA"))
}

// TestNext_SansLoader vérifie qu'un compteur sans loader démarre à un.
func TestNext_SansLoader(t *testing.T) {
	seq := numbering.NewSequence(nil)
	assert.Equal(t, "FP/25/04/00001", seq.Next(avril2025, "FP"))
}

// Package numbering fournit le compteur de numérotation des factures.
//
// Le format émis est PREFIX/YY/MM/NNNNN : préfixe FA (automatique) ou FP
// (manuel), année et mois de la date effective de la facture (pas l'horloge
// murale), suffixe séquentiel sur 5 chiffres. Le compteur est un service
// injectable : chaque instance porte son propre état, pas de variable globale.
package numbering

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NumberLoader retourne les numéros de factures déjà persistés.
// Utilisé par Initialize pour reprendre la séquence au maximum existant.
type NumberLoader func() []string

// Sequence compteur strictement croissant de numéros de factures.
// Un seul acteur logique par instance : les callers sérialisent leurs
// générations (le usecase de distribution pose un verrou).
type Sequence struct {
	last int
	load NumberLoader
}

// NewSequence construit un compteur non initialisé. loader peut être nil
// (la reprise démarre alors à zéro).
func NewSequence(loader NumberLoader) *Sequence {
	return &Sequence{load: loader}
}

// Initialize positionne le compteur.
// Si starting > 0, le prochain numéro émis sera exactement starting.
// Sinon, si le compteur est encore à zéro, reprend au maximum des suffixes
// des numéros persistés (segment après le dernier "/", non parsable = 0).
// Idempotent : rappeler sans starting alors que le compteur est non nul
// ne change rien.
func (s *Sequence) Initialize(starting int) {
	if starting > 0 {
		s.last = starting - 1
		return
	}
	if s.last != 0 {
		return
	}
	if s.load == nil {
		return
	}
	max := 0
	for _, number := range s.load() {
		if n := suffixValue(number); n > max {
			max = n
		}
	}
	s.last = max
}

// Next incrémente le compteur et retourne le numéro formaté pour la date
// effective donnée. Un numéro émis n'est jamais réutilisé dans la session.
func (s *Sequence) Next(effectiveDate time.Time, prefix string) string {
	if s.last == 0 {
		s.Initialize(0)
	}
	s.last++
	year := effectiveDate.Year() % 100
	month := int(effectiveDate.Month())
	return fmt.Sprintf("%s/%02d/%02d/%05d", prefix, year, month, s.last)
}

// Current retourne la valeur du compteur sans l'avancer.
// Déclenche l'initialisation paresseuse si le compteur est encore à zéro.
func (s *Sequence) Current() int {
	if s.last == 0 {
		s.Initialize(0)
	}
	return s.last
}

// SetCurrent force le compteur pour que le prochain numéro émis soit n.
// Réalignement manuel par l'opérateur ; n <= 0 est ignoré silencieusement.
func (s *Sequence) SetCurrent(n int) {
	if n > 0 {
		s.last = n - 1
	}
}

// suffixValue extrait le segment numérique final d'un numéro de facture.
func suffixValue(number string) int {
	parts := strings.Split(number, "/")
	if len(parts) < 3 {
		return 0
	}
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return n
}

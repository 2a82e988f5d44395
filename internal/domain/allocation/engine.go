// Package allocation contient le moteur de génération automatique de
// factures : découpe du stock restant en factures dont le montant TTC tombe
// dans la fourchette configurée, affectation round-robin aux clients et
// numérotation séquentielle FA.
package allocation

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ysbai/gazdistrib-api/internal/domain/entity"
	"github.com/ysbai/gazdistrib-api/internal/domain/numbering"
)

// distinctTotalEscape : au-delà de ce nombre de totaux arrondis distincts,
// le plafond anti-répétition est abandonné pour garantir la terminaison
// même sur une fourchette serrée. Constante historique, ne pas re-dériver.
const distinctTotalEscape = 10

// maxBarrenRounds borne le nombre d'itérations consécutives sans facture
// commise (cible intouchable ou rollback systématique) ; sans elle une
// fourchette entièrement sous le prix TTC unitaire bouclerait sans fin.
const maxBarrenRounds = 100

// Settings paramètres d'une génération (lecture seule).
type Settings struct {
	MinInvoiceAmount decimal.Decimal
	MaxInvoiceAmount decimal.Decimal
	CompanyName      string
}

// Result sortie du moteur. RemainingInventory est la copie de travail après
// allocation ; le caller est responsable de sa réconciliation et de la
// persistance des factures — le moteur ne fait aucune E/S.
type Result struct {
	Invoices           []entity.Invoice
	RemainingInventory []entity.CylinderStock
}

// Engine moteur d'allocation. Le générateur aléatoire est injecté pour que
// les tests fixent la graine ; la séquence de numérotation est partagée avec
// la saisie manuelle.
type Engine struct {
	rng *rand.Rand
	seq *numbering.Sequence
}

// NewEngine construit le moteur.
func NewEngine(rng *rand.Rand, seq *numbering.Sequence) *Engine {
	return &Engine{rng: rng, seq: seq}
}

// Allocate partitionne le stock restant en factures.
//
// Glouton randomisé : tant que la valeur TTC du stock couvre le montant
// minimum, un montant cible est tiré dans [min, max), arrondi à la centaine,
// puis chaque article du stock (dans l'ordre fourni, volontairement non trié)
// est rempli unité par unité sans dépasser la cible. Une facture dont le
// total n'atteint pas le minimum est abandonnée sans toucher au stock.
//
// Si month et year sont fournis (> 0), les factures sont datées au premier
// du mois ; sinon à la date courante. hideDay est un indicateur d'affichage
// transporté tel quel.
func (e *Engine) Allocate(
	inventory []entity.CylinderStock,
	clients []entity.Client,
	settings Settings,
	hideDay bool,
	month, year int,
) Result {
	working := entity.CloneInventory(inventory)
	invoices := []entity.Invoice{}

	if len(clients) == 0 {
		return Result{Invoices: invoices, RemainingInventory: working}
	}

	// Plafond aléatoire dans [2,5] du nombre de factures partageant le même
	// total arrondi, pour éviter des montants visiblement répétitifs.
	maxIdentical := 2 + e.rng.Intn(4)
	totalCounts := map[int64]int{}

	shuffled := make([]entity.Client, len(clients))
	copy(shuffled, clients)
	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	clientIndex := 0

	invoiceDate := time.Now()
	if month > 0 && year > 0 {
		invoiceDate = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	}

	barren := 0
	for entity.InventoryValueWithTax(working).GreaterThanOrEqual(settings.MinInvoiceAmount) {
		if barren >= maxBarrenRounds {
			break
		}

		client := shuffled[clientIndex%len(shuffled)]
		clientIndex++

		target := e.drawTarget(settings, totalCounts, maxIdentical)

		// Remplissage sur une copie de travail locale : le commit ne se fait
		// qu'en cas de succès, le rollback est l'abandon de la copie.
		scratch := entity.CloneInventory(working)
		lines := fill(scratch, target)
		if len(lines) == 0 {
			barren++
			continue
		}

		subtotal, taxAmount, total := entity.InvoiceTotals(lines)
		if total.LessThan(settings.MinInvoiceAmount) {
			// Cible trop basse pour franchir le plancher : on abandonne le
			// tour de ce client, le stock reste intact.
			barren++
			continue
		}

		working = scratch
		totalCounts[total.Round(0).IntPart()]++
		barren = 0

		invoices = append(invoices, entity.Invoice{
			ID:          uuid.New().String(),
			Number:      e.seq.Next(invoiceDate, entity.PrefixAutomatic),
			Date:        invoiceDate,
			HideDay:     hideDay,
			Client:      client,
			Items:       lines,
			Subtotal:    subtotal,
			TaxAmount:   taxAmount,
			Total:       total,
			CompanyName: settings.CompanyName,
		})
	}

	return Result{Invoices: invoices, RemainingInventory: working}
}

// drawTarget tire un montant cible uniforme dans [min, max), tronqué puis
// arrondi à la centaine la plus proche. Retire tant que le compartiment du
// total arrondi a atteint le plafond, sauf si le nombre de compartiments
// distincts a déjà franchi la soupape d'échappement.
func (e *Engine) drawTarget(settings Settings, totalCounts map[int64]int, maxIdentical int) decimal.Decimal {
	min, _ := settings.MinInvoiceAmount.Float64()
	max, _ := settings.MaxInvoiceAmount.Float64()
	for {
		raw := math.Floor(min + e.rng.Float64()*(max-min))
		rounded := int64(math.Round(raw/100)) * 100
		if totalCounts[rounded] >= maxIdentical && len(totalCounts) < distinctTotalEscape {
			continue
		}
		return decimal.NewFromInt(rounded)
	}
}

// fill remplit des lignes de facture au plus près de la cible, article par
// article dans l'ordre de l'inventaire (un glouton par article, pas un
// packing global : l'ordre des articles détermine qui se remplit d'abord).
// Mute scratch (décrément remaining, incrément distributed).
func fill(scratch []entity.CylinderStock, target decimal.Decimal) []entity.InvoiceLine {
	var lines []entity.InvoiceLine
	committed := decimal.Zero // total TTC des lignes déjà retenues

	for i := range scratch {
		item := &scratch[i]
		if item.RemainingQuantity <= 0 {
			continue
		}

		unitTTC := item.UnitPriceWithTax()
		var quantity int64
		// Une unité de plus tant que le stock suit et que le total TTC
		// (lignes retenues + article en cours) reste sous la cible.
		for quantity < item.RemainingQuantity &&
			committed.Add(unitTTC.Mul(decimal.NewFromInt(quantity + 1))).LessThanOrEqual(target) {
			quantity++
		}
		if quantity == 0 {
			continue
		}

		amount := item.UnitPrice.Mul(decimal.NewFromInt(quantity))
		line := entity.InvoiceLine{
			Description: item.Type,
			Quantity:    quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Amount:      amount,
		}
		lines = append(lines, line)
		committed = committed.Add(line.AmountWithTax())
		item.RemainingQuantity -= quantity
		item.DistributedQuantity += quantity
	}
	return lines
}

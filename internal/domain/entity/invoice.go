package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Préfixes de numérotation : FA pour les factures générées automatiquement,
// FP pour la saisie manuelle. Le format complet est PREFIX/YY/MM/NNNNN.
const (
	PrefixAutomatic = "FA"
	PrefixManual    = "FP"
)

// InvoiceLine représente une ligne de facture.
// Amount = Quantity * UnitPrice (hors taxe).
type InvoiceLine struct {
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
	Amount      decimal.Decimal
}

// TaxAmount retourne la TVA de la ligne.
func (l InvoiceLine) TaxAmount() decimal.Decimal {
	return l.Amount.Mul(l.TaxRate).Div(decimal.NewFromInt(100))
}

// AmountWithTax retourne le montant TTC de la ligne.
func (l InvoiceLine) AmountWithTax() decimal.Decimal {
	return l.Amount.Add(l.TaxAmount())
}

// Invoice représente une facture.
// Invariants : Subtotal = Σ Items.Amount ; TaxAmount = Σ TVA des lignes ;
// Total = Subtotal + TaxAmount. Immuable une fois persistée (remplacement
// ou suppression uniquement).
type Invoice struct {
	ID          string
	Number      string
	Date        time.Time
	HideDay     bool // affichage MM/YYYY au lieu de la date complète
	Client      Client
	Items       []InvoiceLine
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	Total       decimal.Decimal
	CompanyName string
	CreatedAt   time.Time
}

// InvoiceTotals calcule sous-total, TVA et total d'un ensemble de lignes.
func InvoiceTotals(items []InvoiceLine) (subtotal, taxAmount, total decimal.Decimal) {
	subtotal = decimal.Zero
	taxAmount = decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
		taxAmount = taxAmount.Add(item.TaxAmount())
	}
	total = subtotal.Add(taxAmount)
	return subtotal, taxAmount, total
}

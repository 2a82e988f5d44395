package entity

import "github.com/shopspring/decimal"

// Types de bouteilles commercialisés (référentiel fixe de la flotte).
const (
	Cylinder12KG      = "12KG"
	Cylinder6KG       = "6KG"
	Cylinder3KG       = "3KG"
	CylinderDetendeur = "DETENDEUR CLIC-ON"
	CylinderPropane34 = "PROPANE 34 KG"
	CylinderBNG12     = "BNG 12 KG"
)

// CylinderTypes liste les types connus, dans l'ordre d'affichage du stock.
var CylinderTypes = []string{
	Cylinder12KG,
	Cylinder6KG,
	Cylinder3KG,
	CylinderDetendeur,
	CylinderPropane34,
	CylinderBNG12,
}

// IsCylinderType indique si le type fait partie du référentiel.
func IsCylinderType(t string) bool {
	for _, known := range CylinderTypes {
		if known == t {
			return true
		}
	}
	return false
}

// CylinderStock représente le stock d'un type de bouteille.
// Invariant au repos : RemainingQuantity = TotalQuantity - DistributedQuantity.
// Le moteur d'allocation travaille sur une copie profonde et peut violer
// l'invariant de façon transitoire ; le caller réconcilie au commit.
type CylinderStock struct {
	ID                  string
	Type                string
	TotalQuantity       int64
	DistributedQuantity int64
	RemainingQuantity   int64
	UnitPrice           decimal.Decimal
	TaxRate             decimal.Decimal // pourcentage (ex : 20 pour 20 %)
}

// UnitPriceWithTax retourne le prix unitaire TTC.
func (c CylinderStock) UnitPriceWithTax() decimal.Decimal {
	tax := c.UnitPrice.Mul(c.TaxRate).Div(decimal.NewFromInt(100))
	return c.UnitPrice.Add(tax)
}

// RemainingValueWithTax retourne la valeur TTC du stock restant.
func (c CylinderStock) RemainingValueWithTax() decimal.Decimal {
	return c.UnitPriceWithTax().Mul(decimal.NewFromInt(c.RemainingQuantity))
}

// CloneInventory copie profonde d'un inventaire (le moteur mute sa copie librement).
func CloneInventory(inventory []CylinderStock) []CylinderStock {
	out := make([]CylinderStock, len(inventory))
	copy(out, inventory)
	return out
}

// InventoryValueWithTax valeur TTC totale du stock restant d'un inventaire.
func InventoryValueWithTax(inventory []CylinderStock) decimal.Decimal {
	total := decimal.Zero
	for _, item := range inventory {
		total = total.Add(item.RemainingValueWithTax())
	}
	return total
}

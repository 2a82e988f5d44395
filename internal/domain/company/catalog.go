// Package company porte le référentiel statique des sociétés sœurs du
// groupe. La gestion de profils multi-sociétés n'est pas un objectif : le
// référentiel est figé dans le code, seul le choix de la société émettrice
// vit dans les réglages.
package company

import "github.com/ysbai/gazdistrib-api/internal/domain/entity"

// Info fiche d'identité d'une société émettrice (en-tête de facture).
type Info struct {
	Name    string
	Address string
	Phone   string
	Fax     string
	RC      string // registre de commerce
	TF      string // taxe professionnelle
	IF      string // identifiant fiscal
	CNSS    string
	Patente string
	ICE     string
}

// DefaultName société retenue quand les réglages ne désignent personne.
const DefaultName = "SEBAI AMA"

var catalog = map[string]Info{
	"SEBAI AMA": {
		Name:    "SEBAI AMA",
		Address: "38-40 RUE MONTAIGE, BATHA MAARIF",
		Phone:   "0522991403",
		Fax:     "0522992424",
		RC:      "96175",
		CNSS:    "6009197",
		Patente: "34772854",
		ICE:     "000000664000017",
	},
	"STE TAHA SBAI sarl": {
		Name:    "STE TAHA SBAI sarl",
		Address: "LOT. AL MASSIRA N°: 152 BI ES-SMARA",
		Phone:   "0661354432",
		Fax:     "0522994424",
		RC:      "315",
		TF:      "77401223",
		IF:      "37730898",
		CNSS:    "8377633",
		ICE:     "002391520000017",
	},
	"STE TASNIM SBAI sarl": {
		Name:    "STE TASNIM SBAI sarl",
		Address: "LOT. AL MASSIRA N°: 152 ES-SMARA",
		Phone:   "0661354432",
		Fax:     "0522994424",
		RC:      "665",
		TF:      "77410800",
		IF:      "15198585",
		CNSS:    "9802944",
		ICE:     "001560306000002",
	},
	"STE SEBAI FRERES DISTRIBUTION": {
		Name:    "STE SEBAI FRERES DISTRIBUTION",
		Address: "DOUAR EL FOKRA OLD AZZOUZ CASABLANCA",
		Phone:   "0522 99 14 03",
		Fax:     "0522 30 34 94",
		RC:      "306397",
		TF:      "91350127",
		IF:      "15179892",
		CNSS:    "4096584",
		ICE:     "000217303000058",
	},
}

// Names retourne les noms du référentiel, dans l'ordre d'affichage.
func Names() []string {
	return []string{
		"SEBAI AMA",
		"STE SEBAI FRERES DISTRIBUTION",
		"STE TASNIM SBAI sarl",
		"STE TAHA SBAI sarl",
	}
}

// Get retourne la fiche d'une société, ou celle par défaut si inconnue.
func Get(name string) Info {
	if info, ok := catalog[name]; ok {
		return info
	}
	return catalog[DefaultName]
}

// Resolve centralise la chaîne de repli du nom de société émettrice :
// société sélectionnée dans les réglages, sinon la société par défaut.
// Unique point de résolution pour toute construction de facture.
func Resolve(settings entity.Settings) string {
	if settings.SelectedCompany != "" {
		return settings.SelectedCompany
	}
	return DefaultName
}

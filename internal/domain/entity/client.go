package entity

import "time"

// Client représente un client de la distribution (données de référence,
// immuables pendant une allocation).
type Client struct {
	ID        string
	Name      string
	Code      string // numéro de patente
	ICE       string // Identifiant Commun de l'Entreprise (optionnel)
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

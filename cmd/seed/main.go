// seed crée le schéma PostgreSQL s'il n'existe pas et insère les données de
// départ : le référentiel des six types de bonbonnes, quelques clients de
// démonstration et les réglages par défaut.
//
// Usage : go run ./cmd/seed
// La connexion est lue depuis l'environnement (DATABASE_URL, DB_HOST, etc.).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ysbai/gazdistrib-api/internal/domain/entity"
	"github.com/ysbai/gazdistrib-api/internal/infrastructure/postgres"
	"github.com/ysbai/gazdistrib-api/pkg/config"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id         uuid PRIMARY KEY,
		name       text NOT NULL,
		code       text NOT NULL,
		ice        text,
		address    text,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS cylinder_stock (
		id                   uuid PRIMARY KEY,
		type                 text NOT NULL UNIQUE,
		total_quantity       bigint NOT NULL DEFAULT 0,
		distributed_quantity bigint NOT NULL DEFAULT 0,
		remaining_quantity   bigint NOT NULL DEFAULT 0,
		unit_price           numeric(12,2) NOT NULL DEFAULT 0,
		tax_rate             numeric(5,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id             uuid PRIMARY KEY,
		number         text NOT NULL UNIQUE,
		date           timestamptz NOT NULL,
		hide_day       boolean NOT NULL DEFAULT false,
		client_id      uuid NOT NULL,
		client_name    text NOT NULL,
		client_code    text NOT NULL,
		client_ice     text,
		client_address text,
		subtotal       numeric(14,2) NOT NULL,
		tax_amount     numeric(14,2) NOT NULL,
		total          numeric(14,2) NOT NULL,
		company_name   text NOT NULL,
		created_at     timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS invoice_lines (
		invoice_id  uuid NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		line_no     int NOT NULL,
		description text NOT NULL,
		quantity    bigint NOT NULL,
		unit_price  numeric(12,2) NOT NULL,
		tax_rate    numeric(5,2) NOT NULL,
		amount      numeric(14,2) NOT NULL,
		PRIMARY KEY (invoice_id, line_no)
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id                 int PRIMARY KEY,
		selected_company   text NOT NULL,
		min_invoice_amount numeric(14,2) NOT NULL,
		max_invoice_amount numeric(14,2) NOT NULL,
		custom_days        jsonb,
		updated_at         timestamptz NOT NULL DEFAULT now()
	)`,
}

type seedStock struct {
	cylinderType string
	unitPrice    string
	taxRate      string
}

// Prix unitaires HT indicatifs ; la TVA sur le gaz est à 10 %, le matériel
// (détendeur) à 20 %.
var stocks = []seedStock{
	{entity.Cylinder12KG, "95.00", "10"},
	{entity.Cylinder6KG, "50.00", "10"},
	{entity.Cylinder3KG, "26.00", "10"},
	{entity.CylinderDetendeur, "35.00", "20"},
	{entity.CylinderPropane34, "310.00", "10"},
	{entity.CylinderBNG12, "95.00", "10"},
}

type seedClient struct {
	name, code, ice, address string
}

var clients = []seedClient{
	{"STATION AFRIQUIA TIZNIT", "45123789", "001512347000089", "Route d'Agadir, Tiznit"},
	{"CAFE RESTAURANT AL BARAKA", "45678912", "002231456000045", "Avenue Mohammed V, Tiznit"},
	{"BOULANGERIE AL AMAL", "45987321", "001874569000031", "Quartier Administratif, Tiznit"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal("chargement de la configuration : %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fatal("connexion à PostgreSQL : %v", err)
	}
	defer pool.Close()

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			fatal("création du schéma : %v", err)
		}
	}
	fmt.Println("schéma créé (ou déjà présent)")

	for _, s := range stocks {
		price, _ := decimal.NewFromString(s.unitPrice)
		rate, _ := decimal.NewFromString(s.taxRate)
		_, err := pool.Exec(ctx, `
			INSERT INTO cylinder_stock (id, type, total_quantity, distributed_quantity, remaining_quantity, unit_price, tax_rate)
			VALUES ($1, $2, 0, 0, 0, $3, $4)
			ON CONFLICT (type) DO NOTHING`,
			uuid.NewString(), s.cylinderType, price, rate,
		)
		if err != nil {
			fatal("insertion du stock %s : %v", s.cylinderType, err)
		}
	}
	fmt.Printf("%d types de bonbonnes référencés\n", len(stocks))

	for _, c := range clients {
		_, err := pool.Exec(ctx, `
			INSERT INTO clients (id, name, code, ice, address, created_at, updated_at)
			SELECT $1, $2, $3, $4, $5, now(), now()
			WHERE NOT EXISTS (SELECT 1 FROM clients WHERE code = $3)`,
			uuid.NewString(), c.name, c.code, c.ice, c.address,
		)
		if err != nil {
			fatal("insertion du client %s : %v", c.name, err)
		}
	}
	fmt.Printf("%d clients de démonstration\n", len(clients))

	_, err = pool.Exec(ctx, `
		INSERT INTO settings (id, selected_company, min_invoice_amount, max_invoice_amount, custom_days, updated_at)
		VALUES (1, $1, $2, $3, '{}'::jsonb, now())
		ON CONFLICT (id) DO NOTHING`,
		"SEBAI AMA", decimal.NewFromInt(5000), decimal.NewFromInt(10000),
	)
	if err != nil {
		fatal("insertion des réglages : %v", err)
	}
	fmt.Println("réglages par défaut en place")
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

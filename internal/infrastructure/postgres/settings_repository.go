package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/ysbai/gazdistrib-api/internal/domain/company"
	"github.com/ysbai/gazdistrib-api/internal/domain/entity"
	"github.com/ysbai/gazdistrib-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implémentation de SettingsRepository. Ligne unique (id = 1),
// les jours imposés par mois sont stockés en JSONB.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construit l'adaptateur.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get retourne les réglages, ou des valeurs par défaut si jamais saisis.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `
		SELECT selected_company, min_invoice_amount, max_invoice_amount, custom_days, updated_at
		FROM settings WHERE id = 1`
	var s entity.Settings
	var customDays []byte
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.SelectedCompany, &s.MinInvoiceAmount, &s.MaxInvoiceAmount, &customDays, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return defaultSettings(), nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if len(customDays) > 0 {
		if err := json.Unmarshal(customDays, &s.CustomDaysByMonth); err != nil {
			return nil, fmt.Errorf("decode custom days: %w", err)
		}
	}
	return &s, nil
}

// Save remplace la ligne de réglages.
func (r *SettingsRepo) Save(settings *entity.Settings) error {
	customDays, err := json.Marshal(settings.CustomDaysByMonth)
	if err != nil {
		return fmt.Errorf("encode custom days: %w", err)
	}
	query := `
		INSERT INTO settings (id, selected_company, min_invoice_amount, max_invoice_amount, custom_days, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET selected_company   = EXCLUDED.selected_company,
		    min_invoice_amount = EXCLUDED.min_invoice_amount,
		    max_invoice_amount = EXCLUDED.max_invoice_amount,
		    custom_days        = EXCLUDED.custom_days,
		    updated_at         = EXCLUDED.updated_at`
	if _, err := r.q.Exec(context.Background(), query,
		settings.SelectedCompany, settings.MinInvoiceAmount, settings.MaxInvoiceAmount,
		customDays, settings.UpdatedAt,
	); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// defaultSettings réglages avant toute saisie opérateur.
func defaultSettings() *entity.Settings {
	return &entity.Settings{
		SelectedCompany:  company.DefaultName,
		MinInvoiceAmount: decimal.NewFromInt(5000),
		MaxInvoiceAmount: decimal.NewFromInt(10000),
	}
}

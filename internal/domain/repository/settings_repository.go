package repository

import "github.com/ysbai/gazdistrib-api/internal/domain/entity"

// SettingsRepository accès aux réglages (ligne unique).
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Save(settings *entity.Settings) error
}

package repository

import "github.com/ysbai/gazdistrib-api/internal/domain/entity"

// CylinderRepository accès au stock de bouteilles.
type CylinderRepository interface {
	Upsert(stock *entity.CylinderStock) error
	GetByType(cylinderType string) (*entity.CylinderStock, error)
	List() ([]entity.CylinderStock, error)
}

package repository

import "github.com/ysbai/gazdistrib-api/internal/domain/entity"

// InvoiceRepository accès aux factures (en-tête + lignes).
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	Delete(id string) error
	GetByID(id string) (*entity.Invoice, error)
	List() ([]entity.Invoice, error)
	// ListNumbers retourne tous les numéros persistés ; utilisé par la
	// séquence de numérotation pour reprendre au maximum existant.
	ListNumbers() ([]string, error)
}

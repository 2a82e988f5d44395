package repository

import "github.com/ysbai/gazdistrib-api/internal/domain/entity"

// ClientRepository accès aux clients.
type ClientRepository interface {
	Create(client *entity.Client) error
	Update(client *entity.Client) error
	Delete(id string) error
	GetByID(id string) (*entity.Client, error)
	List() ([]entity.Client, error)
}

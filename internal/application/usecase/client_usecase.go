package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ysbai/gazdistrib-api/internal/application/dto"
	"github.com/ysbai/gazdistrib-api/internal/domain"
	"github.com/ysbai/gazdistrib-api/internal/domain/entity"
	"github.com/ysbai/gazdistrib-api/internal/domain/repository"
)

// ClientUseCase gestion CRUD des clients.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construit le cas d'usage.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create enregistre un client.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Code:      in.Code,
		ICE:       in.ICE,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	resp := dto.NewClientResponse(*client)
	return &resp, nil
}

// Update remplace les champs d'un client existant.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(id)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	client.Name = in.Name
	client.Code = in.Code
	client.ICE = in.ICE
	client.Address = in.Address
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	resp := dto.NewClientResponse(*client)
	return &resp, nil
}

// Delete supprime un client.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(id)
	if err != nil || client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(id)
}

// List retourne tous les clients.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := uc.clientRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, dto.NewClientResponse(c))
	}
	return out, nil
}

// GetByID retourne un client.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewClientResponse(*client)
	return &resp, nil
}

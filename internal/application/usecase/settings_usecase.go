package usecase

import (
	"context"
	"time"

	"github.com/ysbai/gazdistrib-api/internal/application/dto"
	"github.com/ysbai/gazdistrib-api/internal/domain"
	"github.com/ysbai/gazdistrib-api/internal/domain/company"
	"github.com/ysbai/gazdistrib-api/internal/domain/entity"
	"github.com/ysbai/gazdistrib-api/internal/domain/numbering"
	"github.com/ysbai/gazdistrib-api/internal/domain/repository"
)

// SettingsUseCase réglages de génération et gestion de la séquence de
// numérotation (réalignement opérateur).
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	seq          *numbering.Sequence
}

// NewSettingsUseCase construit le cas d'usage.
func NewSettingsUseCase(settingsRepo repository.SettingsRepository, seq *numbering.Sequence) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo, seq: seq}
}

// Get retourne les réglages courants (valeurs par défaut si jamais saisis).
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// Update remplace les réglages.
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.MaxInvoiceAmount.LessThan(in.MinInvoiceAmount) {
		return nil, domain.ErrInvalidInput
	}
	settings := &entity.Settings{
		SelectedCompany:   in.SelectedCompany,
		MinInvoiceAmount:  in.MinInvoiceAmount,
		MaxInvoiceAmount:  in.MaxInvoiceAmount,
		CustomDaysByMonth: in.CustomDaysByMonth,
		UpdatedAt:         time.Now(),
	}
	if err := uc.settingsRepo.Save(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// CurrentInvoiceNumber retourne la valeur courante du compteur (déclenche
// l'initialisation paresseuse depuis les factures persistées).
func (uc *SettingsUseCase) CurrentInvoiceNumber(ctx context.Context) dto.InvoiceNumberResponse {
	return dto.InvoiceNumberResponse{Current: uc.seq.Current()}
}

// SetInvoiceNumber réaligne la séquence : le prochain numéro émis sera
// exactement in.Next. Valeur non positive rejetée en amont par la validation.
func (uc *SettingsUseCase) SetInvoiceNumber(ctx context.Context, in dto.SetInvoiceNumberRequest) (dto.InvoiceNumberResponse, error) {
	if err := dto.Validate(in); err != nil {
		return dto.InvoiceNumberResponse{}, domain.ErrInvalidInput
	}
	uc.seq.SetCurrent(in.Next)
	return dto.InvoiceNumberResponse{Current: uc.seq.Current()}, nil
}

// Companies retourne le référentiel des sociétés émettrices.
func (uc *SettingsUseCase) Companies(ctx context.Context) []dto.CompanyResponse {
	out := make([]dto.CompanyResponse, 0, len(company.Names()))
	for _, name := range company.Names() {
		info := company.Get(name)
		out = append(out, dto.CompanyResponse{
			Name:    info.Name,
			Address: info.Address,
			Phone:   info.Phone,
			Fax:     info.Fax,
			RC:      info.RC,
			TF:      info.TF,
			IF:      info.IF,
			CNSS:    info.CNSS,
			Patente: info.Patente,
			ICE:     info.ICE,
		})
	}
	return out
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		SelectedCompany:   s.SelectedCompany,
		MinInvoiceAmount:  s.MinInvoiceAmount,
		MaxInvoiceAmount:  s.MaxInvoiceAmount,
		CustomDaysByMonth: s.CustomDaysByMonth,
	}
}

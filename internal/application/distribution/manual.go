package distribution

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ysbai/gazdistrib-api/internal/application/dto"
	"github.com/ysbai/gazdistrib-api/internal/domain"
	"github.com/ysbai/gazdistrib-api/internal/domain/company"
	"github.com/ysbai/gazdistrib-api/internal/domain/entity"
	"github.com/ysbai/gazdistrib-api/internal/domain/repository"
)

// ManualUseCase saisie manuelle de factures (préfixe FP). Partage la
// séquence de numérotation avec la génération automatique et décrémente le
// stock dans la même transaction que l'enregistrement.
type ManualUseCase struct {
	txRunner     TxRunner
	clientRepo   clientGetter
	settingsRepo settingsGetter
	seq          sequenceNexter
}

// Interfaces réduites pour ne dépendre que du nécessaire.
type clientGetter interface {
	GetByID(id string) (*entity.Client, error)
}

type settingsGetter interface {
	Get() (*entity.Settings, error)
}

type sequenceNexter interface {
	Next(effectiveDate time.Time, prefix string) string
}

// NewManualUseCase construit le cas d'usage.
func NewManualUseCase(txRunner TxRunner, clientRepo clientGetter, settingsRepo settingsGetter, seq sequenceNexter) *ManualUseCase {
	return &ManualUseCase{
		txRunner:     txRunner,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
		seq:          seq,
	}
}

// Create enregistre une facture manuelle : vérifie le stock de chaque ligne,
// le décrémente et persiste la facture, le tout atomiquement.
func (uc *ManualUseCase) Create(ctx context.Context, in dto.ManualInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if !entity.IsCylinderType(item.CylinderType) {
			return nil, domain.ErrInvalidInput
		}
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}

	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	settings, err := uc.settingsRepo.Get()
	companyName := company.DefaultName
	if err == nil {
		companyName = company.Resolve(*settings)
	}

	var inv *entity.Invoice
	err = uc.txRunner.Run(ctx, func(
		cylinderRepo repository.CylinderRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		var lines []entity.InvoiceLine
		for _, item := range in.Items {
			stock, err := cylinderRepo.GetByType(item.CylinderType)
			if err != nil {
				return err
			}
			if stock == nil || stock.RemainingQuantity < item.Quantity {
				return domain.ErrInsufficientStock
			}
			unitPrice := item.UnitPrice
			if unitPrice.IsZero() {
				unitPrice = stock.UnitPrice
			}
			lines = append(lines, entity.InvoiceLine{
				Description: item.CylinderType,
				Quantity:    item.Quantity,
				UnitPrice:   unitPrice,
				TaxRate:     stock.TaxRate,
				Amount:      unitPrice.Mul(decimal.NewFromInt(item.Quantity)),
			})
			stock.RemainingQuantity -= item.Quantity
			stock.DistributedQuantity += item.Quantity
			if err := cylinderRepo.Upsert(stock); err != nil {
				return err
			}
		}

		subtotal, taxAmount, total := entity.InvoiceTotals(lines)
		inv = &entity.Invoice{
			ID:          uuid.New().String(),
			Number:      uc.seq.Next(date, entity.PrefixManual),
			Date:        date,
			HideDay:     in.HideDay,
			Client:      *client,
			Items:       lines,
			Subtotal:    subtotal,
			TaxAmount:   taxAmount,
			Total:       total,
			CompanyName: companyName,
		}
		return invoiceRepo.Create(inv)
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewInvoiceResponse(*inv)
	return &resp, nil
}

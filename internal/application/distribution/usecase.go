// Package distribution orchestre la génération automatique de factures :
// chargement du stock, des clients et des réglages, exécution du moteur
// d'allocation, planification sur les jours de distribution, puis
// confirmation transactionnelle (factures + réconciliation du stock).
package distribution

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ysbai/gazdistrib-api/internal/application/dto"
	"github.com/ysbai/gazdistrib-api/internal/domain"
	"github.com/ysbai/gazdistrib-api/internal/domain/allocation"
	"github.com/ysbai/gazdistrib-api/internal/domain/calendar"
	"github.com/ysbai/gazdistrib-api/internal/domain/company"
	"github.com/ysbai/gazdistrib-api/internal/domain/entity"
	"github.com/ysbai/gazdistrib-api/internal/domain/numbering"
	"github.com/ysbai/gazdistrib-api/internal/domain/repository"
)

// pendingPreview génération en attente de confirmation. L'aperçu vit en
// mémoire : un seul acteur logique par instance, le mutex sérialise les
// déclenchements concurrents (deux onglets).
type pendingPreview struct {
	invoices  []entity.Invoice
	remaining []entity.CylinderStock
	days      []int
	month     int
	year      int
	hideDay   bool
}

// UseCase génération et confirmation des distributions.
type UseCase struct {
	mu           sync.Mutex
	txRunner     TxRunner
	cylinderRepo repository.CylinderRepository
	clientRepo   repository.ClientRepository
	settingsRepo repository.SettingsRepository
	seq          *numbering.Sequence
	pending      *pendingPreview
}

// NewUseCase construit le cas d'usage.
func NewUseCase(
	txRunner TxRunner,
	cylinderRepo repository.CylinderRepository,
	clientRepo repository.ClientRepository,
	settingsRepo repository.SettingsRepository,
	seq *numbering.Sequence,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		cylinderRepo: cylinderRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
		seq:          seq,
	}
}

// Generate exécute le moteur d'allocation et retourne l'aperçu. Rien n'est
// persisté : l'aperçu reste en attente jusqu'à Confirm (ou remplacement par
// une nouvelle génération). La séquence de numérotation avance dès la
// génération, un aperçu abandonné laisse donc un trou de numérotation —
// comportement voulu, un numéro émis n'est jamais réutilisé.
func (uc *UseCase) Generate(ctx context.Context, in dto.GenerateRequest) (*dto.GenerateResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	clients, err := uc.clientRepo.List()
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, domain.ErrNoClients
	}

	inventory, err := uc.cylinderRepo.List()
	if err != nil {
		return nil, err
	}
	hasStock := false
	for _, item := range inventory {
		if item.RemainingQuantity > 0 {
			hasStock = true
			break
		}
	}
	if !hasStock {
		return nil, domain.ErrInsufficientStock
	}

	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	if in.StartingNumber > 0 {
		uc.seq.Initialize(in.StartingNumber)
	}

	seed := in.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := allocation.NewEngine(rand.New(rand.NewSource(seed)), uc.seq)

	result := engine.Allocate(inventory, clients, allocation.Settings{
		MinInvoiceAmount: settings.MinInvoiceAmount,
		MaxInvoiceAmount: settings.MaxInvoiceAmount,
		CompanyName:      company.Resolve(*settings),
	}, in.HideDay, in.Month, in.Year)

	days := calendar.Days(in.Year, in.Month, in.Holidays, settings.CustomDays(in.Year, in.Month))
	scheduled := allocation.AssignDays(result.Invoices, days, in.Year, in.Month)

	uc.pending = &pendingPreview{
		invoices:  scheduled,
		remaining: result.RemainingInventory,
		days:      days,
		month:     in.Month,
		year:      in.Year,
		hideDay:   in.HideDay,
	}

	return &dto.GenerateResponse{
		Invoices:           dto.NewInvoiceResponses(scheduled),
		RemainingInventory: dto.NewStockResponses(result.RemainingInventory),
		RemainingValue:     entity.InventoryValueWithTax(result.RemainingInventory),
		DistributionDays:   days,
	}, nil
}

// Confirm persiste l'aperçu en attente dans une seule transaction :
// enregistrement des factures, puis clôture du stock du mois (distribué =
// total - restant, restant remis à zéro). IncludeRemainder replie d'abord le
// stock restant dans une dernière facture de reliquat.
func (uc *UseCase) Confirm(ctx context.Context, in dto.ConfirmRequest) (*dto.ConfirmResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.pending == nil {
		return nil, domain.ErrNoPendingPreview
	}
	pending := uc.pending

	invoices := make([]entity.Invoice, len(pending.invoices))
	copy(invoices, pending.invoices)

	remainderAdded := false
	if in.IncludeRemainder {
		if remainder := uc.buildRemainderInvoice(pending); remainder != nil {
			invoices = append(invoices, *remainder)
			remainderAdded = true
		}
	}

	err := uc.txRunner.Run(ctx, func(
		cylinderRepo repository.CylinderRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		for i := range invoices {
			if err := invoiceRepo.Create(&invoices[i]); err != nil {
				return err
			}
		}
		// Clôture du mois : le reliquat éventuel est soit facturé, soit
		// sorti du stock courant.
		for _, item := range pending.remaining {
			item.DistributedQuantity = item.TotalQuantity - item.RemainingQuantity
			item.RemainingQuantity = 0
			if err := cylinderRepo.Upsert(&item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.pending = nil
	return &dto.ConfirmResponse{
		SavedInvoices:  len(invoices),
		RemainderAdded: remainderAdded,
	}, nil
}

// Days retourne les jours de distribution d'un mois donné, en tenant compte
// des jours imposés des réglages et des fériés passés en paramètre.
func (uc *UseCase) Days(ctx context.Context, year, month int, holidays []int) (*dto.DaysResponse, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, domain.ErrInvalidInput
	}
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	days := calendar.Days(year, month, holidays, settings.CustomDays(year, month))
	return &dto.DaysResponse{Year: year, Month: month, Days: days}, nil
}

// buildRemainderInvoice construit la facture de reliquat à partir du stock
// restant de l'aperçu : toutes les quantités restantes, client tiré au
// hasard, datée au dernier jour planifié. Retourne nil si le reliquat est
// vide ou sans valeur.
func (uc *UseCase) buildRemainderInvoice(pending *pendingPreview) *entity.Invoice {
	var items []entity.InvoiceLine
	for _, item := range pending.remaining {
		if item.RemainingQuantity <= 0 {
			continue
		}
		items = append(items, entity.InvoiceLine{
			Description: item.Type,
			Quantity:    item.RemainingQuantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Amount:      item.UnitPrice.Mul(decimal.NewFromInt(item.RemainingQuantity)),
		})
	}
	if len(items) == 0 {
		return nil
	}
	subtotal, taxAmount, total := entity.InvoiceTotals(items)
	if !total.GreaterThan(decimal.Zero) {
		return nil
	}

	clients, err := uc.clientRepo.List()
	if err != nil || len(clients) == 0 {
		return nil
	}
	client := clients[rand.Intn(len(clients))]

	date := time.Date(pending.year, time.Month(pending.month), 1, 0, 0, 0, 0, time.UTC)
	if n := len(pending.invoices); n > 0 {
		date = pending.invoices[n-1].Date
	} else if n := len(pending.days); n > 0 {
		date = time.Date(pending.year, time.Month(pending.month), pending.days[n-1], 0, 0, 0, 0, time.UTC)
	}

	settings, err := uc.settingsRepo.Get()
	companyName := company.DefaultName
	if err == nil {
		companyName = company.Resolve(*settings)
	}

	return &entity.Invoice{
		ID:          uuid.New().String(),
		Number:      uc.seq.Next(date, entity.PrefixAutomatic),
		Date:        date,
		HideDay:     pending.hideDay,
		Client:      client,
		Items:       items,
		Subtotal:    subtotal,
		TaxAmount:   taxAmount,
		Total:       total,
		CompanyName: companyName,
	}
}

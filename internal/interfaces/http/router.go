package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ysbai/gazdistrib-api/internal/application/distribution"
	"github.com/ysbai/gazdistrib-api/internal/application/usecase"
)

// RouterDeps dépendances pour le router.
type RouterDeps struct {
	ClientUC       *usecase.ClientUseCase
	InventoryUC    *usecase.InventoryUseCase
	InvoiceUC      *usecase.InvoiceUseCase
	SettingsUC     *usecase.SettingsUseCase
	DistributionUC *distribution.UseCase
	ManualUC       *distribution.ManualUseCase
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Stock de bouteilles
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Put("/:type", inventoryHandler.Update)

	// Factures (consultation + saisie manuelle FP)
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ManualUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.CreateManual)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Distribution automatique
	dist := api.Group("/distribution")
	distributionHandler := NewDistributionHandler(deps.DistributionUC)
	dist.Get("/days", distributionHandler.Days)
	dist.Post("/generate", distributionHandler.Generate)
	dist.Post("/confirm", distributionHandler.Confirm)

	// Réglages et numérotation
	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
	settings.Get("/companies", settingsHandler.Companies)
	settings.Get("/invoice-number", settingsHandler.CurrentInvoiceNumber)
	settings.Put("/invoice-number", settingsHandler.SetInvoiceNumber)
}

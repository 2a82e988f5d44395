package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ysbai/gazdistrib-api/internal/application/distribution"
	"github.com/ysbai/gazdistrib-api/internal/application/usecase"
	"github.com/ysbai/gazdistrib-api/internal/domain/numbering"
	"github.com/ysbai/gazdistrib-api/internal/infrastructure/postgres"
	httpRouter "github.com/ysbai/gazdistrib-api/internal/interfaces/http"
	"github.com/ysbai/gazdistrib-api/pkg/config"
	"github.com/ysbai/gazdistrib-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration : " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	cylinderRepo := postgres.NewCylinderRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// La séquence reprend au maximum des numéros déjà persistés ; le chargement
	// est paresseux, déclenché à la première émission ou consultation.
	seq := numbering.NewSequence(func() []string {
		numbers, err := invoiceRepo.ListNumbers()
		if err != nil {
			log.Error().Err(err).Msg("chargement des numéros de facture")
			return nil
		}
		return numbers
	})

	clientUC := usecase.NewClientUseCase(clientRepo)
	inventoryUC := usecase.NewInventoryUseCase(cylinderRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, seq)
	distributionUC := distribution.NewUseCase(txRunner, cylinderRepo, clientRepo, settingsRepo, seq)
	manualUC := distribution.NewManualUseCase(txRunner, clientRepo, settingsRepo, seq)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GazDistrib API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:       clientUC,
		InventoryUC:    inventoryUC,
		InvoiceUC:      invoiceUC,
		SettingsUC:     settingsUC,
		DistributionUC: distributionUC,
		ManualUC:       manualUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ysbai/gazdistrib-api/internal/application/dto"
	"github.com/ysbai/gazdistrib-api/internal/application/usecase"
	"github.com/ysbai/gazdistrib-api/internal/domain"
)

// SettingsHandler gère les requêtes HTTP des réglages et de la numérotation.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construit le handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get retourne les réglages courants.
// @Summary      Réglages courants
// @Tags         settings
// @Produce      json
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.uc.Get(c.Context())
	if err != nil {
		return settingsError(c, err)
	}
	return c.JSON(settings)
}

// Update remplace les réglages.
// @Summary      Modifier les réglages
// @Tags         settings
// @Accept       json
// @Produce      json
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.SettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	settings, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return settingsError(c, err)
	}
	return c.JSON(settings)
}

// Companies retourne le référentiel des sociétés émettrices.
// @Summary      Sociétés émettrices
// @Tags         settings
// @Produce      json
// @Router       /api/settings/companies [get]
func (h *SettingsHandler) Companies(c *fiber.Ctx) error {
	return c.JSON(h.uc.Companies(c.Context()))
}

// CurrentInvoiceNumber retourne la valeur courante du compteur.
// @Summary      Compteur de numérotation
// @Tags         settings
// @Produce      json
// @Router       /api/settings/invoice-number [get]
func (h *SettingsHandler) CurrentInvoiceNumber(c *fiber.Ctx) error {
	return c.JSON(h.uc.CurrentInvoiceNumber(c.Context()))
}

// SetInvoiceNumber réaligne le compteur de numérotation.
// @Summary      Réaligner la numérotation
// @Tags         settings
// @Accept       json
// @Produce      json
// @Router       /api/settings/invoice-number [put]
func (h *SettingsHandler) SetInvoiceNumber(c *fiber.Ctx) error {
	var in dto.SetInvoiceNumberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	result, err := h.uc.SetInvoiceNumber(c.Context(), in)
	if err != nil {
		return settingsError(c, err)
	}
	return c.JSON(result)
}

func settingsError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "données invalides"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

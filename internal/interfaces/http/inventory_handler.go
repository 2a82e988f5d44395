package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/ysbai/gazdistrib-api/internal/application/dto"
	"github.com/ysbai/gazdistrib-api/internal/application/usecase"
	"github.com/ysbai/gazdistrib-api/internal/domain"
)

// InventoryHandler gère les requêtes HTTP du stock.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construit le handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List retourne le stock de tous les types de bouteilles.
// @Summary      Lister le stock
// @Tags         inventory
// @Produce      json
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	stock, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stock)
}

// Update met à jour le stock d'un type de bouteille. Le type est passé dans
// le chemin, URL-encodé (ex : PROPANE%2034%20KG).
// @Summary      Mettre à jour le stock d'un type
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Router       /api/inventory/{type} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	cylinderType, err := url.PathUnescape(c.Params("type"))
	if err != nil || cylinderType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type invalide"})
	}
	var in dto.StockUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	stock, err := h.uc.Update(c.Context(), cylinderType, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "données invalides"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stock)
}

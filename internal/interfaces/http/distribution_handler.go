package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ysbai/gazdistrib-api/internal/application/distribution"
	"github.com/ysbai/gazdistrib-api/internal/application/dto"
	"github.com/ysbai/gazdistrib-api/internal/domain"
)

// DistributionHandler gère les requêtes HTTP de la génération automatique.
type DistributionHandler struct {
	uc *distribution.UseCase
}

// NewDistributionHandler construit le handler.
func NewDistributionHandler(uc *distribution.UseCase) *DistributionHandler {
	return &DistributionHandler{uc: uc}
}

// Days retourne les jours de distribution d'un mois.
// GET /api/distribution/days?year=2026&month=9&holidays=1,15
// @Summary      Jours de distribution d'un mois
// @Tags         distribution
// @Produce      json
// @Router       /api/distribution/days [get]
func (h *DistributionHandler) Days(c *fiber.Ctx) error {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year et month requis"})
	}
	holidays, err := parseDayList(c.Query("holidays"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "holidays invalide"})
	}
	days, err := h.uc.Days(c.Context(), year, month, holidays)
	if err != nil {
		return distributionError(c, err)
	}
	return c.JSON(days)
}

// Generate exécute le moteur d'allocation et retourne l'aperçu.
// @Summary      Générer un aperçu de distribution
// @Tags         distribution
// @Accept       json
// @Produce      json
// @Router       /api/distribution/generate [post]
func (h *DistributionHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	preview, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		return distributionError(c, err)
	}
	return c.JSON(preview)
}

// Confirm persiste l'aperçu en attente.
// @Summary      Confirmer la distribution générée
// @Tags         distribution
// @Accept       json
// @Produce      json
// @Router       /api/distribution/confirm [post]
func (h *DistributionHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	result, err := h.uc.Confirm(c.Context(), in)
	if err != nil {
		return distributionError(c, err)
	}
	return c.JSON(result)
}

// parseDayList parse une liste de jours "1,15,21" (vide accepté).
func parseDayList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

func distributionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "données invalides"})
	case errors.Is(err, domain.ErrNoClients):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_CLIENTS", Message: "ajouter d'abord des clients"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_STOCK", Message: "aucun stock disponible"})
	case errors.Is(err, domain.ErrNoPendingPreview):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_PENDING", Message: "aucune génération en attente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

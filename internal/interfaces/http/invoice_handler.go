package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ysbai/gazdistrib-api/internal/application/distribution"
	"github.com/ysbai/gazdistrib-api/internal/application/dto"
	"github.com/ysbai/gazdistrib-api/internal/application/usecase"
	"github.com/ysbai/gazdistrib-api/internal/domain"
)

// InvoiceHandler gère les requêtes HTTP des factures : consultation,
// suppression et saisie manuelle (préfixe FP).
type InvoiceHandler struct {
	uc     *usecase.InvoiceUseCase
	manual *distribution.ManualUseCase
}

// NewInvoiceHandler construit le handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase, manual *distribution.ManualUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, manual: manual}
}

// List retourne toutes les factures.
// @Summary      Lister les factures
// @Tags         invoices
// @Produce      json
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.uc.List(c.Context())
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(invoices)
}

// GetByID retourne une facture avec ses lignes.
// @Summary      Détail d'une facture
// @Tags         invoices
// @Produce      json
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(invoice)
}

// CreateManual enregistre une facture manuelle et décrémente le stock.
// @Summary      Saisie manuelle d'une facture
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Router       /api/invoices [post]
func (h *InvoiceHandler) CreateManual(c *fiber.Ctx) error {
	var in dto.ManualInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	invoice, err := h.manual.Create(c.Context(), in)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// Delete supprime une facture.
// @Summary      Supprimer une facture
// @Tags         invoices
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return invoiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func invoiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "données invalides"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "facture ou client introuvable"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuffisant"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "numéro de facture déjà utilisé"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

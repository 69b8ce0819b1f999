package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Blackbiz-api/internal/application/dto"
	"github.com/jhoicas/Blackbiz-api/internal/application/subscription"
	"github.com/jhoicas/Blackbiz-api/internal/domain"
)

// SubscriptionHandler maneja el catálogo de planes y el borrador.
type SubscriptionHandler struct {
	uc *subscription.UseCase
}

// NewSubscriptionHandler construye el handler.
func NewSubscriptionHandler(uc *subscription.UseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// Tiers godoc
// @Summary      Catálogo fijo de planes de suscripción
// @Tags         subscription
// @Produce      json
// @Success      200  {array}  dto.TierResponse
// @Router       /api/subscription/tiers [get]
func (h *SubscriptionHandler) Tiers(c *fiber.Ctx) error {
	return c.JSON(h.uc.Tiers())
}

// GetDraft godoc
// @Summary      Borrador de suscripción vigente
// @Tags         subscription
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/subscription/draft [get]
func (h *SubscriptionHandler) GetDraft(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get())
}

// PutDraft godoc
// @Summary      Actualizar el borrador (sin validación de campos)
// @Tags         subscription
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DraftRequest  true  "tier_id y datos del negocio"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/subscription/draft [put]
func (h *SubscriptionHandler) PutDraft(c *fiber.Ctx) error {
	var in dto.DraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Set(in)
	if err != nil {
		if err == domain.ErrInvalidTier {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TIER", Message: "plan desconocido: debe ser basic, standard o premium"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteDraft godoc
// @Summary      Vaciar el borrador
// @Tags         subscription
// @Success      204
// @Router       /api/subscription/draft [delete]
func (h *SubscriptionHandler) DeleteDraft(c *fiber.Ctx) error {
	h.uc.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Blackbiz-api/internal/application/dto"
	"github.com/jhoicas/Blackbiz-api/internal/application/payment"
)

// PaymentHandler maneja el procedimiento de pago simulado.
type PaymentHandler struct {
	uc *payment.UseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payment.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Process godoc
// @Summary      Procesar suscripción (pasarela simulada)
// @Description  Valida el formulario, simula el cobro y el alta de la
// @Description  suscripción recurrente. Los errores de tarjeta llegan
// @Description  como success:false con mensaje legible, no como 5xx.
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessPaymentRequest  true  "plan, negocio y tarjeta"
// @Success      200   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payment/process [post]
func (h *PaymentHandler) Process(c *fiber.Ctx) error {
	var in dto.ProcessPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Process(c.UserContext(), in)
	if err != nil {
		var vErr *payment.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Payment processing failed. Please try again."})
	}
	return c.JSON(out)
}

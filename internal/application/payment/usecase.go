package payment

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Blackbiz-api/internal/application/dto"
	"github.com/jhoicas/Blackbiz-api/internal/application/ports"
	"github.com/jhoicas/Blackbiz-api/internal/application/subscription"
	"github.com/jhoicas/Blackbiz-api/internal/domain/entity"
)

// ValidationError fallo de validación de la entrada. Corta el flujo
// antes de tocar la pasarela; el handler lo mapea a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var expiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)

// UseCase procedimiento de pago simulado: valida la entrada, cobra vía
// la pasarela, crea la suscripción y limpia el borrador. No persiste
// nada: es estrictamente una simulación.
type UseCase struct {
	gateway ports.PaymentGateway
	draft   *subscription.UseCase
}

// NewUseCase construye el caso de uso de pago.
func NewUseCase(gateway ports.PaymentGateway, draft *subscription.UseCase) *UseCase {
	return &UseCase{gateway: gateway, draft: draft}
}

// Process ejecuta el flujo completo: validación → cobro → suscripción.
// Los errores de tarjeta simulados se devuelven como resultado
// estructurado {success:false, error}, nunca como error de Go; los
// errores de validación se devuelven como *ValidationError.
func (uc *UseCase) Process(ctx context.Context, in dto.ProcessPaymentRequest) (*dto.PaymentResponse, error) {
	if err := validate(in, time.Now()); err != nil {
		return nil, err
	}

	tierID := entity.TierID(in.TierID)
	amount := entity.TierPrice(tierID)
	card := ports.CardDetails{
		Number:     strings.ReplaceAll(in.CardNumber, " ", ""),
		Expiry:     in.ExpiryDate,
		CVV:        in.CVV,
		HolderName: in.CardHolderName,
	}

	charge, err := uc.gateway.Charge(ctx, card, amount, in.BusinessEmail)
	if err != nil {
		return cardFailure(err)
	}
	sub, err := uc.gateway.CreateSubscription(ctx, charge.CustomerID, tierID)
	if err != nil {
		return cardFailure(err)
	}

	// El borrador se limpia solo cuando el pago completo tuvo éxito.
	if uc.draft != nil {
		uc.draft.Clear()
	}

	return &dto.PaymentResponse{
		Success:         true,
		SubscriptionID:  sub.ID,
		CustomerID:      charge.CustomerID,
		ChargeID:        charge.ID,
		Amount:          amount.String(),
		Currency:        "USD",
		Status:          sub.Status,
		NextBillingDate: sub.CurrentPeriodEnd.UTC().Format(time.RFC3339),
		Message:         fmt.Sprintf("Successfully created %s subscription for %s", in.TierID, in.BusinessName),
	}, nil
}

// cardFailure convierte un *ports.CardError en resultado estructurado.
// Cualquier otro error se propaga como inesperado.
func cardFailure(err error) (*dto.PaymentResponse, error) {
	var cardErr *ports.CardError
	if errors.As(err, &cardErr) {
		return &dto.PaymentResponse{Success: false, Error: cardErr.Message}, nil
	}
	return nil, err
}

// validate aplica las reglas del formulario de pago. Corta en el primer
// fallo, igual que la pantalla original.
func validate(in dto.ProcessPaymentRequest, now time.Time) error {
	if !entity.ValidTier(entity.TierID(in.TierID)) {
		return &ValidationError{Message: "No subscription plan selected"}
	}
	if strings.TrimSpace(in.BusinessName) == "" {
		return &ValidationError{Message: "Please enter your business name"}
	}
	if strings.TrimSpace(in.BusinessEmail) == "" {
		return &ValidationError{Message: "Please enter your business email"}
	}
	digits := strings.ReplaceAll(in.CardNumber, " ", "")
	if digits == "" {
		return &ValidationError{Message: "Please enter your card number"}
	}
	if len(digits) < 13 || len(digits) > 19 {
		return &ValidationError{Message: "Please enter a valid card number"}
	}
	if strings.TrimSpace(in.ExpiryDate) == "" {
		return &ValidationError{Message: "Please enter your card expiry date"}
	}
	if !validExpiry(in.ExpiryDate, now) {
		return &ValidationError{Message: "Please enter a valid expiry date (MM/YY)"}
	}
	cvv := strings.TrimSpace(in.CVV)
	if len(cvv) < 3 || len(cvv) > 4 {
		return &ValidationError{Message: "Please enter a valid CVV"}
	}
	if strings.TrimSpace(in.CardHolderName) == "" {
		return &ValidationError{Message: "Please enter the cardholder name"}
	}
	return nil
}

// validExpiry valida formato MM/YY y que la fecha no esté en el pasado.
func validExpiry(expiry string, now time.Time) bool {
	if !expiryRe.MatchString(expiry) {
		return false
	}
	parts := strings.Split(expiry, "/")
	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])
	if month < 1 || month > 12 {
		return false
	}
	curYear := now.Year() % 100
	curMonth := int(now.Month())
	if year < curYear || (year == curYear && month < curMonth) {
		return false
	}
	return true
}

package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Blackbiz-api/internal/application/ports"
	"github.com/jhoicas/Blackbiz-api/internal/domain/entity"
)

// Tarjetas de prueba. Viven solo en este adaptador: los casos de uso no
// conocen ningún número mágico.
const (
	cardAccepted = "4242424242424242"
	cardDeclined = "4000000000000002"
	cardExpired  = "4000000000000069"
)

// Duración del período de facturación simulado.
const billingPeriod = 30 * 24 * time.Hour

// Asegura que MockGateway implementa ports.PaymentGateway.
var _ ports.PaymentGateway = (*MockGateway)(nil)

// MockGateway pasarela de pagos simulada al estilo Stripe: retrasos
// artificiales, tarjetas de prueba fijas e identificadores sintéticos.
// No realiza ninguna llamada externa ni persiste estado.
type MockGateway struct {
	env               string // "production" desactiva el rechazo de tarjetas no listadas
	chargeDelay       time.Duration
	subscriptionDelay time.Duration
	now               func() time.Time
}

// Config opciones del mock.
type Config struct {
	Env               string
	ChargeDelay       time.Duration
	SubscriptionDelay time.Duration
}

// NewMockGateway construye la pasarela simulada.
func NewMockGateway(cfg Config) *MockGateway {
	return &MockGateway{
		env:               cfg.Env,
		chargeDelay:       cfg.ChargeDelay,
		subscriptionDelay: cfg.SubscriptionDelay,
		now:               time.Now,
	}
}

// Charge simula el cobro. Las tarjetas de prueba producen los fallos
// fijos de rechazo y expiración; cualquier otro número distinto de la
// tarjeta aceptada se rechaza salvo en modo production.
func (g *MockGateway) Charge(ctx context.Context, card ports.CardDetails, amount decimal.Decimal, customerEmail string) (*ports.Charge, error) {
	if err := sleep(ctx, g.chargeDelay); err != nil {
		return nil, err
	}
	number := strings.ReplaceAll(card.Number, " ", "")
	switch number {
	case cardDeclined:
		return nil, &ports.CardError{Message: "Your card was declined."}
	case cardExpired:
		return nil, &ports.CardError{Message: "Your card has expired."}
	}
	if number != cardAccepted && g.env != "production" {
		return nil, &ports.CardError{Message: "Invalid card number. Use test card " + cardAccepted}
	}
	return &ports.Charge{
		ID:         "ch_" + token(),
		Amount:     amount,
		Currency:   "usd",
		Status:     "succeeded",
		CustomerID: "cus_" + token(),
	}, nil
}

// CreateSubscription simula el alta de la suscripción recurrente con el
// período de facturación terminando 30 días después.
func (g *MockGateway) CreateSubscription(ctx context.Context, customerID string, tier entity.TierID) (*ports.Subscription, error) {
	if err := sleep(ctx, g.subscriptionDelay); err != nil {
		return nil, err
	}
	now := g.now()
	return &ports.Subscription{
		ID:                 "sub_" + token(),
		CustomerID:         customerID,
		Status:             "active",
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   now.Add(billingPeriod),
	}, nil
}

// token identificador sintético corto al estilo de los ids de Stripe.
func token() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:13]
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

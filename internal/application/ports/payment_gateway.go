package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Blackbiz-api/internal/domain/entity"
)

// CardDetails datos de tarjeta tal como los envía el cliente. Nunca se
// persisten ni se loguean.
type CardDetails struct {
	Number     string
	Expiry     string // MM/YY
	CVV        string
	HolderName string
}

// Charge resultado de un cobro aceptado por la pasarela.
type Charge struct {
	ID         string
	Amount     decimal.Decimal
	Currency   string
	Status     string
	CustomerID string
}

// Subscription suscripción recurrente creada tras el cobro.
type Subscription struct {
	ID                 string
	CustomerID         string
	Status             string
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
}

// CardError error simulado de tarjeta (rechazada, expirada, inválida).
// Message es apto para mostrar al usuario final.
type CardError struct {
	Message string
}

func (e *CardError) Error() string { return e.Message }

// PaymentGateway define el puerto hacia la pasarela de pagos.
// Cualquier adaptador (mock en memoria, integración real) implementa este
// contrato; las tarjetas mágicas de prueba viven solo dentro del adaptador
// mock, nunca en los casos de uso.
type PaymentGateway interface {
	// Charge cobra amount a la tarjeta y crea el cliente en la pasarela.
	// Los fallos de tarjeta se devuelven como *CardError.
	Charge(ctx context.Context, card CardDetails, amount decimal.Decimal, customerEmail string) (*Charge, error)
	// CreateSubscription crea la suscripción recurrente del plan para el
	// cliente retornado por Charge. El período termina 30 días después.
	CreateSubscription(ctx context.Context, customerID string, tier entity.TierID) (*Subscription, error)
}

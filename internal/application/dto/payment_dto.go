package dto

// ProcessPaymentRequest entrada del procedimiento de pago. El número de
// tarjeta puede venir con espacios; se normaliza antes de validar.
type ProcessPaymentRequest struct {
	TierID         string `json:"tier_id" validate:"required,oneof=basic standard premium"`
	BusinessName   string `json:"business_name" validate:"required"`
	BusinessEmail  string `json:"business_email" validate:"required,email"`
	BusinessPhone  string `json:"business_phone" validate:"omitempty"`
	CardNumber     string `json:"card_number" validate:"required,min=13"`
	ExpiryDate     string `json:"expiry_date" validate:"required"` // MM/YY
	CVV            string `json:"cvv" validate:"required,min=3,max=4"`
	CardHolderName string `json:"card_holder_name" validate:"required"`
}

// PaymentResponse resultado del pago simulado. Success false lleva solo
// Error; success true lleva el resto de campos.
type PaymentResponse struct {
	Success        bool   `json:"success"`
	SubscriptionID string `json:"subscriptionId,omitempty"`
	CustomerID     string `json:"customerId,omitempty"`
	ChargeID       string `json:"chargeId,omitempty"`
	Amount         string `json:"amount,omitempty"`
	Currency       string `json:"currency,omitempty"`
	Status         string `json:"status,omitempty"`
	NextBillingDate string `json:"nextBillingDate,omitempty"`
	Message        string `json:"message,omitempty"`
	Error          string `json:"error,omitempty"`
}

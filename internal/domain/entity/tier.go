package entity

import "github.com/shopspring/decimal"

// TierID identifica un plan de suscripción (conjunto cerrado de tres).
type TierID string

// Planes válidos.
const (
	TierBasic    TierID = "basic"
	TierStandard TierID = "standard"
	TierPremium  TierID = "premium"
)

// SubscriptionTier entrada del catálogo de planes. Configuración estática,
// no se persiste.
type SubscriptionTier struct {
	ID       TierID
	Name     string
	Price    decimal.Decimal // USD por mes
	Features []string
	Color    string // hex para presentación
}

// SubscriptionTiers catálogo fijo de tres planes.
var SubscriptionTiers = []SubscriptionTier{
	{
		ID:    TierBasic,
		Name:  "Basic",
		Price: decimal.NewFromInt(20),
		Features: []string{
			"Business name listing",
			"Category listing",
			"Location on map",
			"Basic contact information",
		},
		Color: "#5D4A7E",
	},
	{
		ID:    TierStandard,
		Name:  "Standard",
		Price: decimal.NewFromInt(35),
		Features: []string{
			"Everything in Basic",
			"Business description",
			"Photo gallery (up to 5 photos)",
			"Business hours",
			"Full contact details",
			"Social media links",
		},
		Color: "#7E5D9B",
	},
	{
		ID:    TierPremium,
		Name:  "Premium",
		Price: decimal.NewFromInt(50),
		Features: []string{
			"Everything in Standard",
			"Priority placement in search results",
			"Featured on home screen",
			"Promotional banner",
			"Special offers section",
			"Unlimited photos",
			"Analytics dashboard",
		},
		Color: "#F2B705",
	},
}

// ValidTier indica si id es uno de los tres planes.
func ValidTier(id TierID) bool {
	return id == TierBasic || id == TierStandard || id == TierPremium
}

// TierByID busca el plan en el catálogo. Devuelve false si el id no existe.
func TierByID(id TierID) (SubscriptionTier, bool) {
	for _, t := range SubscriptionTiers {
		if t.ID == id {
			return t, true
		}
	}
	return SubscriptionTier{}, false
}

// TierPrice precio mensual del plan. Función total sobre ids válidos;
// para ids desconocidos devuelve cero.
func TierPrice(id TierID) decimal.Decimal {
	if t, ok := TierByID(id); ok {
		return t.Price
	}
	return decimal.Zero
}

// PhoneRequired indica si el teléfono del negocio es obligatorio para el plan.
// Opcional en basic, obligatorio en standard y premium.
func PhoneRequired(id TierID) bool {
	return id == TierStandard || id == TierPremium
}

package entity

import "time"

// BusinessCategory categoría de un negocio (conjunto cerrado).
type BusinessCategory string

// Categorías válidas del directorio.
const (
	CategoryRestaurant BusinessCategory = "restaurant"
	CategoryRetail     BusinessCategory = "retail"
	CategoryBeauty     BusinessCategory = "beauty"
	CategoryHealth     BusinessCategory = "health"
	CategoryService    BusinessCategory = "service"
	CategoryTech       BusinessCategory = "tech"
	CategoryArt        BusinessCategory = "art"
	CategoryEducation  BusinessCategory = "education"
	CategoryFinance    BusinessCategory = "finance"
	CategoryOther      BusinessCategory = "other"
)

// BusinessLocation dirección física y coordenadas para el mapa.
type BusinessLocation struct {
	Address   string
	City      string
	State     string
	Zip       string
	Latitude  float64
	Longitude float64
}

// BusinessContact canales de contacto, todos opcionales.
type BusinessContact struct {
	Phone     string
	Email     string
	Website   string
	Instagram string
	Twitter   string
	Facebook  string
}

// BusinessHours horario de un día de la semana. Si IsClosed es true,
// Open y Close quedan vacíos.
type BusinessHours struct {
	Day      string
	Open     string
	Close    string
	IsClosed bool
}

// Business un negocio del catálogo. ID es único dentro del catálogo.
type Business struct {
	ID               string
	Name             string
	Category         BusinessCategory
	SubscriptionTier TierID
	Description      string
	Location         BusinessLocation
	Contact          BusinessContact
	Photos           []string
	Hours            []BusinessHours // vacío si el negocio no publica horario
	Rating           float64         // 0 si no tiene reseñas
	ReviewCount      int
	SpecialOffers    []string
	Featured         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

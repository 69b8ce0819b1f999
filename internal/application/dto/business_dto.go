package dto

import "time"

// BusinessLocationDTO dirección y coordenadas.
type BusinessLocationDTO struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Zip       string  `json:"zip"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BusinessContactDTO canales de contacto (omitidos si están vacíos).
type BusinessContactDTO struct {
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// BusinessHoursDTO horario de un día.
type BusinessHoursDTO struct {
	Day      string `json:"day"`
	Open     string `json:"open"`
	Close    string `json:"close"`
	IsClosed bool   `json:"is_closed"`
}

// BusinessResponse salida de un negocio del catálogo.
type BusinessResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Category         string              `json:"category"`
	CategoryName     string              `json:"category_name"`
	CategoryIcon     string              `json:"category_icon"`
	SubscriptionTier string              `json:"subscription_tier"`
	Description      string              `json:"description,omitempty"`
	Location         BusinessLocationDTO `json:"location"`
	Contact          BusinessContactDTO  `json:"contact"`
	Photos           []string            `json:"photos"`
	Hours            []BusinessHoursDTO  `json:"hours,omitempty"`
	Rating           float64             `json:"rating,omitempty"`
	ReviewCount      int                 `json:"review_count,omitempty"`
	SpecialOffers    []string            `json:"special_offers,omitempty"`
	Featured         bool                `json:"featured"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// BusinessListResponse listado con los filtros vigentes.
type BusinessListResponse struct {
	Items            []BusinessResponse `json:"items"`
	Total            int                `json:"total"`
	SearchQuery      string             `json:"search_query,omitempty"`
	SelectedCategory string             `json:"selected_category,omitempty"`
}

// SearchRequest entrada para búsqueda por texto.
type SearchRequest struct {
	Query string `json:"query"`
}

// FilterRequest entrada para filtrar por categoría. Vacío limpia el filtro.
type FilterRequest struct {
	Category string `json:"category"`
}

// CategoryResponse una categoría del catálogo.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// FavoriteIDsResponse ids de negocios favoritos.
type FavoriteIDsResponse struct {
	IDs []string `json:"ids"`
}

// ToggleFavoriteResponse estado del favorito tras el toggle.
type ToggleFavoriteResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

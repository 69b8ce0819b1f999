package dto

// TierResponse un plan del catálogo de suscripciones.
type TierResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"` // decimal como string, ej. "35"
	Features []string `json:"features"`
	Color    string   `json:"color"`
}

// DraftRequest entrada para actualizar el borrador de suscripción.
// Los campos vacíos se escriben tal cual: el store no valida.
type DraftRequest struct {
	TierID        string `json:"tier_id"`
	BusinessName  string `json:"business_name"`
	BusinessEmail string `json:"business_email"`
	BusinessPhone string `json:"business_phone"`
}

// DraftResponse borrador vigente más los campos obligatorios del plan
// seleccionado (el teléfono solo es obligatorio en standard y premium).
type DraftResponse struct {
	TierID         string   `json:"tier_id,omitempty"`
	BusinessName   string   `json:"business_name,omitempty"`
	BusinessEmail  string   `json:"business_email,omitempty"`
	BusinessPhone  string   `json:"business_phone,omitempty"`
	RequiredFields []string `json:"required_fields,omitempty"`
}

package entity

// CategoryInfo metadatos de presentación de una categoría (nombre legible e icono).
type CategoryInfo struct {
	ID   BusinessCategory
	Name string
	Icon string
}

// Categories tabla estática de categorías en el orden en que se muestran.
// No se modifica en runtime.
var Categories = []CategoryInfo{
	{ID: CategoryRestaurant, Name: "Restaurants", Icon: "utensils"},
	{ID: CategoryRetail, Name: "Retail", Icon: "shopping-bag"},
	{ID: CategoryBeauty, Name: "Beauty & Barber", Icon: "scissors"},
	{ID: CategoryHealth, Name: "Health & Wellness", Icon: "heart"},
	{ID: CategoryService, Name: "Services", Icon: "briefcase"},
	{ID: CategoryTech, Name: "Technology", Icon: "laptop"},
	{ID: CategoryArt, Name: "Art & Culture", Icon: "palette"},
	{ID: CategoryEducation, Name: "Education", Icon: "book"},
	{ID: CategoryFinance, Name: "Financial", Icon: "dollar-sign"},
	{ID: CategoryOther, Name: "Other", Icon: "more-horizontal"},
}

// ValidCategory indica si id pertenece al conjunto cerrado de categorías.
func ValidCategory(id BusinessCategory) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// CategoryName devuelve el nombre legible de la categoría.
// Es una función total: para ids desconocidos devuelve "Other".
func CategoryName(id BusinessCategory) string {
	for _, c := range Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return "Other"
}

// CategoryIcon devuelve el icono de la categoría.
// Es una función total: para ids desconocidos devuelve "more-horizontal".
func CategoryIcon(id BusinessCategory) string {
	for _, c := range Categories {
		if c.ID == id {
			return c.Icon
		}
	}
	return "more-horizontal"
}

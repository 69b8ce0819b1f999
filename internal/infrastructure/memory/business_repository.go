package memory

import (
	"strings"

	"github.com/jhoicas/Blackbiz-api/internal/domain/entity"
	"github.com/jhoicas/Blackbiz-api/internal/domain/repository"
)

// Asegura que BusinessRepo implementa repository.BusinessRepository.
var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo catálogo estático en memoria. La lista no cambia en
// runtime, así que todas las operaciones son puras y deterministas.
type BusinessRepo struct {
	businesses []*entity.Business
	byID       map[string]*entity.Business
}

// NewBusinessRepository construye el catálogo con los datos de semilla.
func NewBusinessRepository() *BusinessRepo {
	return newBusinessRepository(seedBusinesses())
}

func newBusinessRepository(businesses []*entity.Business) *BusinessRepo {
	byID := make(map[string]*entity.Business, len(businesses))
	for _, b := range businesses {
		byID[b.ID] = b
	}
	return &BusinessRepo{businesses: businesses, byID: byID}
}

// List devuelve el catálogo completo en su orden original.
func (r *BusinessRepo) List() []*entity.Business {
	out := make([]*entity.Business, len(r.businesses))
	copy(out, r.businesses)
	return out
}

// GetByID devuelve nil si el id no existe.
func (r *BusinessRepo) GetByID(id string) *entity.Business {
	return r.byID[id]
}

// ByCategory filtra por categoría exacta.
func (r *BusinessRepo) ByCategory(category entity.BusinessCategory) []*entity.Business {
	out := make([]*entity.Business, 0)
	for _, b := range r.businesses {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// Featured devuelve el subconjunto destacado.
func (r *BusinessRepo) Featured() []*entity.Business {
	out := make([]*entity.Business, 0)
	for _, b := range r.businesses {
		if b.Featured {
			out = append(out, b)
		}
	}
	return out
}

// Search busca por substring case-insensitive en nombre, descripción,
// categoría, ciudad y estado.
func (r *BusinessRepo) Search(query string) []*entity.Business {
	q := strings.ToLower(query)
	out := make([]*entity.Business, 0)
	for _, b := range r.businesses {
		if strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(b.Description), q) ||
			strings.Contains(strings.ToLower(string(b.Category)), q) ||
			strings.Contains(strings.ToLower(b.Location.City), q) ||
			strings.Contains(strings.ToLower(b.Location.State), q) {
			out = append(out, b)
		}
	}
	return out
}

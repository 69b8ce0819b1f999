package repository

import "github.com/jhoicas/Blackbiz-api/internal/domain/entity"

// BusinessRepository define el puerto de lectura del catálogo de negocios.
// El catálogo es estático: todas las operaciones son puras y deterministas
// sobre la misma lista.
type BusinessRepository interface {
	// List devuelve el catálogo completo en su orden original.
	List() []*entity.Business
	// GetByID devuelve nil si el id no existe en el catálogo.
	GetByID(id string) *entity.Business
	// ByCategory filtra por categoría exacta.
	ByCategory(category entity.BusinessCategory) []*entity.Business
	// Featured devuelve el subconjunto destacado.
	Featured() []*entity.Business
	// Search busca por substring (case-insensitive) en nombre, descripción,
	// categoría, ciudad y estado.
	Search(query string) []*entity.Business
}

package repository

import "github.com/jhoicas/Blackbiz-api/internal/domain/entity"

// UserRepository define el puerto de la lista de usuarios (DIP).
// La implementación de referencia es volátil: los registros nuevos
// no sobreviven al reinicio del proceso.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	// FindByEmail busca por email con comparación case-insensitive.
	// Devuelve (nil, nil) si no existe.
	FindByEmail(email string) (*entity.User, error)
}

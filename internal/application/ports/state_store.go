package ports

import "context"

// Claves de almacenamiento de cada store. Cada store es el único
// escritor de su propia clave.
const (
	KeyBusinessStore     = "business-store"
	KeySessionStore      = "auth-store"
	KeySubscriptionStore = "subscription-store"
)

// StateStore define el puerto de persistencia clave→valor para el estado
// de los stores (favoritos, sesión, borrador de suscripción). Cada valor
// es un blob JSON que se carga completo al construir el store y se guarda
// completo en cada punto de guardado. No hay migraciones ni resolución
// de conflictos.
type StateStore interface {
	// Load devuelve (nil, nil) si la clave no existe.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

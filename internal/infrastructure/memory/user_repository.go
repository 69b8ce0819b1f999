package memory

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Blackbiz-api/internal/domain/entity"
	"github.com/jhoicas/Blackbiz-api/internal/domain/repository"
)

// Credenciales de la cuenta de demostración.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password123"
)

// Asegura que UserRepo implementa repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo lista de usuarios en memoria. Volátil: los registros nuevos
// se pierden al reiniciar el proceso. Viene sembrada con la cuenta demo.
type UserRepo struct {
	mu    sync.RWMutex
	users []*entity.User
}

// NewUserRepository construye la lista sembrada con el usuario demo.
// El hash bcrypt se genera al arrancar; el password en claro no se
// guarda en ninguna parte.
func NewUserRepository() (*UserRepo, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	demo := &entity.User{
		ID:           "1",
		Email:        DemoEmail,
		Name:         "Demo User",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	return &UserRepo{users: []*entity.User{demo}}, nil
}

// Create agrega el usuario a la lista.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
	return nil
}

// FindByID devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// FindByEmail busca con comparación case-insensitive.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

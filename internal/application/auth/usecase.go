package auth

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Blackbiz-api/internal/application/dto"
	"github.com/jhoicas/Blackbiz-api/internal/application/ports"
	"github.com/jhoicas/Blackbiz-api/internal/domain"
	"github.com/jhoicas/Blackbiz-api/internal/domain/entity"
	"github.com/jhoicas/Blackbiz-api/internal/domain/repository"
	"github.com/jhoicas/Blackbiz-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// persistedSession porción de la sesión que sobrevive al proceso:
// identidad del usuario y flag de autenticación. El password jamás
// se serializa.
type persistedSession struct {
	User *struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
	} `json:"user"`
	Authenticated bool `json:"authenticated"`
}

// UseCase casos de uso de autenticación: login, registro, logout y
// restauración de sesión. La lista de usuarios es volátil; la sesión
// persistida se revalida contra ella al construir el store, de modo que
// una sesión que apunte a un usuario ya inexistente se descarta.
type UseCase struct {
	userRepo repository.UserRepository
	state    ports.StateStore
	jwtCfg   JWTConfig
	delay    time.Duration // retraso artificial de login/register

	mu            sync.Mutex
	user          *entity.User
	authenticated bool
}

// NewUseCase construye el caso de uso y rehidrata la sesión persistida.
func NewUseCase(userRepo repository.UserRepository, state ports.StateStore, jwtCfg JWTConfig, delay time.Duration) *UseCase {
	uc := &UseCase{userRepo: userRepo, state: state, jwtCfg: jwtCfg, delay: delay}
	uc.restoreSession()
	return uc
}

// restoreSession carga la sesión persistida y la revalida contra la
// lista de usuarios. Si el usuario ya no existe (la lista es volátil),
// la sesión se descarta y se borra del almacenamiento.
func (uc *UseCase) restoreSession() {
	raw, err := uc.state.Load(context.Background(), ports.KeySessionStore)
	if err != nil || raw == nil {
		return
	}
	var st persistedSession
	if err := json.Unmarshal(raw, &st); err != nil || st.User == nil || !st.Authenticated {
		return
	}
	user, err := uc.userRepo.FindByID(st.User.ID)
	if err != nil || user == nil {
		log.Info().Str("user_id", st.User.ID).Msg("sesión persistida apunta a usuario inexistente, se descarta")
		if err := uc.state.Delete(context.Background(), ports.KeySessionStore); err != nil {
			log.Warn().Err(err).Msg("borrar sesión obsoleta")
		}
		return
	}
	uc.user = user
	uc.authenticated = true
}

// Login verifica email (case-insensitive) y password. Aplica el retraso
// artificial antes de resolver; el contexto puede cancelarlo.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	if err := sleep(ctx, uc.delay); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidPassword
	}
	return uc.openSession(user)
}

// Register crea un usuario nuevo si el email no está tomado
// (comparación case-insensitive) y abre sesión. El usuario se agrega a
// la lista en memoria: no sobrevive al reinicio del proceso.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.SessionResponse, error) {
	if err := sleep(ctx, uc.delay); err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(in.Email),
		Name:         in.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.openSession(user)
}

// Logout limpia la sesión en memoria y en el almacenamiento.
func (uc *UseCase) Logout() {
	uc.mu.Lock()
	uc.user = nil
	uc.authenticated = false
	uc.mu.Unlock()
	if err := uc.state.Delete(context.Background(), ports.KeySessionStore); err != nil {
		log.Warn().Err(err).Msg("borrar sesión persistida")
	}
}

// Session devuelve la sesión vigente sin token, o domain.ErrUnauthorized
// si no hay sesión abierta.
func (uc *UseCase) Session() (*dto.SessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.authenticated || uc.user == nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.SessionResponse{
		User:          toUserResponse(uc.user),
		Authenticated: true,
	}, nil
}

// openSession fija la sesión, la persiste (solo identidad + flag) y
// genera el token JWT.
func (uc *UseCase) openSession(user *entity.User) (*dto.SessionResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	uc.user = user
	uc.authenticated = true
	uc.mu.Unlock()
	uc.saveSession(user)
	return &dto.SessionResponse{
		Token:         token,
		User:          toUserResponse(user),
		Authenticated: true,
	}, nil
}

// saveSession persiste identidad + flag. Fire-and-forget: un fallo se
// loguea y no invalida el login.
func (uc *UseCase) saveSession(user *entity.User) {
	st := persistedSession{Authenticated: true}
	st.User = &struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
	}{ID: user.ID, Email: user.Email, Name: user.Name, CreatedAt: user.CreatedAt}
	raw, err := json.Marshal(st)
	if err != nil {
		log.Warn().Err(err).Msg("serializar sesión")
		return
	}
	if err := uc.state.Save(context.Background(), ports.KeySessionStore, raw); err != nil {
		log.Warn().Err(err).Msg("persistir sesión")
	}
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// sleep espera d respetando la cancelación del contexto.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("no existe una cuenta con ese email")
	ErrInvalidPassword    = errors.New("contraseña incorrecta")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCategory    = errors.New("categoría desconocida")
	ErrInvalidTier        = errors.New("plan de suscripción desconocido")
	ErrNoDraft            = errors.New("no hay borrador de suscripción")
)

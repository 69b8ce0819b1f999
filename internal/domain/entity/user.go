package entity

import "time"

// User usuario registrado en la aplicación. Vive solo en memoria:
// la lista de usuarios se reinicia con el proceso.
type User struct {
	ID           string
	Email        string // siempre en minúsculas
	Name         string
	PasswordHash string // bcrypt, nunca sale del repositorio en claro
	CreatedAt    time.Time
}

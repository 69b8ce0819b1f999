package state

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/Blackbiz-api/internal/application/ports"
)

// Asegura que FileStore implementa ports.StateStore.
var _ ports.StateStore = (*FileStore)(nil)

// FileStore persistencia de estado en archivos locales: un archivo JSON
// por clave bajo un directorio de datos. Es el análogo del storage
// local del dispositivo: sin locking entre procesos ni resolución de
// conflictos, aceptable porque cada store es el único escritor de su
// propia clave.
type FileStore struct {
	dir string
}

// NewFileStore construye el store creando el directorio si no existe.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de estado: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load devuelve (nil, nil) si la clave no existe.
func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer estado %q: %w", key, err)
	}
	return raw, nil
}

// Save escribe el blob completo de la clave.
func (s *FileStore) Save(_ context.Context, key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("guardar estado %q: %w", key, err)
	}
	return nil
}

// Delete elimina la clave; no es error que no exista.
func (s *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("borrar estado %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

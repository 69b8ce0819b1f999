package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Blackbiz-api/internal/application/ports"
)

// Asegura que RedisStore implementa ports.StateStore.
var _ ports.StateStore = (*RedisStore)(nil)

// RedisStore persistencia de estado sobre Redis, para despliegues donde
// el proceso no tiene disco propio. Mismo contrato que FileStore: un
// blob JSON por clave, sin expiración.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisConfig conexión a Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// Prefix se antepone a cada clave para aislar la aplicación
	// dentro de una instancia compartida.
	Prefix string
}

// NewRedisStore construye el store y verifica la conexión.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a redis: %w", err)
	}
	return &RedisStore{client: client, prefix: cfg.Prefix}, nil
}

// Load devuelve (nil, nil) si la clave no existe.
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer estado %q: %w", key, err)
	}
	return raw, nil
}

// Save escribe el blob sin expiración.
func (s *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("guardar estado %q: %w", key, err)
	}
	return nil
}

// Delete elimina la clave; no es error que no exista.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("borrar estado %q: %w", key, err)
	}
	return nil
}

// Close cierra la conexión.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper
// desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Auth    AuthConfig
	Payment PaymentConfig
	State   StateConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de los tokens de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig configuración del store de autenticación.
type AuthConfig struct {
	// LoginDelayMS retraso artificial de login/register en milisegundos,
	// para simular la latencia de un backend real. Cero lo desactiva.
	LoginDelayMS int
}

// LoginDelay retraso como Duration.
func (c AuthConfig) LoginDelay() time.Duration {
	return time.Duration(c.LoginDelayMS) * time.Millisecond
}

// PaymentConfig configuración de la pasarela simulada.
type PaymentConfig struct {
	ChargeDelayMS       int // retraso del cobro simulado
	SubscriptionDelayMS int // retraso del alta de suscripción simulada
}

// ChargeDelay retraso del cobro como Duration.
func (c PaymentConfig) ChargeDelay() time.Duration {
	return time.Duration(c.ChargeDelayMS) * time.Millisecond
}

// SubscriptionDelay retraso del alta como Duration.
func (c PaymentConfig) SubscriptionDelay() time.Duration {
	return time.Duration(c.SubscriptionDelayMS) * time.Millisecond
}

// StateConfig persistencia del estado de los stores.
type StateConfig struct {
	Backend       string // "file" o "redis"
	Dir           string // directorio de datos para el backend file
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo .env). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, HTTP_PORT, JWT_SECRET, STATE_BACKEND, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION_MINUTES"),
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		Auth: AuthConfig{
			LoginDelayMS: v.GetInt("AUTH_LOGIN_DELAY_MS"),
		},
		Payment: PaymentConfig{
			ChargeDelayMS:       v.GetInt("PAYMENT_CHARGE_DELAY_MS"),
			SubscriptionDelayMS: v.GetInt("PAYMENT_SUBSCRIPTION_DELAY_MS"),
		},
		State: StateConfig{
			Backend:       v.GetString("STATE_BACKEND"),
			Dir:           v.GetString("STATE_DIR"),
			RedisAddr:     v.GetString("STATE_REDIS_ADDR"),
			RedisPassword: v.GetString("STATE_REDIS_PASSWORD"),
			RedisDB:       v.GetInt("STATE_REDIS_DB"),
			RedisPrefix:   v.GetString("STATE_REDIS_PREFIX"),
		},
	}

	if cfg.State.Backend != "file" && cfg.State.Backend != "redis" {
		return nil, fmt.Errorf("STATE_BACKEND debe ser file o redis, no %q", cfg.State.Backend)
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET es requerido")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "blackbiz-api")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("JWT_EXPIRATION_MINUTES", 60*24)
	v.SetDefault("JWT_ISSUER", "blackbiz-api")
	v.SetDefault("AUTH_LOGIN_DELAY_MS", 1000)
	v.SetDefault("PAYMENT_CHARGE_DELAY_MS", 2000)
	v.SetDefault("PAYMENT_SUBSCRIPTION_DELAY_MS", 1000)
	v.SetDefault("STATE_BACKEND", "file")
	v.SetDefault("STATE_DIR", "./data")
	v.SetDefault("STATE_REDIS_ADDR", "localhost:6379")
	v.SetDefault("STATE_REDIS_PASSWORD", "")
	v.SetDefault("STATE_REDIS_DB", 0)
	v.SetDefault("STATE_REDIS_PREFIX", "blackbiz:")
}

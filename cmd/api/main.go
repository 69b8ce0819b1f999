package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Blackbiz-api/docs"
	"github.com/jhoicas/Blackbiz-api/internal/application/auth"
	"github.com/jhoicas/Blackbiz-api/internal/application/directory"
	"github.com/jhoicas/Blackbiz-api/internal/application/dto"
	"github.com/jhoicas/Blackbiz-api/internal/application/payment"
	"github.com/jhoicas/Blackbiz-api/internal/application/ports"
	"github.com/jhoicas/Blackbiz-api/internal/application/subscription"
	"github.com/jhoicas/Blackbiz-api/internal/infrastructure/gateway"
	"github.com/jhoicas/Blackbiz-api/internal/infrastructure/memory"
	"github.com/jhoicas/Blackbiz-api/internal/infrastructure/state"
	httpRouter "github.com/jhoicas/Blackbiz-api/internal/interfaces/http"
	"github.com/jhoicas/Blackbiz-api/pkg/config"
	"github.com/jhoicas/Blackbiz-api/pkg/logger"
)

// @title        BlackBiz Directory API
// @version      1.0
// @description  Directorio de negocios Black-owned: catálogo, búsqueda, favoritos y pago simulado.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var stateStore ports.StateStore
	switch cfg.State.Backend {
	case "redis":
		redisStore, err := state.NewRedisStore(ctx, state.RedisConfig{
			Addr:     cfg.State.RedisAddr,
			Password: cfg.State.RedisPassword,
			DB:       cfg.State.RedisDB,
			Prefix:   cfg.State.RedisPrefix,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisStore.Close()
		stateStore = redisStore
	default:
		fileStore, err := state.NewFileStore(cfg.State.Dir)
		if err != nil {
			log.Fatal().Err(err).Msg("directorio de estado")
		}
		stateStore = fileStore
	}

	businessRepo := memory.NewBusinessRepository()
	userRepo, err := memory.NewUserRepository()
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar usuarios")
	}

	directoryUC := directory.NewUseCase(businessRepo, stateStore)
	authUC := auth.NewUseCase(userRepo, stateStore, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.LoginDelay())
	subscriptionUC := subscription.NewUseCase(stateStore)

	mockGateway := gateway.NewMockGateway(gateway.Config{
		Env:               cfg.App.Env,
		ChargeDelay:       cfg.Payment.ChargeDelay(),
		SubscriptionDelay: cfg.Payment.SubscriptionDelay(),
	})
	paymentUC := payment.NewUseCase(mockGateway, subscriptionUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BlackBiz Directory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{
			Status:      "ok",
			Service:     cfg.App.Name,
			Environment: cfg.App.Env,
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DirectoryUC:    directoryUC,
		AuthUC:         authUC,
		SubscriptionUC: subscriptionUC,
		PaymentUC:      paymentUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

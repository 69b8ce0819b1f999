package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Blackbiz-api/internal/application/auth"
	"github.com/jhoicas/Blackbiz-api/internal/application/directory"
	"github.com/jhoicas/Blackbiz-api/internal/application/payment"
	"github.com/jhoicas/Blackbiz-api/internal/application/subscription"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DirectoryUC    *directory.UseCase
	AuthUC         *auth.UseCase
	SubscriptionUC *subscription.UseCase
	PaymentUC      *payment.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo y navegación (público)
	businesses := api.Group("/businesses")
	businessHandler := NewBusinessHandler(deps.DirectoryUC)
	businesses.Get("/", businessHandler.List)
	businesses.Get("/featured", businessHandler.Featured)
	businesses.Post("/search", businessHandler.Search)
	businesses.Post("/filter", businessHandler.Filter)
	businesses.Post("/reset", businessHandler.Reset)
	businesses.Get("/:id", businessHandler.GetByID)

	api.Get("/categories", businessHandler.Categories)

	// Favoritos (público, el store es único por despliegue como en el
	// dispositivo original)
	favorites := api.Group("/favorites")
	favoriteHandler := NewFavoriteHandler(deps.DirectoryUC)
	favorites.Get("/", favoriteHandler.List)
	favorites.Get("/ids", favoriteHandler.IDs)
	favorites.Post("/:id/toggle", favoriteHandler.Toggle)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/session", AuthMiddleware(deps.JWTSecret), authHandler.Session)

	// Suscripción: catálogo de planes y borrador
	subGroup := api.Group("/subscription")
	subHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subGroup.Get("/tiers", subHandler.Tiers)
	subGroup.Get("/draft", subHandler.GetDraft)
	subGroup.Put("/draft", subHandler.PutDraft)
	subGroup.Delete("/draft", subHandler.DeleteDraft)

	// Pago simulado
	paymentGroup := api.Group("/payment")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	paymentGroup.Post("/process", paymentHandler.Process)

	// Handoff de enlaces al navegador
	api.Get("/link", NewLinkHandler().Open)
}

package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Blackbiz-api/internal/application/auth"
	"github.com/jhoicas/Blackbiz-api/internal/application/directory"
	"github.com/jhoicas/Blackbiz-api/internal/application/payment"
	"github.com/jhoicas/Blackbiz-api/internal/application/subscription"
	"github.com/jhoicas/Blackbiz-api/internal/infrastructure/gateway"
	"github.com/jhoicas/Blackbiz-api/internal/infrastructure/memory"
	"github.com/jhoicas/Blackbiz-api/internal/infrastructure/state"
	apphttp "github.com/jhoicas/Blackbiz-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Blackbiz-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "blackbiz-test"
	testExpMin    = 60
)

// buildTestApp construye la aplicación completa con todos los casos de
// uso reales sobre un FileStore temporal, sin retrasos artificiales.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	fs, err := state.NewFileStore(t.TempDir())
	require.NoError(t, err)
	users, err := memory.NewUserRepository()
	require.NoError(t, err)

	directoryUC := directory.NewUseCase(memory.NewBusinessRepository(), fs)
	authUC := auth.NewUseCase(users, fs, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}, 0)
	subscriptionUC := subscription.NewUseCase(fs)
	paymentUC := payment.NewUseCase(gateway.NewMockGateway(gateway.Config{Env: "development"}), subscriptionUC)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		DirectoryUC:    directoryUC,
		AuthUC:         authUC,
		SubscriptionUC: subscriptionUC,
		PaymentUC:      paymentUC,
		JWTSecret:      testJWTSecret,
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del catálogo y la navegación
// ──────────────────────────────────────────────────────────────────────────────

func TestGetBusinesses_CatalogoCompleto(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/businesses", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items []map[string]interface{} `json:"items"`
		Total int                      `json:"total"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 10, body.Total)
	require.Len(t, body.Items, 10)
	assert.Equal(t, "Soul Food Kitchen", body.Items[0]["name"])
	assert.Equal(t, "Restaurants", body.Items[0]["category_name"],
		"cada negocio lleva los metadatos de presentación de su categoría")
}

func TestSearchBusinesses(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/businesses/search", map[string]string{"query": "soul"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Total       int    `json:"total"`
		SearchQuery string `json:"search_query"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "soul", body.SearchQuery)
}

func TestFilterBusinesses_CategoriaDesconocida(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/businesses/filter", map[string]string{"category": "groceries"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INVALID_CATEGORY")
}

func TestGetBusiness_Inexistente(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/businesses/999", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetCategories(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/categories", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cats []map[string]string
	decodeBody(t, resp, &cats)
	require.Len(t, cats, 10)
	assert.Equal(t, "more-horizontal", cats[9]["icon"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de favoritos
// ──────────────────────────────────────────────────────────────────────────────

func TestToggleFavorite_IdaYVuelta(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/favorites/3/toggle", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled struct {
		ID       string `json:"id"`
		Favorite bool   `json:"favorite"`
	}
	decodeBody(t, resp, &toggled)
	assert.True(t, toggled.Favorite)

	resp = doJSON(t, app, http.MethodGet, "/api/favorites/ids", nil)
	var ids struct {
		IDs []string `json:"ids"`
	}
	decodeBody(t, resp, &ids)
	assert.Equal(t, []string{"3"}, ids.IDs)

	resp = doJSON(t, app, http.MethodPost, "/api/favorites/3/toggle", nil)
	decodeBody(t, resp, &toggled)
	assert.False(t, toggled.Favorite, "el segundo toggle quita el favorito")
}

func TestToggleFavorite_NegocioInexistente(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/favorites/999/toggle", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CuentaDemo(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    memory.DemoEmail,
		"password": memory.DemoPassword,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var session struct {
		Token         string `json:"token"`
		Authenticated bool   `json:"authenticated"`
	}
	decodeBody(t, resp, &session)
	assert.True(t, session.Authenticated)
	assert.NotEmpty(t, session.Token)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    memory.DemoEmail,
		"password": "incorrecta",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Incorrect password")
}

func TestLogin_EmailDesconocido(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nadie@example.com",
		"password": "cualquiera",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "No account found with this email address")
}

func TestRegister_EmailTomado(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Imitadora",
		"email":    memory.DemoEmail,
		"password": "secreta123",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "An account with this email already exists")
}

func TestSession_SinToken(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/auth/session", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "MISSING_TOKEN")
}

func TestLogout_ConToken(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    memory.DemoEmail,
		"password": memory.DemoPassword,
	})
	var session struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &session)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	out, err := app.Test(req, -1)
	require.NoError(t, err)
	defer out.Body.Close()
	assert.Equal(t, http.StatusNoContent, out.StatusCode)

	// La sesión queda cerrada.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	out, err = app.Test(req, -1)
	require.NoError(t, err)
	defer out.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, out.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de suscripción y pago
// ──────────────────────────────────────────────────────────────────────────────

func TestSubscriptionFlow_BorradorYPago(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/subscription/tiers", nil)
	var tiers []map[string]interface{}
	decodeBody(t, resp, &tiers)
	require.Len(t, tiers, 3)

	resp = doJSON(t, app, http.MethodPut, "/api/subscription/draft", map[string]string{
		"tier_id":        "standard",
		"business_name":  "Soul Food Kitchen",
		"business_email": "info@soulfoodkitchen.com",
		"business_phone": "404-555-1234",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var draft struct {
		TierID         string   `json:"tier_id"`
		RequiredFields []string `json:"required_fields"`
	}
	decodeBody(t, resp, &draft)
	assert.Equal(t, "standard", draft.TierID)
	assert.Contains(t, draft.RequiredFields, "business_phone")

	resp = doJSON(t, app, http.MethodPost, "/api/payment/process", map[string]string{
		"tier_id":          "standard",
		"business_name":    "Soul Food Kitchen",
		"business_email":   "info@soulfoodkitchen.com",
		"card_number":      "4242 4242 4242 4242",
		"expiry_date":      "12/30",
		"cvv":              "123",
		"card_holder_name": "Demo User",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var paymentOut struct {
		Success        bool   `json:"success"`
		SubscriptionID string `json:"subscriptionId"`
		Amount         string `json:"amount"`
	}
	decodeBody(t, resp, &paymentOut)
	assert.True(t, paymentOut.Success)
	assert.NotEmpty(t, paymentOut.SubscriptionID)
	assert.Equal(t, "35", paymentOut.Amount)

	// El pago exitoso limpia el borrador.
	resp = doJSON(t, app, http.MethodGet, "/api/subscription/draft", nil)
	var after struct {
		TierID string `json:"tier_id"`
	}
	decodeBody(t, resp, &after)
	assert.Empty(t, after.TierID)
}

func TestPaymentProcess_TarjetaRechazada(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/payment/process", map[string]string{
		"tier_id":          "basic",
		"business_name":    "X",
		"business_email":   "x@example.com",
		"card_number":      "4000000000000002",
		"expiry_date":      "12/30",
		"cvv":              "123",
		"card_holder_name": "Demo User",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un fallo de tarjeta simulado no es un error HTTP")

	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	decodeBody(t, resp, &out)
	assert.False(t, out.Success)
	assert.Equal(t, "Your card was declined.", out.Error)
}

func TestPaymentProcess_ErrorDeValidacion(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/payment/process", map[string]string{
		"tier_id": "basic",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Please enter your business name")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del handoff de enlaces
// ──────────────────────────────────────────────────────────────────────────────

func TestLink_RedirigeNormalizando(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/link?url=www.soulfoodkitchen.com", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://www.soulfoodkitchen.com", resp.Header.Get("Location"))
	assert.Equal(t, "external", resp.Header.Get("X-Open-Mode"))
}

func TestLink_ModoEmbebido(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/link?url=example.com&mode=embedded", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "embedded", resp.Header.Get("X-Open-Mode"))
}

func TestLink_URLInvalida(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/link", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del middleware de auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"email":   apphttp.GetEmail(c),
		})
	})

	tok, err := pkgjwt.Generate(testJWTSecret, "1", memory.DemoEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "1", body["user_id"])
	assert.Equal(t, memory.DemoEmail, body["email"])
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer token.invalido.aqui")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "1", memory.DemoEmail, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, email, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)
	assert.Equal(t, memory.DemoEmail, email)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, "1", memory.DemoEmail, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "1", memory.DemoEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

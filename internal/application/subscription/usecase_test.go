package subscription_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Blackbiz-api/internal/application/dto"
	"github.com/jhoicas/Blackbiz-api/internal/application/ports"
	"github.com/jhoicas/Blackbiz-api/internal/application/subscription"
	"github.com/jhoicas/Blackbiz-api/internal/domain"
	"github.com/jhoicas/Blackbiz-api/internal/infrastructure/state"
)

func newUseCase(t *testing.T) (*subscription.UseCase, string) {
	t.Helper()
	dir := t.TempDir()
	return rebuild(t, dir), dir
}

func rebuild(t *testing.T, dir string) *subscription.UseCase {
	t.Helper()
	fs, err := state.NewFileStore(dir)
	require.NoError(t, err)
	return subscription.NewUseCase(fs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del catálogo de planes
// ──────────────────────────────────────────────────────────────────────────────

func TestTiers_CatalogoFijo(t *testing.T) {
	uc, _ := newUseCase(t)

	tiers := uc.Tiers()
	require.Len(t, tiers, 3)
	assert.Equal(t, "basic", tiers[0].ID)
	assert.Equal(t, "20", tiers[0].Price)
	assert.Equal(t, "standard", tiers[1].ID)
	assert.Equal(t, "35", tiers[1].Price)
	assert.Equal(t, "premium", tiers[2].ID)
	assert.Equal(t, "50", tiers[2].Price)
	assert.Equal(t, "#F2B705", tiers[2].Color)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del borrador
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_BorradorVacioAlArrancar(t *testing.T) {
	uc, _ := newUseCase(t)

	got := uc.Get()
	assert.Empty(t, got.TierID)
	assert.Empty(t, got.RequiredFields, "sin plan seleccionado no hay campos obligatorios")
}

func TestSet_GuardaElBorrador(t *testing.T) {
	uc, _ := newUseCase(t)

	got, err := uc.Set(dto.DraftRequest{
		TierID:        "basic",
		BusinessName:  "Soul Food Kitchen",
		BusinessEmail: "info@soulfoodkitchen.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "basic", got.TierID)
	assert.Equal(t, "Soul Food Kitchen", got.BusinessName)
	assert.Equal(t, []string{"business_name", "business_email"}, got.RequiredFields,
		"en basic el teléfono es opcional")
}

func TestSet_StandardExigeTelefono(t *testing.T) {
	uc, _ := newUseCase(t)

	got, err := uc.Set(dto.DraftRequest{TierID: "standard"})
	require.NoError(t, err)
	assert.Equal(t, []string{"business_name", "business_email", "business_phone"}, got.RequiredFields)
}

func TestSet_TierDesconocido(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Set(dto.DraftRequest{TierID: "enterprise"})
	assert.ErrorIs(t, err, domain.ErrInvalidTier)
}

// El tier vacío conserva el plan ya seleccionado: la pantalla de datos
// del negocio actualiza los campos sin re-enviar el plan.
func TestSet_TierVacioConservaElSeleccionado(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Set(dto.DraftRequest{TierID: "premium"})
	require.NoError(t, err)

	got, err := uc.Set(dto.DraftRequest{BusinessName: "Legacy Construction"})
	require.NoError(t, err)
	assert.Equal(t, "premium", got.TierID)
	assert.Equal(t, "Legacy Construction", got.BusinessName)
}

func TestClear_VaciaYBorraLaClave(t *testing.T) {
	dir := t.TempDir()
	fs, err := state.NewFileStore(dir)
	require.NoError(t, err)
	uc := subscription.NewUseCase(fs)

	_, err = uc.Set(dto.DraftRequest{TierID: "basic", BusinessName: "X"})
	require.NoError(t, err)

	uc.Clear()

	assert.Empty(t, uc.Get().TierID)
	raw, err := fs.Load(context.Background(), ports.KeySubscriptionStore)
	require.NoError(t, err)
	assert.Nil(t, raw, "limpiar borra también la clave persistida")
}

func TestBorrador_SobreviveAlReinicio(t *testing.T) {
	uc, dir := newUseCase(t)

	_, err := uc.Set(dto.DraftRequest{
		TierID:        "standard",
		BusinessName:  "Curl Culture Hair Salon",
		BusinessEmail: "hola@curlculture.com",
		BusinessPhone: "404-555-0000",
	})
	require.NoError(t, err)

	uc2 := rebuild(t, dir)
	got := uc2.Get()
	assert.Equal(t, "standard", got.TierID)
	assert.Equal(t, "Curl Culture Hair Salon", got.BusinessName)
	assert.Equal(t, "404-555-0000", got.BusinessPhone)
}

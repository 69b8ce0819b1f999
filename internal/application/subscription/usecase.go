package subscription

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Blackbiz-api/internal/application/dto"
	"github.com/jhoicas/Blackbiz-api/internal/application/ports"
	"github.com/jhoicas/Blackbiz-api/internal/domain"
	"github.com/jhoicas/Blackbiz-api/internal/domain/entity"
)

// persistedDraft el borrador completo se persiste tal cual.
type persistedDraft struct {
	SelectedTierID string `json:"selected_tier_id"`
	BusinessName   string `json:"business_name"`
	BusinessEmail  string `json:"business_email"`
	BusinessPhone  string `json:"business_phone"`
}

// UseCase store del borrador de suscripción: plan seleccionado y datos
// de contacto del negocio capturados durante el alta. El store no
// valida campos (eso es responsabilidad de la pantalla / del caso de
// uso de pago); solo el tier id se restringe al conjunto cerrado.
// Se limpia explícitamente cuando el pago termina con éxito.
type UseCase struct {
	state ports.StateStore

	mu    sync.Mutex
	draft persistedDraft
}

// NewUseCase construye el store y rehidrata el borrador persistido.
func NewUseCase(state ports.StateStore) *UseCase {
	uc := &UseCase{state: state}
	raw, err := state.Load(context.Background(), ports.KeySubscriptionStore)
	if err != nil {
		log.Warn().Err(err).Msg("cargar borrador de suscripción")
		return uc
	}
	if raw != nil {
		var d persistedDraft
		if err := json.Unmarshal(raw, &d); err == nil {
			uc.draft = d
		}
	}
	return uc
}

// Tiers devuelve el catálogo fijo de planes.
func (uc *UseCase) Tiers() []dto.TierResponse {
	out := make([]dto.TierResponse, 0, len(entity.SubscriptionTiers))
	for _, t := range entity.SubscriptionTiers {
		out = append(out, dto.TierResponse{
			ID:       string(t.ID),
			Name:     t.Name,
			Price:    t.Price.String(),
			Features: t.Features,
			Color:    t.Color,
		})
	}
	return out
}

// Set actualiza el borrador y lo persiste. Devuelve domain.ErrInvalidTier
// si se envía un tier fuera del conjunto cerrado; tier vacío conserva el
// plan ya seleccionado.
func (uc *UseCase) Set(in dto.DraftRequest) (*dto.DraftResponse, error) {
	if in.TierID != "" && !entity.ValidTier(entity.TierID(in.TierID)) {
		return nil, domain.ErrInvalidTier
	}
	uc.mu.Lock()
	if in.TierID != "" {
		uc.draft.SelectedTierID = in.TierID
	}
	uc.draft.BusinessName = in.BusinessName
	uc.draft.BusinessEmail = in.BusinessEmail
	uc.draft.BusinessPhone = in.BusinessPhone
	snapshot := uc.draft
	uc.mu.Unlock()
	uc.save(snapshot)
	return draftResponse(snapshot), nil
}

// Get devuelve el borrador vigente.
func (uc *UseCase) Get() *dto.DraftResponse {
	uc.mu.Lock()
	snapshot := uc.draft
	uc.mu.Unlock()
	return draftResponse(snapshot)
}

// Clear vacía el borrador y borra la clave persistida. Se invoca tras
// un pago exitoso.
func (uc *UseCase) Clear() {
	uc.mu.Lock()
	uc.draft = persistedDraft{}
	uc.mu.Unlock()
	if err := uc.state.Delete(context.Background(), ports.KeySubscriptionStore); err != nil {
		log.Warn().Err(err).Msg("borrar borrador de suscripción")
	}
}

// save persiste el borrador completo. Fire-and-forget.
func (uc *UseCase) save(d persistedDraft) {
	raw, err := json.Marshal(d)
	if err != nil {
		log.Warn().Err(err).Msg("serializar borrador")
		return
	}
	if err := uc.state.Save(context.Background(), ports.KeySubscriptionStore, raw); err != nil {
		log.Warn().Err(err).Msg("persistir borrador")
	}
}

// draftResponse arma la respuesta incluyendo los campos obligatorios
// del plan seleccionado (teléfono solo en standard y premium).
func draftResponse(d persistedDraft) *dto.DraftResponse {
	resp := &dto.DraftResponse{
		TierID:        d.SelectedTierID,
		BusinessName:  d.BusinessName,
		BusinessEmail: d.BusinessEmail,
		BusinessPhone: d.BusinessPhone,
	}
	if d.SelectedTierID != "" {
		resp.RequiredFields = []string{"business_name", "business_email"}
		if entity.PhoneRequired(entity.TierID(d.SelectedTierID)) {
			resp.RequiredFields = append(resp.RequiredFields, "business_phone")
		}
	}
	return resp
}

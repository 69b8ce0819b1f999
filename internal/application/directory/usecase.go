package directory

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Blackbiz-api/internal/application/dto"
	"github.com/jhoicas/Blackbiz-api/internal/application/ports"
	"github.com/jhoicas/Blackbiz-api/internal/domain"
	"github.com/jhoicas/Blackbiz-api/internal/domain/entity"
	"github.com/jhoicas/Blackbiz-api/internal/domain/repository"
)

// persistedState porción del store que sobrevive al proceso: solo los
// ids de favoritos. La vista filtrada y la query son transitorias.
type persistedState struct {
	FavoriteBusinessIDs []string `json:"favorite_business_ids"`
}

// UseCase store de navegación del directorio: vista filtrada vigente,
// query de búsqueda, categoría seleccionada y favoritos persistidos.
// Los filtros siempre parten del catálogo completo, nunca se componen
// sobre el resultado anterior.
type UseCase struct {
	repo  repository.BusinessRepository
	state ports.StateStore

	mu               sync.Mutex
	view             []*entity.Business
	searchQuery      string
	selectedCategory entity.BusinessCategory
	favoriteIDs      []string
}

// NewUseCase construye el store y rehidrata los favoritos persistidos.
// Un blob corrupto o ilegible se descarta y se parte de cero.
func NewUseCase(repo repository.BusinessRepository, state ports.StateStore) *UseCase {
	uc := &UseCase{
		repo:  repo,
		state: state,
		view:  repo.List(),
	}
	raw, err := state.Load(context.Background(), ports.KeyBusinessStore)
	if err != nil {
		log.Warn().Err(err).Msg("no se pudo cargar el estado de favoritos")
		return uc
	}
	if raw != nil {
		var st persistedState
		if err := json.Unmarshal(raw, &st); err == nil {
			uc.favoriteIDs = st.FavoriteBusinessIDs
		}
	}
	return uc
}

// Current devuelve la vista filtrada vigente.
func (uc *UseCase) Current() *dto.BusinessListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.listResponse()
}

// Search fija la query y recalcula la vista desde el catálogo completo.
// Query vacía (o solo espacios) restaura el catálogo sin filtrar.
func (uc *UseCase) Search(query string) *dto.BusinessListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.searchQuery = query
	uc.selectedCategory = ""
	if strings.TrimSpace(query) == "" {
		uc.view = uc.repo.List()
	} else {
		uc.view = uc.repo.Search(query)
	}
	return uc.listResponse()
}

// FilterByCategory fija la categoría y recalcula la vista. Categoría
// vacía limpia el filtro. Devuelve domain.ErrInvalidCategory si el id
// no pertenece al conjunto cerrado.
func (uc *UseCase) FilterByCategory(category string) (*dto.BusinessListResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if category == "" {
		uc.selectedCategory = ""
		uc.searchQuery = ""
		uc.view = uc.repo.List()
		return uc.listResponse(), nil
	}
	cat := entity.BusinessCategory(category)
	if !entity.ValidCategory(cat) {
		return nil, domain.ErrInvalidCategory
	}
	uc.selectedCategory = cat
	uc.searchQuery = ""
	uc.view = uc.repo.ByCategory(cat)
	return uc.listResponse(), nil
}

// ResetFilters restaura la vista al catálogo completo sin filtros.
func (uc *UseCase) ResetFilters() *dto.BusinessListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.searchQuery = ""
	uc.selectedCategory = ""
	uc.view = uc.repo.List()
	return uc.listResponse()
}

// GetByID devuelve un negocio del catálogo, o nil si no existe.
func (uc *UseCase) GetByID(id string) *dto.BusinessResponse {
	b := uc.repo.GetByID(id)
	if b == nil {
		return nil
	}
	resp := toBusinessResponse(b)
	return &resp
}

// Featured devuelve los negocios destacados, siempre sobre el catálogo
// completo, independiente de los filtros vigentes.
func (uc *UseCase) Featured() []dto.BusinessResponse {
	return toBusinessResponses(uc.repo.Featured())
}

// Categories devuelve la tabla estática de categorías.
func (uc *UseCase) Categories() []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(entity.Categories))
	for _, c := range entity.Categories {
		out = append(out, dto.CategoryResponse{ID: string(c.ID), Name: c.Name, Icon: c.Icon})
	}
	return out
}

// ToggleFavorite agrega o quita el id del conjunto de favoritos
// (operación simétrica) y persiste el conjunto. Devuelve
// domain.ErrNotFound si el negocio no está en el catálogo.
func (uc *UseCase) ToggleFavorite(id string) (*dto.ToggleFavoriteResponse, error) {
	if uc.repo.GetByID(id) == nil {
		return nil, domain.ErrNotFound
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	found := false
	next := make([]string, 0, len(uc.favoriteIDs))
	for _, fid := range uc.favoriteIDs {
		if fid == id {
			found = true
			continue
		}
		next = append(next, fid)
	}
	if !found {
		next = append(next, id)
	}
	uc.favoriteIDs = next
	uc.saveFavorites()
	return &dto.ToggleFavoriteResponse{ID: id, Favorite: !found}, nil
}

// IsFavorite indica si el id está en el conjunto de favoritos.
func (uc *UseCase) IsFavorite(id string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, fid := range uc.favoriteIDs {
		if fid == id {
			return true
		}
	}
	return false
}

// FavoriteIDs devuelve los ids favoritos en orden de inserción.
func (uc *UseCase) FavoriteIDs() *dto.FavoriteIDsResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	ids := make([]string, len(uc.favoriteIDs))
	copy(ids, uc.favoriteIDs)
	return &dto.FavoriteIDsResponse{IDs: ids}
}

// FavoriteBusinesses deriva la lista de favoritos intersectando los ids
// con el catálogo, en el orden del catálogo. Ids que ya no existan en el
// catálogo simplemente no aparecen.
func (uc *UseCase) FavoriteBusinesses() []dto.BusinessResponse {
	uc.mu.Lock()
	fav := make(map[string]bool, len(uc.favoriteIDs))
	for _, id := range uc.favoriteIDs {
		fav[id] = true
	}
	uc.mu.Unlock()

	out := make([]dto.BusinessResponse, 0, len(fav))
	for _, b := range uc.repo.List() {
		if fav[b.ID] {
			out = append(out, toBusinessResponse(b))
		}
	}
	return out
}

// saveFavorites persiste el conjunto de favoritos. Escritura
// fire-and-forget: un fallo se loguea y no interrumpe la operación.
// Se llama con uc.mu tomado.
func (uc *UseCase) saveFavorites() {
	raw, err := json.Marshal(persistedState{FavoriteBusinessIDs: uc.favoriteIDs})
	if err != nil {
		log.Warn().Err(err).Msg("serializar favoritos")
		return
	}
	if err := uc.state.Save(context.Background(), ports.KeyBusinessStore, raw); err != nil {
		log.Warn().Err(err).Msg("persistir favoritos")
	}
}

// listResponse arma la respuesta de listado con los filtros vigentes.
// Se llama con uc.mu tomado.
func (uc *UseCase) listResponse() *dto.BusinessListResponse {
	return &dto.BusinessListResponse{
		Items:            toBusinessResponses(uc.view),
		Total:            len(uc.view),
		SearchQuery:      uc.searchQuery,
		SelectedCategory: string(uc.selectedCategory),
	}
}

func toBusinessResponses(list []*entity.Business) []dto.BusinessResponse {
	out := make([]dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBusinessResponse(b))
	}
	return out
}

func toBusinessResponse(b *entity.Business) dto.BusinessResponse {
	hours := make([]dto.BusinessHoursDTO, 0, len(b.Hours))
	for _, h := range b.Hours {
		hours = append(hours, dto.BusinessHoursDTO{Day: h.Day, Open: h.Open, Close: h.Close, IsClosed: h.IsClosed})
	}
	return dto.BusinessResponse{
		ID:               b.ID,
		Name:             b.Name,
		Category:         string(b.Category),
		CategoryName:     entity.CategoryName(b.Category),
		CategoryIcon:     entity.CategoryIcon(b.Category),
		SubscriptionTier: string(b.SubscriptionTier),
		Description:      b.Description,
		Location: dto.BusinessLocationDTO{
			Address: b.Location.Address, City: b.Location.City, State: b.Location.State,
			Zip: b.Location.Zip, Latitude: b.Location.Latitude, Longitude: b.Location.Longitude,
		},
		Contact: dto.BusinessContactDTO{
			Phone: b.Contact.Phone, Email: b.Contact.Email, Website: b.Contact.Website,
			Instagram: b.Contact.Instagram, Twitter: b.Contact.Twitter, Facebook: b.Contact.Facebook,
		},
		Photos:        b.Photos,
		Hours:         hours,
		Rating:        b.Rating,
		ReviewCount:   b.ReviewCount,
		SpecialOffers: b.SpecialOffers,
		Featured:      b.Featured,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

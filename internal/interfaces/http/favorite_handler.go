package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Blackbiz-api/internal/application/directory"
	"github.com/jhoicas/Blackbiz-api/internal/application/dto"
	"github.com/jhoicas/Blackbiz-api/internal/domain"
)

// FavoriteHandler maneja el conjunto de favoritos.
type FavoriteHandler struct {
	uc *directory.UseCase
}

// NewFavoriteHandler construye el handler.
func NewFavoriteHandler(uc *directory.UseCase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// List godoc
// @Summary      Negocios favoritos (intersección con el catálogo)
// @Tags         favorites
// @Produce      json
// @Success      200  {array}  dto.BusinessResponse
// @Router       /api/favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.FavoriteBusinesses())
}

// IDs godoc
// @Summary      Ids de favoritos en orden de inserción
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  dto.FavoriteIDsResponse
// @Router       /api/favorites/ids [get]
func (h *FavoriteHandler) IDs(c *fiber.Ctx) error {
	return c.JSON(h.uc.FavoriteIDs())
}

// Toggle godoc
// @Summary      Agregar o quitar un favorito (operación simétrica)
// @Tags         favorites
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.ToggleFavoriteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/favorites/{id}/toggle [post]
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.ToggleFavorite(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

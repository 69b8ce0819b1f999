package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Blackbiz-api/internal/application/directory"
	"github.com/jhoicas/Blackbiz-api/internal/application/dto"
	"github.com/jhoicas/Blackbiz-api/internal/domain"
)

// BusinessHandler maneja las peticiones del catálogo y los filtros.
type BusinessHandler struct {
	uc *directory.UseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *directory.UseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// List godoc
// @Summary      Vista filtrada vigente del directorio
// @Tags         businesses
// @Produce      json
// @Success      200  {object}  dto.BusinessListResponse
// @Router       /api/businesses [get]
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.Current())
}

// GetByID godoc
// @Summary      Obtener negocio por ID
// @Tags         businesses
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/businesses/{id} [get]
func (h *BusinessHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out := h.uc.GetByID(id)
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
	}
	return c.JSON(out)
}

// Featured godoc
// @Summary      Negocios destacados
// @Tags         businesses
// @Produce      json
// @Success      200  {array}  dto.BusinessResponse
// @Router       /api/businesses/featured [get]
func (h *BusinessHandler) Featured(c *fiber.Ctx) error {
	return c.JSON(h.uc.Featured())
}

// Search godoc
// @Summary      Buscar por texto en el catálogo
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SearchRequest  true  "query"
// @Success      200   {object}  dto.BusinessListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/businesses/search [post]
func (h *BusinessHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.Search(in.Query))
}

// Filter godoc
// @Summary      Filtrar por categoría
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FilterRequest  true  "category (vacío limpia el filtro)"
// @Success      200   {object}  dto.BusinessListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/businesses/filter [post]
func (h *BusinessHandler) Filter(c *fiber.Ctx) error {
	var in dto.FilterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.FilterByCategory(in.Category)
	if err != nil {
		if err == domain.ErrInvalidCategory {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CATEGORY", Message: "categoría desconocida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Reset godoc
// @Summary      Limpiar filtros y restaurar el catálogo completo
// @Tags         businesses
// @Produce      json
// @Success      200  {object}  dto.BusinessListResponse
// @Router       /api/businesses/reset [post]
func (h *BusinessHandler) Reset(c *fiber.Ctx) error {
	return c.JSON(h.uc.ResetFilters())
}

// Categories godoc
// @Summary      Tabla estática de categorías
// @Tags         businesses
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *BusinessHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Blackbiz-api/internal/application/dto"
	"github.com/jhoicas/Blackbiz-api/pkg/weburl"
)

// LinkHandler normaliza URLs externas y entrega el handoff al
// navegador del cliente.
type LinkHandler struct{}

// NewLinkHandler construye el handler.
func NewLinkHandler() *LinkHandler {
	return &LinkHandler{}
}

// Open godoc
// @Summary      Abrir un enlace externo
// @Description  Normaliza la URL (agrega https:// si falta esquema) y
// @Description  redirige. mode=embedded indica al cliente abrir en el
// @Description  navegador embebido; cualquier otro valor, en el del
// @Description  sistema.
// @Tags         link
// @Param        url   query  string  true   "URL destino"
// @Param        mode  query  string  false  "embedded o external"  default(external)
// @Success      302
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/link [get]
func (h *LinkHandler) Open(c *fiber.Ctx) error {
	raw := c.Query("url")
	normalized, err := weburl.Normalize(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_URL", Message: "url inválida o vacía"})
	}
	// El modo viaja de vuelta en un header para que el cliente decida
	// la superficie (embebida o navegador del sistema).
	mode := c.Query("mode", "external")
	if mode != "embedded" {
		mode = "external"
	}
	c.Set("X-Open-Mode", mode)
	return c.Redirect(normalized, fiber.StatusFound)
}

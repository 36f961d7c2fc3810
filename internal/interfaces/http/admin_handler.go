package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/wsuarezb/toolstock-api/internal/application/inventory"
)

// AdminHandler operaciones administrativas irreversibles sobre el registro
// (protegido por la sesión administrativa).
type AdminHandler struct {
	uc *inventory.UseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *inventory.UseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// DeleteTool borra una herramienta y su historial completo.
func (h *AdminHandler) DeleteTool(c *fiber.Ctx) error {
	if err := h.uc.DeleteTool(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "herramienta eliminada con su historial"})
}

// DeactivateTool baja lógica de una herramienta.
func (h *AdminHandler) DeactivateTool(c *fiber.Ctx) error {
	if err := h.uc.DeactivateTool(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "herramienta desactivada"})
}

// ResetAllData purga movimientos y herramientas.
func (h *AdminHandler) ResetAllData(c *fiber.Ctx) error {
	if err := h.uc.ResetAllData(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "datos de inventario reiniciados"})
}

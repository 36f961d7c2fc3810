package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/wsuarezb/toolstock-api/internal/application/inventory"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// StockHandler consultas de stock derivado y del registro de herramientas.
type StockHandler struct {
	uc *inventory.QueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.QueryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// StockInLocation godoc
// @Summary      Stock por ubicación
// @Tags         stock
// @Produce      json
// @Param        location       path   string  true   "Warehouse | Field | Installed"
// @Param        category       query  string  false  "Unique | Miscellaneous"
// @Param        application    query  string  false  "Aplicación de la herramienta"
// @Param        specific_type  query  string  false  "Tipo específico"
// @Param        well           query  string  false  "Pozo (solo Field/Installed)"
// @Success      200  {array}   dto.StockLineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/{location} [get]
func (h *StockHandler) StockInLocation(c *fiber.Ctx) error {
	loc := entity.Location(c.Params("location"))
	f := repository.StockFilter{}
	if v := c.Query("category"); v != "" {
		cat := entity.ToolCategory(v)
		f.Category = &cat
	}
	if v := c.Query("application"); v != "" {
		app := entity.Application(v)
		f.Application = &app
	}
	if v := c.Query("specific_type"); v != "" {
		f.SpecificType = &v
	}
	if v := c.Query("well"); v != "" {
		f.Well = &v
	}
	lines, err := h.uc.StockInLocation(c.Context(), loc, f)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.StockLineResponse{
			ToolID:       l.ToolID,
			DisplayName:  l.DisplayName,
			PartNumber:   l.PartNumber,
			SerialNumber: l.SerialNumber,
			Category:     string(l.Category),
			Quantity:     l.Quantity,
			Well:         l.Well,
		})
	}
	return c.JSON(out)
}

// ToolDetail godoc
// @Summary      Detalle de una herramienta con su stock derivado
// @Tags         stock
// @Produce      json
// @Param        id  path  string  true  "ID de la herramienta"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tools/{id} [get]
func (h *StockHandler) ToolDetail(c *fiber.Ctx) error {
	tool, stock, err := h.uc.ToolDetail(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"tool":  toToolResponse(tool),
		"stock": toStockReportResponse(stock),
	})
}

// ListTools godoc
// @Summary      Listar el registro de herramientas
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.ToolResponse
// @Router       /api/tools [get]
func (h *StockHandler) ListTools(c *fiber.Ctx) error {
	tools, err := h.uc.ListTools(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ToolResponse, 0, len(tools))
	for _, t := range tools {
		out = append(out, toToolResponse(t))
	}
	return c.JSON(out)
}

func toToolResponse(t *entity.Tool) dto.ToolResponse {
	return dto.ToolResponse{
		ID:           t.ID,
		PartNumber:   t.PartNumber,
		SerialNumber: t.SerialNumber,
		Description:  t.Description,
		Category:     string(t.Category),
		Application:  string(t.Application),
		SpecificType: t.SpecificType,
		Attributes:   t.Attributes,
		IsActive:     t.IsActive,
	}
}

func toStockReportResponse(r *entity.StockReportRow) dto.StockReportRowResponse {
	return dto.StockReportRowResponse{
		PartNumber:     r.PartNumber,
		SerialNumber:   r.SerialNumber,
		Description:    r.Description,
		WarehouseStock: r.WarehouseStock,
		FieldStock:     r.FieldStock,
		InstalledStock: r.InstalledStock,
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsuarezb/toolstock-api/internal/application/reports"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// ReportHandler historial, búsqueda y reportes de stock.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// History godoc
// @Summary      Historial de movimientos
// @Tags         reports
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        to    query  string  false  "Fecha final YYYY-MM-DD (inclusiva)"
// @Success      200  {array}   dto.HistoryRowResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/history [get]
func (h *ReportHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar en el inventario
// @Tags         reports
// @Produce      json
// @Param        q            query  string  false  "Término libre (PN, serial, descripción; sin acentos)"
// @Param        sales_order  query  string  false  "Orden de venta exacta"
// @Param        well         query  string  false  "Pozo exacto"
// @Success      200  {array}  dto.SearchRowResponse
// @Router       /api/reports/search [get]
func (h *ReportHandler) Search(c *fiber.Ctx) error {
	f := repository.SearchFilter{}
	if v := c.Query("sales_order"); v != "" {
		f.SalesOrder = &v
	}
	if v := c.Query("well"); v != "" {
		f.Well = &v
	}
	out, err := h.uc.Search(c.Context(), c.Query("q"), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FullStockReport godoc
// @Summary      Reporte consolidado de stock
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.StockReportRowResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) FullStockReport(c *fiber.Ctx) error {
	out, err := h.uc.FullStockReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// WarehouseStockReport godoc
// @Summary      Reporte de stock en bodega
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.StockReportRowResponse
// @Router       /api/reports/stock/warehouse [get]
func (h *ReportHandler) WarehouseStockReport(c *fiber.Ctx) error {
	out, err := h.uc.WarehouseStockReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportStockReport godoc
// @Summary      Exportar el reporte de stock como .xlsx
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/stock/export [get]
func (h *ReportHandler) ExportStockReport(c *fiber.Ctx) error {
	data, err := h.uc.ExportStockReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_report.xlsx"`)
	return c.Send(data)
}

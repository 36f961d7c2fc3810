package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/wsuarezb/toolstock-api/internal/application/inventory"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
)

// InventoryHandler maneja las operaciones de escritura del inventario.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// AddImportation godoc
// @Summary      Registrar una importación
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportationRequest  true  "Orden de venta, responsable, fecha y líneas"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/importations [post]
func (h *InventoryHandler) AddImportation(c *fiber.Ctx) error {
	var in dto.ImportationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]inventory.ImportationItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, inventory.ImportationItemInput{
			PartNumber:   it.PartNumber,
			SerialNumber: it.SerialNumber,
			Description:  it.Description,
			Quantity:     it.Quantity,
			Application:  entity.Application(it.Application),
			SpecificType: it.SpecificType,
			Attributes:   it.Attributes,
		})
	}
	err := h.uc.AddImportation(c.Context(), inventory.ImportationInput{
		SalesOrder:  in.SalesOrder,
		Responsible: in.Responsible,
		Date:        in.Date,
		Items:       items,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "importación registrada"})
}

// Dispatch godoc
// @Summary      Despachar herramientas a un pozo
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DispatchRequest  true  "Responsable, fecha, pozo y líneas"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/dispatches [post]
func (h *InventoryHandler) Dispatch(c *fiber.Ctx) error {
	var in dto.DispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]inventory.DispatchItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, inventory.DispatchItemInput{ToolID: it.ToolID, Quantity: it.Quantity})
	}
	err := h.uc.DispatchTools(c.Context(), inventory.DispatchInput{
		Responsible: in.Responsible,
		Date:        in.Date,
		Well:        in.Well,
		Items:       items,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "despacho registrado"})
}

// Return godoc
// @Summary      Retornar herramientas a bodega
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReturnRequest  true  "Responsable, fecha y líneas con su pozo de origen"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/returns [post]
func (h *InventoryHandler) Return(c *fiber.Ctx) error {
	var in dto.ReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]inventory.ReturnItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, inventory.ReturnItemInput{ToolID: it.ToolID, Quantity: it.Quantity, Well: it.Well})
	}
	err := h.uc.ReturnTools(c.Context(), inventory.ReturnInput{
		Responsible: in.Responsible,
		Date:        in.Date,
		Items:       items,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "retorno registrado"})
}

// FieldStatus godoc
// @Summary      Cambiar el estado de una herramienta en campo
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FieldStatusRequest  true  "Herramienta, transición (Installed/RevertInstallation/Returned), pozo"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/field-status [post]
func (h *InventoryHandler) FieldStatus(c *fiber.Ctx) error {
	var in dto.FieldStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.UpdateFieldToolStatus(c.Context(), inventory.FieldStatusInput{
		ToolID:      in.ToolID,
		Status:      inventory.FieldStatus(in.Status),
		Responsible: in.Responsible,
		Date:        in.Date,
		Quantity:    in.Quantity,
		Well:        in.Well,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "estado actualizado"})
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/wsuarezb/toolstock-api/internal/application/usecase"
)

// CatalogHandler altas, bajas y listados de los catálogos de referencia:
// responsables, clientes, pozos, taxonomía de tipos y equivalencias de part
// numbers. Las mutaciones van protegidas por la sesión administrativa.
type CatalogHandler struct {
	responsibles *usecase.ResponsibleUseCase
	clients      *usecase.ClientUseCase
	wells        *usecase.WellUseCase
	toolTypes    *usecase.ToolTypeUseCase
	equivalences *usecase.EquivalenceUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(
	responsibles *usecase.ResponsibleUseCase,
	clients *usecase.ClientUseCase,
	wells *usecase.WellUseCase,
	toolTypes *usecase.ToolTypeUseCase,
	equivalences *usecase.EquivalenceUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		responsibles: responsibles,
		clients:      clients,
		wells:        wells,
		toolTypes:    toolTypes,
		equivalences: equivalences,
	}
}

// ── Responsables ──────────────────────────────────────────────────────────────

// AddResponsible alta idempotente de un responsable.
func (h *CatalogHandler) AddResponsible(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.responsibles.Add(in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "responsable registrado"})
}

// RenameResponsible renombra un responsable.
func (h *CatalogHandler) RenameResponsible(c *fiber.Ctx) error {
	var in dto.RenameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.responsibles.Rename(in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "responsable actualizado"})
}

// DeactivateResponsible baja lógica de un responsable.
func (h *CatalogHandler) DeactivateResponsible(c *fiber.Ctx) error {
	if err := h.responsibles.Deactivate(c.Params("name")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "responsable desactivado"})
}

// ListResponsibles lista responsables; ?active=true filtra los activos.
func (h *CatalogHandler) ListResponsibles(c *fiber.Ctx) error {
	out, err := h.responsibles.List(c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// AddClient alta idempotente de un cliente.
func (h *CatalogHandler) AddClient(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.clients.Add(in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "cliente registrado"})
}

// RenameClient renombra un cliente.
func (h *CatalogHandler) RenameClient(c *fiber.Ctx) error {
	var in dto.RenameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.clients.Rename(in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente actualizado"})
}

// DeactivateClient baja lógica de un cliente.
func (h *CatalogHandler) DeactivateClient(c *fiber.Ctx) error {
	if err := h.clients.Deactivate(c.Params("name")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente desactivado"})
}

// ListClients lista clientes; ?active=true filtra los activos.
func (h *CatalogHandler) ListClients(c *fiber.Ctx) error {
	out, err := h.clients.List(c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Pozos ─────────────────────────────────────────────────────────────────────

// AddWell alta idempotente de un pozo con sus coordenadas opcionales.
func (h *CatalogHandler) AddWell(c *fiber.Ctx) error {
	var in dto.WellRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.wells.Add(in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "pozo registrado"})
}

// UpdateWell edita un pozo (incluye renombre vía new_name).
func (h *CatalogHandler) UpdateWell(c *fiber.Ctx) error {
	var in dto.WellRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.wells.Update(in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pozo actualizado"})
}

// DeactivateWell baja lógica de un pozo.
func (h *CatalogHandler) DeactivateWell(c *fiber.Ctx) error {
	if err := h.wells.Deactivate(c.Params("name")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pozo desactivado"})
}

// ListWells lista pozos; ?active=true filtra los activos.
func (h *CatalogHandler) ListWells(c *fiber.Ctx) error {
	out, err := h.wells.List(c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// WellMap pozos con coordenadas válidas para la vista de mapa.
func (h *CatalogHandler) WellMap(c *fiber.Ctx) error {
	out, err := h.wells.MapPoints()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Taxonomía de tipos ────────────────────────────────────────────────────────

// UpsertToolType crea o edita un tipo específico por nombre.
func (h *CatalogHandler) UpsertToolType(c *fiber.Ctx) error {
	var in dto.ToolTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.toolTypes.Upsert(in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "tipo registrado"})
}

// DeactivateToolType baja lógica de un tipo.
func (h *CatalogHandler) DeactivateToolType(c *fiber.Ctx) error {
	if err := h.toolTypes.Deactivate(c.Params("name")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tipo desactivado"})
}

// ListToolTypes lista la taxonomía; ?application=... filtra por aplicación.
func (h *CatalogHandler) ListToolTypes(c *fiber.Ctx) error {
	if app := c.Query("application"); app != "" {
		out, err := h.toolTypes.ListByApplication(app)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.toolTypes.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Equivalencias ─────────────────────────────────────────────────────────────

// UpsertEquivalence crea o actualiza un cruce proveedor↔cliente.
func (h *CatalogHandler) UpsertEquivalence(c *fiber.Ctx) error {
	var in dto.EquivalenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.equivalences.Upsert(in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "equivalencia registrada"})
}

// GetEquivalence obtiene el cruce de un part number de proveedor.
func (h *CatalogHandler) GetEquivalence(c *fiber.Ctx) error {
	out, err := h.equivalences.Get(c.Params("supplier_pn"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListEquivalences lista todos los cruces.
func (h *CatalogHandler) ListEquivalences(c *fiber.Ctx) error {
	out, err := h.equivalences.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteEquivalence elimina un cruce.
func (h *CatalogHandler) DeleteEquivalence(c *fiber.Ctx) error {
	if err := h.equivalences.Delete(c.Params("supplier_pn")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "equivalencia eliminada"})
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsuarezb/toolstock-api/internal/application/documents"
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
)

// DocumentHandler genera las notas de entrega y retorno en PDF.
type DocumentHandler struct {
	uc *documents.UseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *documents.UseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// DeliveryNoteRequest body para la nota de entrega.
type DeliveryNoteRequest struct {
	DocNumber   string            `json:"doc_number"`
	Contract    string            `json:"contract"`
	Client      string            `json:"client"`
	Well        string            `json:"well"`
	Responsible string            `json:"responsible"`
	Date        string            `json:"date"`
	Items       []DocumentItemDTO `json:"items"`
}

// BackloadNoteRequest body para la nota de retorno.
type BackloadNoteRequest struct {
	DocNumber   string            `json:"doc_number"`
	Responsible string            `json:"responsible"`
	Date        string            `json:"date"`
	Items       []DocumentItemDTO `json:"items"`
}

// DocumentItemDTO línea de un documento.
type DocumentItemDTO struct {
	ToolID   string `json:"tool_id"`
	Quantity int    `json:"quantity"`
}

// DeliveryNote godoc
// @Summary      Generar la nota de entrega en PDF
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  DeliveryNoteRequest  true  "Datos del documento"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/documents/delivery-note [post]
func (h *DocumentHandler) DeliveryNote(c *fiber.Ctx) error {
	var in DeliveryNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdf, err := h.uc.GenerateDeliveryNote(c.Context(), documents.DeliveryNoteInput{
		DocNumber:   in.DocNumber,
		Contract:    in.Contract,
		Client:      in.Client,
		Well:        in.Well,
		Responsible: in.Responsible,
		Date:        in.Date,
		Items:       toNoteItems(in.Items),
	})
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, "delivery_note_"+in.DocNumber+".pdf", pdf)
}

// BackloadNote godoc
// @Summary      Generar la nota de retorno en PDF
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  BackloadNoteRequest  true  "Datos del documento"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/documents/backload-note [post]
func (h *DocumentHandler) BackloadNote(c *fiber.Ctx) error {
	var in BackloadNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdf, err := h.uc.GenerateBackloadNote(c.Context(), documents.BackloadNoteInput{
		DocNumber:   in.DocNumber,
		Responsible: in.Responsible,
		Date:        in.Date,
		Items:       toNoteItems(in.Items),
	})
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, "backload_note_"+in.DocNumber+".pdf", pdf)
}

func toNoteItems(items []DocumentItemDTO) []documents.NoteItemInput {
	out := make([]documents.NoteItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, documents.NoteItemInput{ToolID: it.ToolID, Quantity: it.Quantity})
	}
	return out
}

func sendPDF(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

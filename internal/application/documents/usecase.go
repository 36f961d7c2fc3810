package documents

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// NoteItemInput una línea del documento: herramienta y cantidad.
type NoteItemInput struct {
	ToolID   string
	Quantity int
}

// DeliveryNoteInput entrada de la nota de entrega (despacho al cliente).
type DeliveryNoteInput struct {
	DocNumber   string
	Contract    string
	Client      string
	Well        string
	Responsible string
	Date        string
	Items       []NoteItemInput
}

// BackloadNoteInput entrada de la nota de retorno (backload de campo).
type BackloadNoteInput struct {
	DocNumber   string
	Responsible string
	Date        string
	Items       []NoteItemInput
}

// NoteLine línea resuelta de un documento. ClientPN viene del cruce de part
// numbers cuando existe; vacío si el cliente no tiene referencia propia.
type NoteLine struct {
	DisplayName  string  `json:"display_name"`
	PartNumber   string  `json:"part_number"`
	ClientPN     string  `json:"client_pn,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Quantity     int     `json:"quantity"`
}

// DeliveryNote datos resueltos listos para renderizar.
type DeliveryNote struct {
	DocNumber   string
	Contract    string
	Client      string
	Well        string
	Responsible string
	Date        time.Time
	Lines       []NoteLine
	QRPayload   []byte
}

// BackloadNote datos resueltos de la nota de retorno.
type BackloadNote struct {
	DocNumber   string
	Responsible string
	Date        time.Time
	Lines       []NoteLine
	QRPayload   []byte
}

// NoteGenerator renderiza los documentos como PDF.
type NoteGenerator interface {
	DeliveryNote(n *DeliveryNote) ([]byte, error)
	BackloadNote(n *BackloadNote) ([]byte, error)
}

// UseCase arma los documentos de despacho y retorno: resuelve la identidad de
// cada herramienta, cruza part numbers con el catálogo de equivalencias y
// delega el render al generador de PDF.
type UseCase struct {
	toolRepo repository.ToolRepository
	eqRepo   repository.EquivalenceRepository
	gen      NoteGenerator
}

// NewUseCase construye el caso de uso de documentos.
func NewUseCase(toolRepo repository.ToolRepository, eqRepo repository.EquivalenceRepository, gen NoteGenerator) *UseCase {
	return &UseCase{toolRepo: toolRepo, eqRepo: eqRepo, gen: gen}
}

// GenerateDeliveryNote genera la nota de entrega en PDF.
func (uc *UseCase) GenerateDeliveryNote(ctx context.Context, input DeliveryNoteInput) ([]byte, error) {
	if input.DocNumber == "" || input.Client == "" || input.Well == "" ||
		input.Responsible == "" || len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	lines, err := uc.resolveLines(input.Items)
	if err != nil {
		return nil, err
	}
	payload, err := qrPayload(input.DocNumber, lines)
	if err != nil {
		return nil, err
	}
	return uc.gen.DeliveryNote(&DeliveryNote{
		DocNumber:   input.DocNumber,
		Contract:    input.Contract,
		Client:      input.Client,
		Well:        input.Well,
		Responsible: input.Responsible,
		Date:        date,
		Lines:       lines,
		QRPayload:   payload,
	})
}

// GenerateBackloadNote genera la nota de retorno en PDF.
func (uc *UseCase) GenerateBackloadNote(ctx context.Context, input BackloadNoteInput) ([]byte, error) {
	if input.DocNumber == "" || input.Responsible == "" || len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	lines, err := uc.resolveLines(input.Items)
	if err != nil {
		return nil, err
	}
	payload, err := qrPayload(input.DocNumber, lines)
	if err != nil {
		return nil, err
	}
	return uc.gen.BackloadNote(&BackloadNote{
		DocNumber:   input.DocNumber,
		Responsible: input.Responsible,
		Date:        date,
		Lines:       lines,
		QRPayload:   payload,
	})
}

func (uc *UseCase) resolveLines(items []NoteItemInput) ([]NoteLine, error) {
	lines := make([]NoteLine, 0, len(items))
	for _, it := range items {
		if it.ToolID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		tool, err := uc.toolRepo.GetByID(it.ToolID)
		if err != nil {
			return nil, err
		}
		if tool == nil {
			return nil, domain.ErrNotFound
		}
		line := NoteLine{
			DisplayName:  tool.DisplayName(),
			PartNumber:   tool.PartNumber,
			SerialNumber: tool.SerialNumber,
			Quantity:     it.Quantity,
		}
		eq, err := uc.eqRepo.GetBySupplierPN(tool.PartNumber)
		if err != nil {
			return nil, err
		}
		if eq != nil {
			line.ClientPN = eq.ClientPN
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// qrPayload codifica el documento como JSON para el QR; un escáner recupera
// el número de documento y las líneas sin tocar el sistema.
func qrPayload(docNumber string, lines []NoteLine) ([]byte, error) {
	return json.Marshal(struct {
		DocNumber string     `json:"doc_number"`
		Items     []NoteLine `json:"items"`
	}{DocNumber: docNumber, Items: lines})
}

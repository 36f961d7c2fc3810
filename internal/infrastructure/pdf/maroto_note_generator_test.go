package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wsuarezb/toolstock-api/internal/application/documents"
)

func ptr(s string) *string { return &s }

func sampleLines() []documents.NoteLine {
	return []documents.NoteLine{
		{DisplayName: "Colgador Hidráulico / PN: PN-100 / SN: SN-001 / Hanger",
			PartNumber: "PN-100", ClientPN: "CL-555", SerialNumber: ptr("SN-001"), Quantity: 1},
		{DisplayName: "Kit de sellos / PN: PN-200 / SN: N/A / Kit",
			PartNumber: "PN-200", Quantity: 4},
	}
}

func TestDeliveryNote_GeneraPDF(t *testing.T) {
	gen := NewMarotoNoteGenerator()

	data, err := gen.DeliveryNote(&documents.DeliveryNote{
		DocNumber:   "DN-0001",
		Contract:    "CT-77",
		Client:      "Acme Oil",
		Well:        "Well-A",
		Responsible: "M. Pérez",
		Date:        time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Lines:       sampleLines(),
		QRPayload:   []byte(`{"doc_number":"DN-0001"}`),
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBackloadNote_GeneraPDF(t *testing.T) {
	gen := NewMarotoNoteGenerator()

	data, err := gen.BackloadNote(&documents.BackloadNote{
		DocNumber:   "BL-0001",
		Responsible: "M. Pérez",
		Date:        time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		Lines:       sampleLines(),
		QRPayload:   []byte(`{"doc_number":"BL-0001"}`),
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

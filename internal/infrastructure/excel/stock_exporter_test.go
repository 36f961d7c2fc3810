package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/xuri/excelize/v2"
)

func ptr(s string) *string { return &s }

func TestStockWorkbook(t *testing.T) {
	exp := NewStockExporter()

	data, err := exp.StockWorkbook([]dto.StockReportRowResponse{
		{PartNumber: "PN-100", SerialNumber: ptr("SN-001"), Description: "Colgador", WarehouseStock: 1},
		{PartNumber: "PN-200", Description: "Kit de sellos", WarehouseStock: 3, FieldStock: 2},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Stock")
	require.NoError(t, err)
	require.Len(t, rows, 3, "cabecera + dos filas")
	assert.Equal(t, "Part Number", rows[0][0])
	assert.Equal(t, "PN-100", rows[1][0])
	assert.Equal(t, "N/A", rows[2][1], "sin serial se exporta N/A")
	assert.Equal(t, "5", rows[2][6], "la columna total suma las tres ubicaciones")
}

func TestStockWorkbook_SinFilas(t *testing.T) {
	exp := NewStockExporter()
	data, err := exp.StockWorkbook(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data, "el libro vacío aún contiene la cabecera")
}

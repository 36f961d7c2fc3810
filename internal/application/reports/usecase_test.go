package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

type fakeMovRepo struct {
	historyRows []*repository.HistoryRow
	searchRows  []*repository.SearchRow
	gotFrom     time.Time
	gotTo       time.Time
}

func (r *fakeMovRepo) Append(m *entity.Movement) error                  { return nil }
func (r *fakeMovRepo) ListByTool(string) ([]*entity.Movement, error)    { return nil, nil }
func (r *fakeMovRepo) ExistsImportation(string, string) (bool, error)   { return false, nil }
func (r *fakeMovRepo) DeleteByTool(string) error                        { return nil }
func (r *fakeMovRepo) DeleteAll() error                                 { return nil }

func (r *fakeMovRepo) History(from, to time.Time) ([]*repository.HistoryRow, error) {
	r.gotFrom, r.gotTo = from, to
	return r.historyRows, nil
}

func (r *fakeMovRepo) Search(f repository.SearchFilter) ([]*repository.SearchRow, error) {
	return r.searchRows, nil
}

type fakeStockRepo struct {
	full      []*entity.StockReportRow
	warehouse []*entity.StockReportRow
}

func (r *fakeStockRepo) StockInLocation(context.Context, entity.Location, repository.StockFilter) ([]*entity.StockLine, error) {
	return nil, nil
}

func (r *fakeStockRepo) Derived(context.Context, string, *string) (int, int, int, error) {
	return 0, 0, 0, nil
}

func (r *fakeStockRepo) FullStockReport(context.Context) ([]*entity.StockReportRow, error) {
	return r.full, nil
}

func (r *fakeStockRepo) WarehouseStockReport(context.Context) ([]*entity.StockReportRow, error) {
	return r.warehouse, nil
}

type fakeExporter struct{ gotRows int }

func (e *fakeExporter) StockWorkbook(rows []dto.StockReportRowResponse) ([]byte, error) {
	e.gotRows = len(rows)
	return []byte("xlsx"), nil
}

func ptr(s string) *string { return &s }

func searchRow(pn, desc, specific string) *repository.SearchRow {
	return &repository.SearchRow{
		ToolID:       "t-" + pn,
		PartNumber:   pn,
		Description:  desc,
		SpecificType: specific,
		Location:     entity.LocationWarehouse,
		Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestSearch_IgnoraAcentosYMayusculas(t *testing.T) {
	mov := &fakeMovRepo{searchRows: []*repository.SearchRow{
		searchRow("PN-100", "Colgador Hidráulico 7\"", "Hanger"),
		searchRow("PN-200", "Kit de sellos", "Kit"),
	}}
	uc := NewUseCase(mov, &fakeStockRepo{}, &fakeExporter{})

	out, err := uc.Search(context.Background(), "hidraulico", repository.SearchFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "PN-100", out[0].PartNumber)

	out, err = uc.Search(context.Background(), "HIDRÁULICO", repository.SearchFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestSearch_BuscaEnSerialYTipo(t *testing.T) {
	row := searchRow("PN-100", "Colgador", "Hanger")
	row.SerialNumber = ptr("SN-777")
	mov := &fakeMovRepo{searchRows: []*repository.SearchRow{row}}
	uc := NewUseCase(mov, &fakeStockRepo{}, &fakeExporter{})

	out, err := uc.Search(context.Background(), "sn-777", repository.SearchFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 1)

	out, err = uc.Search(context.Background(), "hanger", repository.SearchFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 1)

	out, err = uc.Search(context.Background(), "no-aparece", repository.SearchFilter{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSearch_SinTerminoDevuelveTodo(t *testing.T) {
	mov := &fakeMovRepo{searchRows: []*repository.SearchRow{
		searchRow("PN-100", "Colgador", "Hanger"),
		searchRow("PN-200", "Kit", "Kit"),
	}}
	uc := NewUseCase(mov, &fakeStockRepo{}, &fakeExporter{})

	out, err := uc.Search(context.Background(), "  ", repository.SearchFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestHistory_RangoInclusivo(t *testing.T) {
	mov := &fakeMovRepo{}
	uc := NewUseCase(mov, &fakeStockRepo{}, &fakeExporter{})

	_, err := uc.History(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), mov.gotFrom)
	assert.True(t, mov.gotTo.After(time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)),
		"el extremo superior cubre el día completo")
}

func TestHistory_FechaInvalida(t *testing.T) {
	uc := NewUseCase(&fakeMovRepo{}, &fakeStockRepo{}, &fakeExporter{})
	_, err := uc.History(context.Background(), "01/03/2025", "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistory_RangoInvertido(t *testing.T) {
	uc := NewUseCase(&fakeMovRepo{}, &fakeStockRepo{}, &fakeExporter{})
	_, err := uc.History(context.Background(), "2025-03-31", "2025-03-01")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportStockReport_UsaElReporteCompleto(t *testing.T) {
	stock := &fakeStockRepo{full: []*entity.StockReportRow{
		{PartNumber: "PN-100", Description: "Colgador", WarehouseStock: 2},
		{PartNumber: "PN-200", Description: "Kit", FieldStock: 5},
	}}
	exp := &fakeExporter{}
	uc := NewUseCase(&fakeMovRepo{}, stock, exp)

	data, err := uc.ExportStockReport(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, 2, exp.gotRows)
}

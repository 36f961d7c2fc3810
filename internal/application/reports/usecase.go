package reports

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const dateLayout = "2006-01-02"

// Exporter genera el libro de Excel del reporte de stock.
type Exporter interface {
	StockWorkbook(rows []dto.StockReportRowResponse) ([]byte, error)
}

// UseCase consultas de reporte sobre el libro de movimientos y el stock derivado.
type UseCase struct {
	movRepo   repository.MovementRepository
	stockRepo repository.StockRepository
	exporter  Exporter
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(movRepo repository.MovementRepository, stockRepo repository.StockRepository, exporter Exporter) *UseCase {
	return &UseCase{movRepo: movRepo, stockRepo: stockRepo, exporter: exporter}
}

// History historial de movimientos en el rango [from, to]. Fechas vacías
// abren el rango por ese extremo.
func (uc *UseCase) History(ctx context.Context, fromStr, toStr string) ([]dto.HistoryRowResponse, error) {
	from := time.Time{}
	to := time.Now()
	var err error
	if fromStr != "" {
		if from, err = time.Parse(dateLayout, fromStr); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if toStr != "" {
		if to, err = time.Parse(dateLayout, toStr); err != nil {
			return nil, domain.ErrInvalidInput
		}
		// El extremo superior es inclusivo: cubre el día completo.
		to = to.AddDate(0, 0, 1).Add(-time.Second)
	}
	if !from.IsZero() && to.Before(from) {
		return nil, domain.ErrInvalidInput
	}

	rows, err := uc.movRepo.History(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.HistoryRowResponse{
			Date:         r.Date.Format(dateLayout),
			MovementType: string(r.Type),
			PartNumber:   r.PartNumber,
			SerialNumber: r.SerialNumber,
			Quantity:     r.Quantity,
			Location:     string(r.Location),
			Responsible:  r.Responsible,
			SalesOrder:   r.SalesOrder,
			Well:         r.Well,
		})
	}
	return out, nil
}

// Search busca en el inventario. Los filtros exactos (orden de venta, pozo)
// los resuelve SQL; el término libre se aplica aquí con normalización de
// acentos y sin distinguir mayúsculas, contra part number, serial, descripción
// y tipo específico.
func (uc *UseCase) Search(ctx context.Context, query string, f repository.SearchFilter) ([]dto.SearchRowResponse, error) {
	rows, err := uc.movRepo.Search(f)
	if err != nil {
		return nil, err
	}
	needle := foldString(query)
	out := make([]dto.SearchRowResponse, 0, len(rows))
	for _, r := range rows {
		if needle != "" && !matchesQuery(r, needle) {
			continue
		}
		out = append(out, dto.SearchRowResponse{
			ToolID:       r.ToolID,
			PartNumber:   r.PartNumber,
			SerialNumber: r.SerialNumber,
			Description:  r.Description,
			SpecificType: r.SpecificType,
			Location:     string(r.Location),
			Date:         r.Date.Format(dateLayout),
			Well:         r.Well,
			SalesOrder:   r.SalesOrder,
		})
	}
	return out, nil
}

// FullStockReport stock por herramienta en las tres ubicaciones.
func (uc *UseCase) FullStockReport(ctx context.Context) ([]dto.StockReportRowResponse, error) {
	rows, err := uc.stockRepo.FullStockReport(ctx)
	if err != nil {
		return nil, err
	}
	return toReportResponses(rows), nil
}

// WarehouseStockReport solo las herramientas con existencia en bodega.
func (uc *UseCase) WarehouseStockReport(ctx context.Context) ([]dto.StockReportRowResponse, error) {
	rows, err := uc.stockRepo.WarehouseStockReport(ctx)
	if err != nil {
		return nil, err
	}
	return toReportResponses(rows), nil
}

// ExportStockReport genera el reporte consolidado como libro de Excel.
func (uc *UseCase) ExportStockReport(ctx context.Context) ([]byte, error) {
	rows, err := uc.FullStockReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.exporter.StockWorkbook(rows)
}

func toReportResponses(rows []*entity.StockReportRow) []dto.StockReportRowResponse {
	out := make([]dto.StockReportRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockReportRowResponse{
			PartNumber:     r.PartNumber,
			SerialNumber:   r.SerialNumber,
			Description:    r.Description,
			WarehouseStock: r.WarehouseStock,
			FieldStock:     r.FieldStock,
			InstalledStock: r.InstalledStock,
		})
	}
	return out
}

func matchesQuery(r *repository.SearchRow, needle string) bool {
	fields := []string{r.PartNumber, r.Description, r.SpecificType}
	if r.SerialNumber != nil {
		fields = append(fields, *r.SerialNumber)
	}
	for _, f := range fields {
		if strings.Contains(foldString(f), needle) {
			return true
		}
	}
	return false
}

// foldString normaliza para búsqueda: minúsculas y sin marcas diacríticas
// ("Colgador Hidráulico" y "colgador hidraulico" son el mismo término).
func foldString(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

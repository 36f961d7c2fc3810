// Package pdf genera las notas de entrega y de retorno con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la nota  │  N° Documento + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: Cliente / Contrato / Pozo / Responsable              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Herramienta | PN | PN Cliente | Serial        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con las líneas + leyenda                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/wsuarezb/toolstock-api/internal/application/documents"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoNoteGenerator implementa documents.NoteGenerator usando Maroto v2.
type MarotoNoteGenerator struct{}

// NewMarotoNoteGenerator construye el generador.
func NewMarotoNoteGenerator() *MarotoNoteGenerator { return &MarotoNoteGenerator{} }

// DeliveryNote genera la nota de entrega y devuelve sus bytes.
func (g *MarotoNoteGenerator) DeliveryNote(n *documents.DeliveryNote) ([]byte, error) {
	m := newDocument("Nota de Entrega")

	m.AddRows(headerRow("NOTA DE ENTREGA", n.DocNumber, n.Date.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(14).Add(
		col.New(12).Add(
			text.New("DATOS DE LA ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Cliente: %s   |   Contrato: %s   |   Pozo: %s",
				n.Client, nonEmpty(n.Contract, "—"), n.Well,
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New("Responsable: "+n.Responsible, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	))
	addLinesTable(m, n.Lines)
	addQRFooter(m, n.QRPayload, "Escanea el código QR para recuperar\nlas líneas de esta entrega.")

	return render(m)
}

// BackloadNote genera la nota de retorno y devuelve sus bytes.
func (g *MarotoNoteGenerator) BackloadNote(n *documents.BackloadNote) ([]byte, error) {
	m := newDocument("Nota de Retorno")

	m.AddRows(headerRow("NOTA DE RETORNO", n.DocNumber, n.Date.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(9).Add(
		col.New(12).Add(
			text.New("Responsable: "+n.Responsible, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	))
	addLinesTable(m, n.Lines)
	addQRFooter(m, n.QRPayload, "Escanea el código QR para recuperar\nlas líneas de este retorno.")

	return render(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

func render(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y N° documento + fecha (der).
func headerRow(title, docNumber, date string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario de Herramientas de Fondo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(docNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 4,
			}),
			text.New("Fecha: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// addLinesTable: cabecera + una fila por línea del documento.
func addLinesTable(m core.Maroto, lines []documents.NoteLine) {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Herramienta", 5, align.Left),
		h("Part Number", 2, align.Left),
		h("PN Cliente", 2, align.Left),
		h("Serial", 2, align.Left),
	))
	for _, l := range lines {
		serial := "N/A"
		if l.SerialNumber != nil && *l.SerialNumber != "" {
			serial = *l.SerialNumber
		}
		m.AddRows(row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.DisplayName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.PartNumber,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(l.ClientPN, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				serial,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
}

// addQRFooter: QR con el payload JSON del documento + leyenda.
func addQRFooter(m core.Maroto, payload []byte, caption string) {
	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(35).Add(
		col.New(4).Add(code.NewQr(string(payload), props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New(caption, props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
		),
	))
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Package pdf genera el acta de baja de activos en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + N° de acta │ Fecha de baja                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ÍTEM: nombre / ubicación / motivo                           │
//	│  TABLA: Cant | Valor unitario | Valor total                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ENTRADAS VINCULADAS (si las hay)                            │
//	│  FOOTER: QR de referencia + responsable                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/activos-api/internal/application/inventory"
	"github.com/jhoicas/activos-api/internal/domain/entity"
)

var _ inventory.DisposalPDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 127, Green: 29, Blue: 29}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa inventory.DisposalPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	orgName string
}

// NewMarotoPDFGenerator construye el generador; orgName aparece como autor del documento.
func NewMarotoPDFGenerator(orgName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{orgName: orgName}
}

// GenerateDisposalPDF genera el acta y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDisposalPDF(_ context.Context, cert inventory.DisposalCertificate) ([]byte, error) {
	if cert.Disposal == nil || cert.Item == nil {
		return nil, fmt.Errorf("pdf: acta sin baja o sin ítem")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Acta de baja N° %d", cert.Disposal.ID), true).
		WithAuthor(nonEmpty(g.orgName, "activos-api"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(cert.Disposal))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(itemRow(cert))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(valuesHeaderRow(), valuesRow(cert.Disposal))

	if len(cert.LinkedStock) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(linkedHeaderRow())
		m.AddRows(linkedRows(cert.LinkedStock)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(cert))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(d *entity.Disposal) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("ACTA DE BAJA DE ACTIVOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %06d", d.ID), props.Text{Size: 10, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Fecha de baja", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1}),
			text.New(d.DisposalDate.Format("02/01/2006"), props.Text{Size: 10, Align: align.Right, Top: 7}),
		),
	)
}

func itemRow(cert inventory.DisposalCertificate) core.Row {
	location := "—"
	if cert.Location != nil {
		location = cert.Location.Name
	}
	return row.New(22).Add(
		col.New(12).Add(
			text.New("ÍTEM", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(cert.Item.Name, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
			text.New("Ubicación: "+location, props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New("Motivo: "+nonEmpty(cert.Disposal.Reason, "—"), props.Text{Size: 8, Top: 17, Color: colorGray}),
		),
	)
}

func valuesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Cantidad", 4, align.Center),
		h("Valor unitario", 4, align.Right),
		h("Valor total", 4, align.Right),
	)
}

func valuesRow(d *entity.Disposal) core.Row {
	return row.New(8).Add(
		col.New(4).Add(text.New(fmt.Sprintf("%d", d.Quantity), props.Text{Size: 9, Align: align.Center, Top: 1})),
		col.New(4).Add(text.New("$"+formatMoney(d.UnitDisposalValue), props.Text{Size: 9, Align: align.Right, Top: 1})),
		col.New(4).Add(text.New("$"+formatMoney(d.TotalValue), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
		})),
	)
}

func linkedHeaderRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("ENTRADAS DE STOCK ASOCIADAS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
	))
}

func linkedRows(entries []*entity.StockEntry) []core.Row {
	out := make([]core.Row, 0, len(entries))
	for _, s := range entries {
		out = append(out, row.New(5).Add(
			col.New(2).Add(text.New(fmt.Sprintf("#%d", s.ID), props.Text{Size: 8, Top: 0.5})),
			col.New(3).Add(text.New(fmt.Sprintf("Cant. %d", s.Quantity), props.Text{Size: 8, Top: 0.5})),
			col.New(3).Add(text.New("$"+formatMoney(s.TotalPrice), props.Text{Size: 8, Align: align.Right, Top: 0.5})),
			col.New(4).Add(text.New(s.Remarks, props.Text{Size: 8, Top: 0.5, Left: 2, Color: colorGray})),
		))
	}
	return out
}

func footerRow(cert inventory.DisposalCertificate) core.Row {
	d := cert.Disposal
	ref := fmt.Sprintf("BAJA:%d|ITEM:%d|CANT:%d|TOTAL:%s", d.ID, d.ItemID, d.Quantity, d.TotalValue.StringFixed(2))
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Responsable: "+nonEmpty(cert.IssuedByName, fmt.Sprintf("cuenta %d", d.CreatedBy)), props.Text{
				Size: 9, Top: 6, Left: 3,
			}),
			text.New("Firma: ______________________________", props.Text{Size: 9, Top: 20, Left: 3}),
			text.New("Las unidades dadas de baja se descontaron del libro de stock en la fecha indicada.", props.Text{
				Size: 7, Top: 32, Left: 3, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con puntos de miles y coma decimal. Ej: 1234567.5 → "1.234.567,50"
func formatMoney(v decimal.Decimal) string {
	s := v.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if v.IsNegative() {
		out = "-" + out
	}
	return out
}

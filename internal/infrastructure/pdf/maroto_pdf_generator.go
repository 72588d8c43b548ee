// Package pdf genera la factura imprimible (Tax Invoice) de una venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + ubicación + GSTIN │ TAX INVOICE # + Fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL FROM (empresa)          │            BILL TO (cliente) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Part Name | Qty | Price | GST% | Amount              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Total GST / GRAND TOTAL                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR resumen + agradecimiento                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appbilling "github.com/jhoicas/bike-ledgers/internal/application/billing"
	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 23, Blue: 42}
	colorAccent  = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorGray    = &props.Color{Red: 100, Green: 116, Blue: 139}
)

// helvetica no tiene el glifo ₹; se imprime "Rs.".
const currencySymbol = "Rs. "

var moneyPrinter = message.NewPrinter(language.English)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateBillPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateBillPDF(_ context.Context, bill entity.Bill, company entity.CompanyProfile) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tax Invoice "+bill.ID, true).
		WithAuthor(company.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(bill, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.8}))
	m.AddRows(partiesRow(bill, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableItemRows(bill.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))
	m.AddRows(totalsRow(bill))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(bill, company)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(bill entity.Bill, company entity.CompanyProfile) core.Row {
	left := []core.Component{
		text.New(company.CompanyName, props.Text{Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1}),
		text.New(nonEmpty(company.CompanyLocation, "-"), props.Text{Size: 9, Top: 9, Color: colorGray}),
	}
	if company.GSTIN != "" {
		left = append(left, text.New("GSTIN: "+company.GSTIN, props.Text{
			Style: fontstyle.Bold, Size: 7, Top: 14, Color: colorAccent,
		}))
	}

	return row.New(20).Add(
		col.New(7).Add(left...),
		col.New(5).Add(
			text.New("TAX INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("# "+bill.ID, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8, Color: colorGray}),
			text.New(bill.Date.Format("2 January 2006"), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func partiesRow(bill entity.Bill, company entity.CompanyProfile) core.Row {
	from := fmt.Sprintf("%s\n%s", nonEmpty(company.CompanyLocation, "-"), nonEmpty(company.Email, "-"))
	if company.GSTIN != "" {
		from += "\nGST: " + company.GSTIN
	}
	return row.New(24).Add(
		col.New(6).Add(
			text.New("BILL FROM:", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 2}),
			text.New(company.CompanyName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 7}),
			text.New(from, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("BILL TO:", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 2, Align: align.Right}),
			text.New(bill.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 7, Align: align.Right}),
			text.New(nonEmpty(bill.CustomerPhone, "-")+"\nCash Sale", props.Text{Size: 8, Top: 12, Color: colorGray, Align: align.Right}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("PART NAME", 5, align.Left),
		h("QTY", 1, align.Center),
		h("PRICE", 2, align.Right),
		h("GST%", 1, align.Center),
		h("AMOUNT", 3, align.Right),
	)
}

// tableItemRows: una fila por línea. Amount es precio × cantidad, sin impuesto.
func tableItemRows(items []entity.BillItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(it.Name, props.Text{Size: 9, Style: fontstyle.Bold, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprint(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(it.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(it.TaxRate.String()+"%", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray})),
			col.New(3).Add(text.New(formatMoney(it.LineTotal()), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(bill entity.Bill) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top, Color: colorGray})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top, Color: colorGray})
	}

	return row.New(24).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label("Total GST:", 7),
			text.New("GRAND TOTAL", props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Right: 2, Top: 14, Color: colorPrimary}),
		),
		col.New(3).Add(
			value(formatMoney(bill.Subtotal), 1),
			value(formatMoney(bill.TaxTotal), 7),
			text.New(formatMoney(bill.GrandTotal), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Right: 1, Top: 14, Color: colorPrimary}),
		),
	)
}

// footerRows: QR con el resumen de la factura y el agradecimiento.
func footerRows(bill entity.Bill, company entity.CompanyProfile) []core.Row {
	return []core.Row{
		row.New(36).Add(
			col.New(3).Add(code.NewQr(qrPayload(bill, company), props.Rect{Percent: 90, Center: true})),
			col.New(9).Add(
				text.New("Thank you for choosing "+company.CompanyName+" - Powered by Bike Ledgers", props.Text{
					Style: fontstyle.Bold, Size: 8, Top: 14, Left: 3, Color: colorGray,
				}),
			),
		),
	}
}

// qrPayload resume la factura en una línea: id|fecha|total|gstin.
func qrPayload(bill entity.Bill, company entity.CompanyProfile) string {
	return fmt.Sprintf("%s|%s|%s|%s", bill.ID, bill.Date.Format("2006-01-02"), bill.GrandTotal.StringFixed(2), nonEmpty(company.GSTIN, "NA"))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney da formato de moneda con separador de miles y dos decimales.
// Ej: 1003 → "Rs. 1,003.00".
func formatMoney(d decimal.Decimal) string {
	return currencySymbol + moneyPrinter.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

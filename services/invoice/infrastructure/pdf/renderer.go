// Package pdf renders issued invoices with maroto.
package pdf

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/daouest/factureme/services/invoice/domain/models"
)

const dateLayout = "2006-01-02"

// Renderer builds one PDF per call and holds no state.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays out the invoice header, the issuer and client blocks, one row
// per stored line and the tax summary.
func (r *Renderer) Render(inv *models.Invoice, issuer models.Issuer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} / {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(8, "Facture "+inv.Number, props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Left}),
		text.NewCol(4, issuer.Name, props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
	)

	due := "-"
	if inv.DueDate != nil {
		due = inv.DueDate.Format(dateLayout)
	}
	m.AddRow(18,
		col.New(6).Add(
			text.New("Date: "+inv.InvoiceDate.Format(dateLayout), props.Text{Top: 0, Size: 9}),
			text.New("Échéance: "+due, props.Text{Top: 5, Size: 9}),
			text.New("Province: "+inv.Province, props.Text{Top: 10, Size: 9}),
		),
		col.New(6).Add(registrationTexts(issuer)...),
	)

	if inv.ClientName != "" {
		m.AddRow(10,
			text.NewCol(12, "Facturé à: "+inv.ClientName, props.Text{Size: 10, Style: fontstyle.Bold}),
		)
	}

	header := props.Text{Style: fontstyle.Bold, Size: 9}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}
	m.AddRow(8,
		text.NewCol(5, "Description", header),
		text.NewCol(2, "Qté / heures", headerRight),
		text.NewCol(2, "Prix / taux", headerRight),
		text.NewCol(3, "Montant", headerRight),
	)

	cell := props.Text{Size: 9}
	cellRight := props.Text{Size: 9, Align: align.Right}
	for _, line := range inv.Lines {
		m.AddRow(7,
			text.NewCol(5, line.Description, cell),
			text.NewCol(2, lineQuantity(line), cellRight),
			text.NewCol(2, money(line.UnitPrice), cellRight),
			text.NewCol(3, money(line.LineTotal), cellRight),
		)
	}

	m.AddRow(4, col.New(12))
	summaryRow(m, "Sous-total", money(inv.Subtotal), false)
	for _, tax := range inv.Taxes {
		summaryRow(m, fmt.Sprintf("%s (%s %%)", tax.Name, tax.Rate.String()), money(tax.Amount), false)
	}
	summaryRow(m, "Total", money(inv.Total), true)

	if inv.Notes != "" {
		m.AddRow(16, text.NewCol(12, inv.Notes, props.Text{Size: 8, Top: 6}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func summaryRow(m core.Maroto, label, value string, bold bool) {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	m.AddRow(7,
		col.New(7),
		text.NewCol(2, label, props.Text{Size: 9, Style: style}),
		text.NewCol(3, value, props.Text{Size: 9, Style: style, Align: align.Right}),
	)
}

func registrationTexts(issuer models.Issuer) []core.Component {
	out := make([]core.Component, 0, len(issuer.Registrations))
	for i, reg := range issuer.Registrations {
		out = append(out, text.New(fmt.Sprintf("%s: %s", reg.Tax, reg.Number), props.Text{
			Top:   float64(i * 5),
			Size:  9,
			Align: align.Right,
		}))
	}
	return out
}

func lineQuantity(line models.StoredLine) string {
	if line.Kind == models.LineKindHourly && line.HoursWorked.Valid {
		return line.HoursWorked.Decimal.StringFixed(2) + " h"
	}
	return strconv.Itoa(line.Quantity)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2) + " $"
}

package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/pkg"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	headerBg    = &props.Color{Red: 76, Green: 29, Blue: 149}
	headerFg    = &props.Color{Red: 255, Green: 255, Blue: 255}
	mutedText   = &props.Color{Red: 100, Green: 100, Blue: 100}
	stripeColor = &props.Color{Red: 245, Green: 243, Blue: 255}
)

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   mutedText,
		}).
		Build()
	return maroto.New(cfg)
}

// QuotePDF renders a printable quote with the itemized costs.
func (r *Renderer) QuotePDF(q entities.Quote) ([]byte, error) {
	m := newDocument()
	r.addLetterhead(m, "Cleaning Quote")

	addPairs(m, [][2]string{
		{"Quote", q.ID},
		{"Date", dateCell(q.DateCreated, "January 2, 2006")},
		{"Valid until", dateCell(q.ValidUntil, "January 2, 2006")},
		{"Status", string(q.Status)},
	})
	m.AddRows(row.New(4))

	addSection(m, "Customer")
	address := strings.TrimSpace(strings.Join([]string{q.Customer.Address, q.Customer.City, q.Customer.State, q.Customer.Zip}, " "))
	addPairs(m, [][2]string{
		{"Name", q.Customer.Name},
		{"Email", q.Customer.Email},
		{"Phone", q.Customer.Phone},
		{"Address", address},
	})
	m.AddRows(row.New(4))

	if len(q.Properties) > 0 {
		addSection(m, "Property")
		addTable(m, []string{"Name", "Type", "Sq Ft", "Restrooms", "Rooms"}, []int{4, 2, 2, 2, 2}, propertyRows(q.Properties))
		m.AddRows(row.New(4))
	}

	addSection(m, "Service")
	addPairs(m, [][2]string{
		{"Service type", q.ServiceType},
		{"Frequency", q.Frequency},
	})
	m.AddRows(row.New(4))

	addSection(m, "Price")
	addTable(m, []string{"Item", "Amount"}, []int{8, 4}, [][]string{
		{"Labor (" + strconv.FormatFloat(q.Costs.LaborHours, 'f', 2, 64) + " h)", pkg.Money(q.Costs.LaborCost)},
		{"Materials", pkg.Money(q.Costs.MaterialCost)},
		{"Add-on services", pkg.Money(q.Costs.ServiceCost)},
		{"Travel", pkg.Money(q.Costs.TravelCost)},
		{"Subtotal", pkg.Money(q.Costs.Subtotal)},
		{"Tax", pkg.Money(q.Costs.TaxAmount)},
	})
	addTotal(m, "Total", pkg.Money(q.Costs.TotalAmount))

	if q.Notes != "" {
		m.AddRows(row.New(4))
		addSection(m, "Notes")
		addParagraph(m, q.Notes, props.Text{Size: 9})
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate quote pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// InvoicePDF renders the invoice for a recorded payment.
func (r *Renderer) InvoicePDF(p entities.Payment, c entities.Customer) ([]byte, error) {
	m := newDocument()
	r.addLetterhead(m, "Invoice")

	addPairs(m, [][2]string{
		{"Invoice", p.InvoiceNumber},
		{"Date", dateCell(p.Date, "January 2, 2006")},
		{"Payment", p.ID},
		{"Status", string(p.Status)},
	})
	m.AddRows(row.New(4))

	addSection(m, "Bill to")
	name := c.Name
	if name == "" {
		name = p.CustomerName
	}
	addPairs(m, [][2]string{
		{"Name", name},
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Address", c.Address},
	})
	m.AddRows(row.New(4))

	addSection(m, "Details")
	rows := make([][]string, 0, len(p.JobIDs)+1)
	for _, id := range p.JobIDs {
		rows = append(rows, []string{"Cleaning service - job " + id})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"Cleaning service"})
	}
	addTable(m, []string{"Description"}, []int{12}, rows)
	addPairs(m, [][2]string{{"Method", string(p.Method)}})
	if p.ProviderReference != "" {
		addPairs(m, [][2]string{{"Reference", p.ProviderReference}})
	}
	addTotal(m, "Amount", pkg.Money(p.Amount))

	if p.Notes != "" {
		m.AddRows(row.New(4))
		addParagraph(m, p.Notes, props.Text{Size: 9})
	}
	m.AddRows(row.New(6))
	addParagraph(m, "Thank you for your business.", props.Text{Size: 9, Style: fontstyle.Italic, Align: align.Center, Color: mutedText})

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func (r *Renderer) addLetterhead(m core.Maroto, title string) {
	m.AddRows(row.New(10).Add(
		col.New(12).Add(text.New(r.business.Name, props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center})),
	))
	contact := strings.TrimSpace(strings.Join(nonEmpty(r.business.Phone, r.business.Email), " | "))
	if contact != "" {
		m.AddRows(row.New(6).Add(
			col.New(12).Add(text.New(contact, props.Text{Size: 9, Align: align.Center, Color: mutedText})),
		))
	}
	m.AddRows(row.New(4))
	m.AddRows(row.New(9).Add(
		col.New(12).Add(text.New(title, props.Text{Size: 13, Style: fontstyle.Bold, Align: align.Left})),
	))
}

func addSection(m core.Maroto, title string) {
	m.AddRows(row.New(7).Add(
		col.New(12).Add(text.New(title, props.Text{Size: 10, Style: fontstyle.Bold, Top: 1})),
	))
}

func addPairs(m core.Maroto, pairs [][2]string) {
	for _, p := range pairs {
		m.AddRows(row.New(5).Add(
			col.New(3).Add(text.New(p[0], props.Text{Size: 9, Color: mutedText})),
			col.New(9).Add(text.New(p[1], props.Text{Size: 9})),
		))
	}
}

func addTable(m core.Maroto, headers []string, widths []int, rows [][]string) {
	header := row.New(7)
	for i, h := range headers {
		header.Add(col.New(widths[i]).Add(
			text.New(h, props.Text{Size: 8, Style: fontstyle.Bold, Color: headerFg, Left: 1, Top: 1.5}),
		).WithStyle(&props.Cell{BackgroundColor: headerBg}))
	}
	m.AddRows(header)

	for n, values := range rows {
		r := row.New(6)
		for i := range headers {
			v := ""
			if i < len(values) {
				v = values[i]
			}
			c := col.New(widths[i]).Add(text.New(v, props.Text{Size: 8, Left: 1, Top: 1.5}))
			if n%2 == 1 {
				c = c.WithStyle(&props.Cell{BackgroundColor: stripeColor})
			}
			r.Add(c)
		}
		m.AddRows(r)
	}
}

func addParagraph(m core.Maroto, value string, style props.Text) {
	m.AddRows(row.New(8).Add(col.New(12).Add(text.New(value, style))))
}

func addTotal(m core.Maroto, label, amount string) {
	m.AddRows(row.New(8).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right, Top: 2})),
		col.New(4).Add(text.New(amount, props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right, Top: 2, Right: 1})),
	))
}

func propertyRows(list []entities.Property) [][]string {
	out := make([][]string, 0, len(list))
	for _, p := range list {
		out = append(out, []string{
			p.Name,
			p.FacilityType,
			strconv.FormatFloat(p.SquareFeet, 'f', -1, 64),
			strconv.Itoa(p.Restrooms),
			strconv.Itoa(p.Rooms),
		})
	}
	return out
}

func dateCell(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

func nonEmpty(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

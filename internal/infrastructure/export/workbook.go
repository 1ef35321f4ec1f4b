package export

import (
	"fmt"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const quotesSheet = "Quotes"

var quoteColumns = []struct {
	title string
	width float64
}{
	{"Quote ID", 22},
	{"Created", 18},
	{"Customer", 24},
	{"Email", 28},
	{"Phone", 16},
	{"City", 14},
	{"Property", 18},
	{"Sq Ft", 10},
	{"Frequency", 12},
	{"Service Type", 14},
	{"Status", 12},
	{"Base Cost", 12},
	{"Profit", 12},
	{"Tax", 10},
	{"Total", 12},
	{"Valid Until", 14},
	{"Customer ID", 22},
}

// QuotesWorkbook builds an .xlsx with one row per quote and a totals row.
func (r *Renderer) QuotesWorkbook(quotes []entities.Quote) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), quotesSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4C1D95"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	header := make([]any, len(quoteColumns))
	for i, c := range quoteColumns {
		header[i] = c.title
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(quotesSheet, name, name, c.width); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", name, err)
		}
	}
	if err := f.SetSheetRow(quotesSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(quoteColumns))
	if err := f.SetCellStyle(quotesSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	total := 0.0
	for i, q := range quotes {
		rowNum := i + 2
		property, sqft := "", 0.0
		if len(q.Properties) > 0 {
			property = q.Properties[0].FacilityType
			sqft = q.Properties[0].SquareFeet
		}
		values := []any{
			q.ID,
			dateCell(q.DateCreated, "2006-01-02 15:04"),
			q.Customer.Name,
			q.Customer.Email,
			q.Customer.Phone,
			q.Customer.City,
			property,
			sqft,
			q.Frequency,
			q.ServiceType,
			string(q.Status),
			q.Costs.BaseCost,
			q.Costs.ProfitAmount,
			q.Costs.TaxAmount,
			q.Costs.TotalAmount,
			dateCell(q.ValidUntil, entities.DateLayout),
			q.CustomerID,
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(quotesSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", rowNum, err)
		}
		if err := f.SetCellStyle(quotesSheet, fmt.Sprintf("L%d", rowNum), fmt.Sprintf("O%d", rowNum), moneyStyle); err != nil {
			return nil, fmt.Errorf("style row %d: %w", rowNum, err)
		}
		total += q.Costs.TotalAmount
	}

	totalRow := len(quotes) + 2
	if err := f.SetCellValue(quotesSheet, fmt.Sprintf("N%d", totalRow), "Total"); err != nil {
		return nil, err
	}
	if err := f.SetCellFloat(quotesSheet, fmt.Sprintf("O%d", totalRow), total, 2, 64); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(quotesSheet, fmt.Sprintf("N%d", totalRow), fmt.Sprintf("O%d", totalRow), totalStyle); err != nil {
		return nil, err
	}
	if err := f.SetPanes(quotesSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

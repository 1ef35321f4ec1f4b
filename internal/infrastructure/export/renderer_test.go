package export

import (
	"bytes"
	"testing"
	"time"

	appconfig "github.com/Cleaning-Company-dex/cleaning-company-web/internal/config"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testRenderer() *Renderer {
	return NewRenderer(appconfig.BusinessConfig{Name: "Sparkle Commercial Cleaning", Phone: "(617) 555-0199", Email: "hello@sparkle.example"})
}

func testQuotes() []entities.Quote {
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	return []entities.Quote{
		{
			ID:          "Q20250314093000ABCD",
			DateCreated: created,
			Customer:    entities.Contact{Name: "Ana Souza", Email: "ana@example.com", City: "Boston"},
			Properties:  []entities.Property{{Name: "Office Property", FacilityType: "office", SquareFeet: 2500, Restrooms: 2, Rooms: 6}},
			Costs:       entities.QuoteCosts{LaborHours: 3.5, LaborCost: 105, BaseCost: 205, ProfitAmount: 71.75, Subtotal: 276.75, TaxAmount: 17.30, TotalAmount: 294.05},
			Status:      entities.QuoteStatusPending,
			ValidUntil:  created.Add(entities.QuoteValidity),
			Frequency:   "weekly",
			ServiceType: "standard",
			Notes:       "Side entrance after 6pm",
		},
		{
			ID:          "Q20250315100000EFGH",
			DateCreated: created.Add(24 * time.Hour),
			Customer:    entities.Contact{Name: "Bruno Lima"},
			Costs:       entities.QuoteCosts{TotalAmount: 105.95},
			Status:      entities.QuoteStatusConverted,
			CustomerID:  "CUST20250316120000WXYZ",
		},
	}
}

func TestRenderer_QuotesWorkbook(t *testing.T) {
	data, err := testRenderer().QuotesWorkbook(testQuotes())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(quotesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Quote ID", rows[0][0])
	assert.Equal(t, "Customer ID", rows[0][len(quoteColumns)-1])
	assert.Equal(t, "Q20250314093000ABCD", rows[1][0])
	assert.Equal(t, "2025-03-14 09:30", rows[1][1])
	assert.Equal(t, "office", rows[1][6])
	assert.Equal(t, "converted", rows[2][10])
	assert.Equal(t, "CUST20250316120000WXYZ", rows[2][16])

	total, err := f.GetCellValue(quotesSheet, "O4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "400.00", total)
}

func TestRenderer_QuotesWorkbook_Empty(t *testing.T) {
	data, err := testRenderer().QuotesWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(quotesSheet)
	require.NoError(t, err)
	if len(rows) != 2 {
		t.Fatalf("expected header and totals rows, got %d", len(rows))
	}
}

func TestRenderer_QuotePDF(t *testing.T) {
	t.Run("full quote", func(t *testing.T) {
		result, err := testRenderer().QuotePDF(testQuotes()[0])
		require.NoError(t, err)
		if len(result) < 5 || string(result[:5]) != "%PDF-" {
			t.Fatalf("expected PDF header, got %q", result[:min(len(result), 5)])
		}
	})

	t.Run("minimal quote", func(t *testing.T) {
		result, err := testRenderer().QuotePDF(entities.Quote{ID: "Q1"})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(result, []byte("%PDF-")))
	})
}

func TestRenderer_InvoicePDF(t *testing.T) {
	p := entities.Payment{
		ID:            "PAY20250320120000QRST",
		CustomerName:  "Ana Souza",
		Amount:        294.05,
		Date:          time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		Method:        entities.PaymentMethodCard,
		InvoiceNumber: "INV20250320QRST",
		Status:        entities.PaymentStatusCompleted,
		JobIDs:        []string{"JOB20250318080000AAAA", "JOB20250319080000BBBB"},
	}

	result, err := testRenderer().InvoicePDF(p, entities.Customer{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(result, []byte("%PDF-")))
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, nonEmpty("a", "", "c"))
	assert.Empty(t, nonEmpty("", ""))
}

package interfaces

import "github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"

// IDocumentRenderer builds downloadable documents for the admin portal.
type IDocumentRenderer interface {
	QuotesWorkbook(quotes []entities.Quote) ([]byte, error)
	QuotePDF(q entities.Quote) ([]byte, error)
	InvoicePDF(p entities.Payment, c entities.Customer) ([]byte, error)
}

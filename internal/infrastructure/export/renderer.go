// Package export renders the admin downloads: the quotes workbook and the
// printable quote and invoice PDFs.
package export

import (
	appconfig "github.com/Cleaning-Company-dex/cleaning-company-web/internal/config"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"
)

type Renderer struct {
	business appconfig.BusinessConfig
}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func NewRenderer(business appconfig.BusinessConfig) *Renderer {
	return &Renderer{business: business}
}

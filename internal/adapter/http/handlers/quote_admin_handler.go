package handlers

import (
	"net/http"
	"strings"
	"time"

	request "github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/dto/request"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	quotesPath   = "/admin/quotes"
	xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfMimeType  = "application/pdf"
)

// QuoteAdminHandler lets the office follow up on web quotes.
type QuoteAdminHandler struct {
	pages     *Pages
	usecase   usecase.IQuoteUseCase
	employees usecase.IEmployeeUseCase
	documents interfaces.IDocumentRenderer
}

func NewQuoteAdminHandler(pages *Pages, uc usecase.IQuoteUseCase, employees usecase.IEmployeeUseCase, documents interfaces.IDocumentRenderer) *QuoteAdminHandler {
	return &QuoteAdminHandler{pages: pages, usecase: uc, employees: employees, documents: documents}
}

func (h *QuoteAdminHandler) List(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	quotes, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_quotes.html", "Quotes", gin.H{
		"Quotes":   quotes,
		"Status":   status,
		"Statuses": entities.QuoteStatuses,
	})
}

func (h *QuoteAdminHandler) Detail(c *gin.Context) {
	q, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	employees, err := h.employees.List(c.Request.Context())
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_quote.html", "Quote "+q.ID, gin.H{
		"Quote":     q,
		"Employees": employees,
		"Statuses":  entities.QuoteStatuses,
	})
}

// Update saves the follow-up form. A changed status is applied after the
// field edits.
func (h *QuoteAdminHandler) Update(c *gin.Context) {
	id := c.Param("id")
	detailPath := quotesPath + "/" + id
	var form request.QuoteUpdateForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.back(c, errInvalidForm, detailPath)
		return
	}
	upd, err := form.ToUpdate()
	if err != nil {
		h.pages.back(c, err, detailPath)
		return
	}
	q, err := h.usecase.Update(c.Request.Context(), id, upd)
	if err != nil {
		h.pages.back(c, err, detailPath)
		return
	}
	if raw := strings.TrimSpace(c.PostForm("status")); raw != "" {
		status, err := entities.ParseQuoteStatus(raw)
		if err != nil {
			h.pages.back(c, err, detailPath)
			return
		}
		if status != q.Status {
			if err := h.usecase.UpdateStatus(c.Request.Context(), id, status); err != nil {
				h.pages.back(c, err, detailPath)
				return
			}
		}
	}
	h.pages.audit(c, "quote_updated", "Updated quote "+id)
	h.pages.done(c, "Quote updated.", detailPath)
}

func (h *QuoteAdminHandler) Convert(c *gin.Context) {
	id := c.Param("id")
	q, customer, err := h.usecase.Convert(c.Request.Context(), id)
	if err != nil {
		h.pages.back(c, err, quotesPath+"/"+id)
		return
	}
	h.pages.audit(c, "quote_converted", "Converted quote "+q.ID+" to customer "+customer.ID)
	h.pages.done(c, "Quote converted. "+customer.Name+" is now a customer.", quotesPath+"/"+id)
}

func (h *QuoteAdminHandler) Decline(c *gin.Context) {
	id := c.Param("id")
	var form request.DeclineForm
	_ = c.ShouldBind(&form)
	if _, err := h.usecase.Decline(c.Request.Context(), id, form.Reason); err != nil {
		h.pages.back(c, err, quotesPath+"/"+id)
		return
	}
	h.pages.audit(c, "quote_declined", "Declined quote "+id)
	h.pages.done(c, "Quote declined.", quotesPath)
}

// Export downloads the filtered quote list as an Excel workbook.
func (h *QuoteAdminHandler) Export(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	data, err := h.documents.QuotesWorkbook(quotes)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	name := "quotes_" + time.Now().Format("20060102") + ".xlsx"
	logger.FromGin(c).Info("[quote][handler] export", zap.Int("quotes", len(quotes)))
	attachment(c, name, xlsxMimeType, data)
}

func (h *QuoteAdminHandler) PDF(c *gin.Context) {
	q, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	data, err := h.documents.QuotePDF(q)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	attachment(c, "quote_"+q.ID+".pdf", pdfMimeType, data)
}

func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

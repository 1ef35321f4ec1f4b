package handlers

import (
	"net/http"
	"time"

	request "github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/dto/request"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"
	"github.com/Cleaning-Company-dex/cleaning-company-web/pkg"

	"github.com/gin-gonic/gin"
)

const paymentsPath = "/admin/payments"

// PaymentHandler records customer payments and serves invoices.
type PaymentHandler struct {
	pages       *Pages
	usecase     usecase.IPaymentUseCase
	customers   usecase.ICustomerUseCase
	mockGateway bool
}

func NewPaymentHandler(pages *Pages, uc usecase.IPaymentUseCase, customers usecase.ICustomerUseCase, mockGateway bool) *PaymentHandler {
	return &PaymentHandler{pages: pages, usecase: uc, customers: customers, mockGateway: mockGateway}
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_payments.html", "Payments", gin.H{"Payments": payments})
}

func (h *PaymentHandler) New(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context(), false)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_payment_form.html", "Record Payment", gin.H{
		"Customers": customers,
		"Methods":   entities.PaymentMethods,
		"Today":     time.Now().Format(entities.DateLayout),
	})
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var form request.PaymentForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.back(c, errInvalidForm, paymentsPath+"/new")
		return
	}
	in, err := form.ToInput(h.mockGateway)
	if err != nil {
		h.pages.back(c, err, paymentsPath+"/new")
		return
	}
	p, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		h.pages.back(c, err, paymentsPath+"/new")
		return
	}
	h.pages.audit(c, "payment_recorded", "Recorded "+pkg.Money(p.Amount)+" from "+p.CustomerName+" ("+p.InvoiceNumber+")")
	h.pages.done(c, "Payment "+p.InvoiceNumber+" recorded.", paymentsPath)
}

func (h *PaymentHandler) SetStatus(c *gin.Context) {
	id := c.Param("id")
	var form request.StatusForm
	_ = c.ShouldBind(&form)
	status, err := entities.ParsePaymentStatus(form.Status)
	if err != nil {
		h.pages.back(c, err, paymentsPath)
		return
	}
	if err := h.usecase.UpdateStatus(c.Request.Context(), id, status); err != nil {
		h.pages.back(c, err, paymentsPath)
		return
	}
	h.pages.audit(c, "payment_status", "Set payment "+id+" to "+string(status))
	h.pages.done(c, "Payment updated.", paymentsPath)
}

func (h *PaymentHandler) Invoice(c *gin.Context) {
	data, p, err := h.usecase.Invoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	attachment(c, "invoice_"+p.InvoiceNumber+".pdf", pdfMimeType, data)
}

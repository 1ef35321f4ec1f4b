package handlers

import (
	"net/http"

	request "github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/dto/request"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
)

const customersPath = "/admin/customers"

// CustomerHandler is the admin customer CRUD.
type CustomerHandler struct {
	pages   *Pages
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(pages *Pages, uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{pages: pages, usecase: uc}
}

func (h *CustomerHandler) List(c *gin.Context) {
	includeInactive := c.Query("inactive") != ""
	customers, err := h.usecase.List(c.Request.Context(), includeInactive)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_customers.html", "Customers", gin.H{
		"Customers":       customers,
		"IncludeInactive": includeInactive,
	})
}

func (h *CustomerHandler) New(c *gin.Context) {
	h.pages.render(c, http.StatusOK, "admin_customer_form.html", "New Customer", gin.H{
		"Customer": entities.Customer{},
		"Action":   customersPath,
	})
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var form request.CustomerForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.back(c, errInvalidForm, customersPath+"/new")
		return
	}
	customer, err := form.ToCustomer("")
	if err != nil {
		h.pages.back(c, err, customersPath+"/new")
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), customer)
	if err != nil {
		h.pages.back(c, err, customersPath+"/new")
		return
	}
	h.pages.audit(c, "customer_created", "Created customer "+created.Name+" ("+created.ID+")")
	h.pages.done(c, "Customer "+created.Name+" added.", customersPath)
}

func (h *CustomerHandler) Edit(c *gin.Context) {
	customer, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_customer_form.html", "Edit Customer", gin.H{
		"Customer": customer,
		"Action":   customersPath + "/" + customer.ID,
	})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")
	editPath := customersPath + "/" + id + "/edit"
	var form request.CustomerForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.back(c, errInvalidForm, editPath)
		return
	}
	customer, err := form.ToCustomer(id)
	if err != nil {
		h.pages.back(c, err, editPath)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), customer)
	if err != nil {
		h.pages.back(c, err, editPath)
		return
	}
	h.pages.audit(c, "customer_updated", "Updated customer "+updated.ID)
	h.pages.done(c, "Customer updated.", customersPath)
}

func (h *CustomerHandler) SetStatus(c *gin.Context) {
	id := c.Param("id")
	var form request.StatusForm
	_ = c.ShouldBind(&form)
	status, err := entities.ParseCustomerStatus(form.Status)
	if err != nil {
		h.pages.back(c, err, customersPath)
		return
	}
	if err := h.usecase.SetStatus(c.Request.Context(), id, status); err != nil {
		h.pages.back(c, err, customersPath)
		return
	}
	h.pages.audit(c, "customer_status", "Set customer "+id+" to "+string(status))
	h.pages.done(c, "Customer status updated.", customersPath)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		h.pages.back(c, err, customersPath)
		return
	}
	h.pages.audit(c, "customer_deleted", "Deleted customer "+id)
	h.pages.done(c, "Customer deleted.", customersPath)
}

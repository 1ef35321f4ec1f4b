package handlers

import (
	"net/http"

	request "github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/dto/request"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
)

const employeesPath = "/admin/employees"

// EmployeeHandler is the admin employee CRUD.
type EmployeeHandler struct {
	pages   *Pages
	usecase usecase.IEmployeeUseCase
}

func NewEmployeeHandler(pages *Pages, uc usecase.IEmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{pages: pages, usecase: uc}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_employees.html", "Employees", gin.H{"Employees": employees})
}

func (h *EmployeeHandler) New(c *gin.Context) {
	h.pages.render(c, http.StatusOK, "admin_employee_form.html", "New Employee", gin.H{
		"Employee": entities.Employee{},
		"Action":   employeesPath,
	})
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var form request.EmployeeForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.back(c, errInvalidForm, employeesPath+"/new")
		return
	}
	in, err := form.ToInput()
	if err != nil {
		h.pages.back(c, err, employeesPath+"/new")
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		h.pages.back(c, err, employeesPath+"/new")
		return
	}
	h.pages.audit(c, "employee_created", "Created employee "+created.Username+" ("+created.ID+")")
	h.pages.done(c, "Employee "+created.Name+" added.", employeesPath)
}

func (h *EmployeeHandler) Edit(c *gin.Context) {
	e, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_employee_form.html", "Edit Employee", gin.H{
		"Employee": e,
		"Action":   employeesPath + "/" + e.ID,
	})
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id := c.Param("id")
	editPath := employeesPath + "/" + id + "/edit"
	var form request.EmployeeForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.back(c, errInvalidForm, editPath)
		return
	}
	in, err := form.ToInput()
	if err != nil {
		h.pages.back(c, err, editPath)
		return
	}
	if _, err := h.usecase.Update(c.Request.Context(), id, in); err != nil {
		h.pages.back(c, err, editPath)
		return
	}
	h.pages.audit(c, "employee_updated", "Updated employee "+id)
	h.pages.done(c, "Employee updated.", employeesPath)
}

func (h *EmployeeHandler) ToggleActive(c *gin.Context) {
	id := c.Param("id")
	active, err := h.usecase.ToggleActive(c.Request.Context(), id)
	if err != nil {
		h.pages.back(c, err, employeesPath)
		return
	}
	state := "deactivated"
	if active {
		state = "activated"
	}
	h.pages.audit(c, "employee_toggled", "Employee "+id+" "+state)
	h.pages.done(c, "Employee "+state+".", employeesPath)
}

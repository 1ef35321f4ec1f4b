package handlers

import (
	"context"
	"net/http"
	"time"

	request "github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/dto/request"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
)

const jobsPath = "/admin/jobs"

// JobHandler is the admin scheduling screen.
type JobHandler struct {
	pages     *Pages
	usecase   usecase.IJobUseCase
	customers usecase.ICustomerUseCase
	employees usecase.IEmployeeUseCase
}

func NewJobHandler(pages *Pages, uc usecase.IJobUseCase, customers usecase.ICustomerUseCase, employees usecase.IEmployeeUseCase) *JobHandler {
	return &JobHandler{pages: pages, usecase: uc, customers: customers, employees: employees}
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_jobs.html", "Jobs", gin.H{"Jobs": jobs})
}

func (h *JobHandler) New(c *gin.Context) {
	job := entities.Job{Date: time.Now(), CustomerID: c.Query("customer_id")}
	h.form(c, "Schedule Job", jobsPath, job)
}

func (h *JobHandler) Edit(c *gin.Context) {
	job, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.form(c, "Edit Job", jobsPath+"/"+job.ID, job)
}

func (h *JobHandler) form(c *gin.Context, title, action string, job entities.Job) {
	customers, employees, err := h.pickers(c.Request.Context())
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_job_form.html", title, gin.H{
		"Job":       job,
		"Action":    action,
		"Customers": customers,
		"Employees": employees,
		"Statuses":  entities.JobStatuses,
	})
}

func (h *JobHandler) pickers(ctx context.Context) ([]entities.Customer, []entities.Employee, error) {
	customers, err := h.customers.List(ctx, false)
	if err != nil {
		return nil, nil, err
	}
	employees, err := h.employees.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return customers, employees, nil
}

func (h *JobHandler) Create(c *gin.Context) {
	var form request.JobForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.back(c, errInvalidForm, jobsPath+"/new")
		return
	}
	in, err := form.ToInput()
	if err != nil {
		h.pages.back(c, err, jobsPath+"/new")
		return
	}
	job, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		h.pages.back(c, err, jobsPath+"/new")
		return
	}
	h.pages.audit(c, "job_created", "Scheduled job "+job.ID+" for "+job.CustomerName+" on "+job.DateKey())
	h.pages.done(c, "Job scheduled.", jobsPath)
}

func (h *JobHandler) Update(c *gin.Context) {
	id := c.Param("id")
	editPath := jobsPath + "/" + id + "/edit"
	var form request.JobForm
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
	h.pages.audit(c, "job_updated", "Updated job "+id)
	h.pages.done(c, "Job updated.", jobsPath)
}

func (h *JobHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Cancel(c.Request.Context(), id); err != nil {
		h.pages.back(c, err, jobsPath)
		return
	}
	h.pages.audit(c, "job_cancelled", "Cancelled job "+id)
	h.pages.done(c, "Job cancelled.", jobsPath)
}

package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	request "github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/dto/request"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/middleware"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	employeeDashboardPath = "/employee/dashboard"
	maxPhotoBytes         = 10 << 20
)

var photoExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}

// EmployeePortalHandler is what cleaners use on site: today's jobs,
// check-in and completion with an optional photo.
type EmployeePortalHandler struct {
	pages     *Pages
	jobs      usecase.IJobUseCase
	uploadDir string
	now       func() time.Time
}

func NewEmployeePortalHandler(pages *Pages, jobs usecase.IJobUseCase, uploadDir string) *EmployeePortalHandler {
	return &EmployeePortalHandler{pages: pages, jobs: jobs, uploadDir: uploadDir, now: time.Now}
}

func (h *EmployeePortalHandler) Dashboard(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)
	day := h.now()
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		parsed, err := time.Parse(entities.DateLayout, raw)
		if err != nil {
			h.pages.back(c, apperr.NewValidationError("date", "expected YYYY-MM-DD"), employeeDashboardPath)
			return
		}
		day = parsed
	}
	jobs, err := h.jobs.ListForEmployee(c.Request.Context(), p.Subject, day)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "employee_dashboard.html", "My Jobs", gin.H{"Jobs": jobs, "Date": day})
}

func (h *EmployeePortalHandler) Job(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)
	job, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	if job.EmployeeID != p.Subject {
		h.pages.fail(c, usecase.ErrJobNotAssigned)
		return
	}
	h.pages.render(c, http.StatusOK, "employee_job.html", job.CustomerName, gin.H{"Job": job})
}

func (h *EmployeePortalHandler) CheckIn(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)
	id := c.Param("id")
	job, err := h.jobs.CheckIn(c.Request.Context(), id, p.Subject)
	if err != nil {
		h.pages.back(c, err, "/employee/jobs/"+id)
		return
	}
	h.pages.audit(c, "job_checkin", "Checked in to job "+job.ID)
	h.pages.done(c, "Checked in at "+job.CheckInTime.Format("3:04 PM")+".", "/employee/jobs/"+id)
}

func (h *EmployeePortalHandler) Complete(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)
	id := c.Param("id")
	jobPath := "/employee/jobs/" + id

	var form request.CompleteJobForm
	_ = c.ShouldBind(&form)

	photo, err := h.savePhoto(c, id)
	if err != nil {
		h.pages.back(c, err, jobPath)
		return
	}
	job, err := h.jobs.Complete(c.Request.Context(), id, p.Subject, form.Notes, photo)
	if err != nil {
		if photo != "" {
			_ = os.Remove(filepath.Join(h.uploadDir, photo))
		}
		h.pages.back(c, err, jobPath)
		return
	}
	h.pages.audit(c, "job_completed", "Completed job "+job.ID)
	h.pages.done(c, "Job completed. Great work!", employeeDashboardPath)
}

// savePhoto stores the optional photo under uploadDir and returns its file
// name, or "" when none was sent.
func (h *EmployeePortalHandler) savePhoto(c *gin.Context, jobID string) (string, error) {
	file, err := c.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", apperr.NewValidationError("photo", "could not read the uploaded file")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !photoExtensions[ext] {
		return "", apperr.NewValidationError("photo", "must be a jpg, png, gif or webp image")
	}
	if file.Size > maxPhotoBytes {
		return "", apperr.NewValidationError("photo", "must be smaller than 10 MB")
	}
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}
	name := jobID + "_" + h.now().UTC().Format("20060102150405") + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return "", err
	}
	logger.FromGin(c).Info("[job][handler] photo saved", zap.String("job_id", jobID), zap.String("file", name), zap.Int64("bytes", file.Size))
	return name, nil
}

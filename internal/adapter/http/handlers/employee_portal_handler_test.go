package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/handlers/mocks"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func portalRouter(t *testing.T, h *EmployeePortalHandler) *gin.Engine {
	r := newRouter(t)
	g := r.Group("/employee", employeeOnly())
	g.GET("/dashboard", h.Dashboard)
	g.GET("/jobs/:id", h.Job)
	g.POST("/jobs/:id/checkin", h.CheckIn)
	g.POST("/jobs/:id/complete", h.Complete)
	return r
}

func TestEmployeePortalHandler_Dashboard(t *testing.T) {
	t.Run("lists own jobs for the requested date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mocks.NewMockIJobUseCase(ctrl)
		jobs.EXPECT().ListForEmployee(gomock.Any(), "EMP1", time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC)).
			Return([]entities.Job{{ID: "JOB1", CustomerName: "Acme Dental", Time: "09:00", Status: entities.JobStatusScheduled}}, nil)
		r := portalRouter(t, NewEmployeePortalHandler(newPages(nil), jobs, t.TempDir()))

		w := get(r, "/employee/dashboard?date=2025-03-21", authCookie(t, employeePrincipal))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		assert.Contains(t, w.Body.String(), "Acme Dental")
		assert.Contains(t, w.Body.String(), "/employee/jobs/JOB1")
	})

	t.Run("admin token is not enough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := portalRouter(t, NewEmployeePortalHandler(newPages(nil), mocks.NewMockIJobUseCase(ctrl), t.TempDir()))

		expectRedirect(t, get(r, "/employee/dashboard", authCookie(t, adminPrincipal)), "/employee/login")
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := portalRouter(t, NewEmployeePortalHandler(newPages(nil), mocks.NewMockIJobUseCase(ctrl), t.TempDir()))

		expectRedirect(t, get(r, "/employee/dashboard?date=21/03/2025", authCookie(t, employeePrincipal)), "/employee/dashboard")
	})
}

func TestEmployeePortalHandler_Job(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mocks.NewMockIJobUseCase(ctrl)
	jobs.EXPECT().Get(gomock.Any(), "JOB2").Return(entities.Job{ID: "JOB2", EmployeeID: "EMP9"}, nil)
	jobs.EXPECT().Get(gomock.Any(), "JOB1").Return(entities.Job{ID: "JOB1", EmployeeID: "EMP1", CustomerName: "Acme Dental", Status: entities.JobStatusInProgress}, nil)
	r := portalRouter(t, NewEmployeePortalHandler(newPages(nil), jobs, t.TempDir()))
	emp := authCookie(t, employeePrincipal)

	w := get(r, "/employee/jobs/JOB2", emp)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for someone else's job, got %d", w.Code)
	}

	w = get(r, "/employee/jobs/JOB1", emp)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assert.Contains(t, w.Body.String(), "/employee/jobs/JOB1/complete")
}

func TestEmployeePortalHandler_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mocks.NewMockIJobUseCase(ctrl)
	activity := mocks.NewMockIActivityLogger(ctrl)
	jobs.EXPECT().CheckIn(gomock.Any(), "JOB1", "EMP1").Return(entities.Job{ID: "JOB1", CheckInTime: time.Date(2025, 3, 21, 9, 5, 0, 0, time.UTC)}, nil)
	activity.EXPECT().Record(gomock.Any(), "job_checkin", gomock.Any(), "Maria", gomock.Any())
	r := portalRouter(t, NewEmployeePortalHandler(newPages(activity), jobs, t.TempDir()))

	w := postForm(r, "/employee/jobs/JOB1/checkin", nil, authCookie(t, employeePrincipal))
	expectRedirect(t, w, "/employee/jobs/JOB1")
}

func TestEmployeePortalHandler_Complete(t *testing.T) {
	fixedNow := func() time.Time { return time.Date(2025, 3, 21, 11, 30, 0, 0, time.UTC) }

	t.Run("saves the photo and completes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dir := t.TempDir()
		jobs := mocks.NewMockIJobUseCase(ctrl)
		jobs.EXPECT().Complete(gomock.Any(), "JOB1", "EMP1", "all rooms done", "JOB1_20250321113000.jpg").
			DoAndReturn(func(_ context.Context, id, _, _, _ string) (entities.Job, error) {
				return entities.Job{ID: id, Status: entities.JobStatusCompleted}, nil
			})
		h := NewEmployeePortalHandler(newPages(nil), jobs, dir)
		h.now = fixedNow
		r := portalRouter(t, h)

		w := postMultipart(t, r, "/employee/jobs/JOB1/complete", map[string]string{"notes": "all rooms done"}, "after.JPG", []byte("jpeg bytes"), authCookie(t, employeePrincipal))
		expectRedirect(t, w, "/employee/dashboard")

		data, err := os.ReadFile(filepath.Join(dir, "JOB1_20250321113000.jpg"))
		require.NoError(t, err)
		assert.Equal(t, "jpeg bytes", string(data))
	})

	t.Run("rejects non-image uploads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dir := t.TempDir()
		jobs := mocks.NewMockIJobUseCase(ctrl)
		r := portalRouter(t, NewEmployeePortalHandler(newPages(nil), jobs, dir))

		w := postMultipart(t, r, "/employee/jobs/JOB1/complete", nil, "notes.exe", []byte("MZ"), authCookie(t, employeePrincipal))
		expectRedirect(t, w, "/employee/jobs/JOB1")
		entries, _ := os.ReadDir(dir)
		assert.Empty(t, entries)
	})

	t.Run("no photo and a plain form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mocks.NewMockIJobUseCase(ctrl)
		jobs.EXPECT().Complete(gomock.Any(), "JOB1", "EMP1", "", "").Return(entities.Job{ID: "JOB1"}, nil)
		r := portalRouter(t, NewEmployeePortalHandler(newPages(nil), jobs, t.TempDir()))

		w := postForm(r, "/employee/jobs/JOB1/complete", nil, authCookie(t, employeePrincipal))
		expectRedirect(t, w, "/employee/dashboard")
	})

	t.Run("photo is removed when completion fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dir := t.TempDir()
		jobs := mocks.NewMockIJobUseCase(ctrl)
		jobs.EXPECT().Complete(gomock.Any(), "JOB1", "EMP1", "", gomock.Any()).Return(entities.Job{}, usecase.ErrJobNotAssigned)
		r := portalRouter(t, NewEmployeePortalHandler(newPages(nil), jobs, dir))

		w := postMultipart(t, r, "/employee/jobs/JOB1/complete", nil, "after.png", []byte("png"), authCookie(t, employeePrincipal))
		expectRedirect(t, w, "/employee/jobs/JOB1")
		entries, _ := os.ReadDir(dir)
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), "JOB1_") {
				t.Fatalf("expected uploaded photo to be removed, found %s", e.Name())
			}
		}
	})
}

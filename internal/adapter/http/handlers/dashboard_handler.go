package handlers

import (
	"net/http"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	pages   *Pages
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(pages *Pages, uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{pages: pages, usecase: uc}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_dashboard.html", "Dashboard", gin.H{"Stats": stats})
}

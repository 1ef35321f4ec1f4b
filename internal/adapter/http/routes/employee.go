package routes

import (
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/middleware"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathEmployee      = "/employee"
	PathEmployeeLogin = PathEmployee + "/login"
)

func addEmployeeRoutes(router *gin.Engine, h Handlers, opts Options) {
	router.GET(PathEmployeeLogin, h.Auth.EmployeeLoginForm)
	router.POST(PathEmployeeLogin, h.Auth.EmployeeLogin)

	portal := router.Group(PathEmployee, middleware.RequireRole(opts.AuthUseCase, usecase.RoleEmployee, PathEmployeeLogin))
	{
		portal.GET("/dashboard", h.Portal.Dashboard)
		portal.GET("/jobs/:id", h.Portal.Job)
		portal.POST("/jobs/:id/checkin", h.Portal.CheckIn)
		portal.POST("/jobs/:id/complete", h.Portal.Complete)
	}
}

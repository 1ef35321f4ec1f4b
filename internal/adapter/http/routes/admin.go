package routes

import (
	"net/http"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/middleware"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin      = "/admin"
	PathAdminLogin = PathAdmin + "/login"
)

func addAdminRoutes(router *gin.Engine, h Handlers, opts Options) {
	router.GET(PathAdminLogin, h.Auth.AdminLoginForm)
	router.POST(PathAdminLogin, h.Auth.AdminLogin)

	admin := router.Group(PathAdmin, middleware.RequireRole(opts.AuthUseCase, usecase.RoleAdmin, PathAdminLogin))
	admin.GET("", func(c *gin.Context) { c.Redirect(http.StatusFound, PathAdmin+"/dashboard") })
	admin.GET("/dashboard", h.Dashboard.Dashboard)
	admin.Static("/uploads", opts.UploadDir)

	customers := admin.Group("/customers")
	{
		customers.GET("", h.Customers.List)
		customers.GET("/new", h.Customers.New)
		customers.POST("", h.Customers.Create)
		customers.GET("/:id/edit", h.Customers.Edit)
		customers.POST("/:id", h.Customers.Update)
		customers.POST("/:id/status", h.Customers.SetStatus)
		customers.POST("/:id/delete", h.Customers.Delete)
	}

	employees := admin.Group("/employees")
	{
		employees.GET("", h.Employees.List)
		employees.GET("/new", h.Employees.New)
		employees.POST("", h.Employees.Create)
		employees.GET("/:id/edit", h.Employees.Edit)
		employees.POST("/:id", h.Employees.Update)
		employees.POST("/:id/toggle", h.Employees.ToggleActive)
	}

	jobs := admin.Group("/jobs")
	{
		jobs.GET("", h.Jobs.List)
		jobs.GET("/new", h.Jobs.New)
		jobs.POST("", h.Jobs.Create)
		jobs.GET("/:id/edit", h.Jobs.Edit)
		jobs.POST("/:id", h.Jobs.Update)
		jobs.POST("/:id/cancel", h.Jobs.Cancel)
	}

	quotes := admin.Group("/quotes")
	{
		quotes.GET("", h.Quotes.List)
		quotes.GET("/export", h.Quotes.Export)
		quotes.GET("/:id", h.Quotes.Detail)
		quotes.GET("/:id/pdf", h.Quotes.PDF)
		quotes.POST("/:id/update", h.Quotes.Update)
		quotes.POST("/:id/convert", h.Quotes.Convert)
		quotes.POST("/:id/decline", h.Quotes.Decline)
	}

	payments := admin.Group("/payments")
	{
		payments.GET("", h.Payments.List)
		payments.GET("/new", h.Payments.New)
		payments.POST("", h.Payments.Create)
		payments.POST("/:id/status", h.Payments.SetStatus)
		payments.GET("/:id/invoice", h.Payments.Invoice)
	}
}

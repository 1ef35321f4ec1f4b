package routes

import (
	"net/http"

	_ "github.com/Cleaning-Company-dex/cleaning-company-web/docs"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/handlers"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/views"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/metrics"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers is everything the router mounts.
type Handlers struct {
	Pages     *handlers.Pages
	Public    *handlers.PublicHandler
	Estimate  *handlers.EstimateHandler
	Chat      *handlers.ChatHandler
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Customers *handlers.CustomerHandler
	Employees *handlers.EmployeeHandler
	Jobs      *handlers.JobHandler
	Quotes    *handlers.QuoteAdminHandler
	Payments  *handlers.PaymentHandler
	Portal    *handlers.EmployeePortalHandler
}

type Options struct {
	ServiceName string
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	AuthUseCase usecase.IAuthUseCase
	UploadDir   string
}

// NewRouter builds the gin engine with middlewares, templates and every route.
func NewRouter(opts Options, h Handlers) (*gin.Engine, error) {
	tmpl, err := views.Parse()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	setMiddlewares(router, opts)

	router.GET("/health", handlers.Health(opts.ServiceName))
	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addPublicRoutes(router, h)
	addAdminRoutes(router, h, opts)
	addEmployeeRoutes(router, h, opts)

	router.NoRoute(h.Pages.NotFound)
	return router, nil
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(logger.RequestID())
	router.Use(logger.Middleware(opts.Logger))
	router.Use(opts.Metrics.Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromGin(c).Error("[http][router] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

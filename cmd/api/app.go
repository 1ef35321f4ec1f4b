package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/handlers"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/routes"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/session"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/persistence/repository"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/config"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/chat"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/database"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/export"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/mail"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/payments"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/sheets"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/metrics"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// app holds everything built from the configuration. closers run in reverse
// order on shutdown.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	metrics *metrics.Metrics

	store    *sheets.Store
	sessions interfaces.ISessionRepository
	schemas  []interfaces.ISchemaBootstrapper

	customers *repository.CustomerSheetRepository
	employees *repository.EmployeeSheetRepository
	jobs      *repository.JobSheetRepository
	payments  *repository.PaymentSheetRepository
	quotes    *repository.QuoteSheetRepository
	activity  *repository.ActivitySheetRepository

	closers []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.InitLogger(logger.LogConfig{Level: cfg.Log.Level, Environment: cfg.Server.Env, ServiceName: cfg.ServiceName})
	log.Info("[app][config] configuration loaded", cfg.LogFields()...)

	a := &app{
		cfg:     cfg,
		log:     log,
		metrics: metrics.New(cfg.Metrics.Prefix, nil),
	}

	backend, err := a.openBackend(ctx)
	if err != nil {
		return nil, err
	}
	a.store = sheets.NewStore(backend,
		sheets.WithCache(sheets.NewCache(cfg.Sheets.CacheTTL)),
		sheets.WithThrottle(sheets.NewThrottle(cfg.Sheets.RateLimitRequests, cfg.Sheets.RateLimitWindow, cfg.Sheets.MaxRetries)),
		sheets.WithTimeout(cfg.Sheets.RequestTimeout),
		sheets.WithLogger(log),
		sheets.WithObserver(a.metrics),
	)

	a.customers = repository.NewCustomerSheetRepository(a.store, log)
	a.employees = repository.NewEmployeeSheetRepository(a.store, log)
	a.jobs = repository.NewJobSheetRepository(a.store, log)
	a.payments = repository.NewPaymentSheetRepository(a.store, log)
	a.quotes = repository.NewQuoteSheetRepository(a.store, log)
	a.activity = repository.NewActivitySheetRepository(a.store, log)
	a.schemas = []interfaces.ISchemaBootstrapper{a.quotes, a.customers, a.employees, a.jobs, a.payments, a.activity}

	if err := a.openSessions(ctx); err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

func (a *app) openBackend(ctx context.Context) (sheets.Backend, error) {
	cfg := a.cfg.Sheets
	switch cfg.Backend {
	case "google":
		b, err := sheets.NewGoogleSheetsBackend(ctx, cfg.CredentialsFile, cfg.SpreadsheetID, cfg.SpreadsheetName)
		if err != nil {
			return nil, fmt.Errorf("open google sheets: %w", err)
		}
		a.log.Info("[app][sheets] using google sheets", zap.String("spreadsheet_id", b.SpreadsheetID()))
		return b, nil
	default:
		b, err := sheets.NewWorkbookBackend(cfg.WorkbookPath)
		if err != nil {
			return nil, fmt.Errorf("open workbook: %w", err)
		}
		a.closers = append(a.closers, b.Close)
		a.log.Info("[app][sheets] using local workbook", zap.String("path", cfg.WorkbookPath))
		return b, nil
	}
}

func (a *app) openSessions(ctx context.Context) error {
	if a.cfg.Session.Backend != "dynamodb" {
		a.sessions = repository.NewSessionMemoryRepository()
		return nil
	}
	client, err := database.ConnectDynamoDB(ctx, a.cfg.Session.DynamoDB)
	if err != nil {
		return err
	}
	repo := repository.NewSessionDynamoRepository(client, a.cfg.Session.Table)
	a.sessions = repo
	a.schemas = append(a.schemas, repo)
	return nil
}

// bootstrap makes sure every table exists. Failures are returned joined so
// one unreachable table does not hide the others.
func (a *app) bootstrap(ctx context.Context) error {
	var errs []error
	for _, s := range a.schemas {
		if err := s.Bootstrap(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("[app][shutdown] close failed", zap.Error(err))
		}
	}
	a.store.Close()
	_ = a.log.Sync()
}

func (a *app) router(ctx context.Context) (*gin.Engine, error) {
	cfg := a.cfg
	business := usecase.BusinessInfo{Name: cfg.Business.Name, Phone: cfg.Business.Phone, Email: cfg.Business.Email}

	var notifier interfaces.INotifier
	if cfg.SMTP.Enabled() {
		n, err := mail.NewNotifier(cfg.SMTP, cfg.Business, a.log)
		if err != nil {
			return nil, err
		}
		notifier = n
	} else {
		a.log.Info("[app][mail] smtp not configured, quote notifications disabled")
	}

	var model interfaces.IChatModel
	if cfg.Chat.APIKey != "" {
		m, err := chat.NewGeminiModel(ctx, cfg.Chat.APIKey, cfg.Chat.Model, a.log)
		if err != nil {
			a.log.Warn("[app][chat] model unavailable, keyword replies only", zap.Error(err))
		} else {
			model = m
			a.closers = append(a.closers, m.Close)
		}
	}

	gateway, err := payments.NewMercadoPagoGateway(cfg.Payments, a.log)
	if err != nil {
		return nil, err
	}
	documents := export.NewRenderer(cfg.Business)

	quoteUC := usecase.NewQuoteUseCase(a.quotes, a.customers, notifier, a.metrics)
	chatUC := usecase.NewChatUseCase(model, business, cfg.Chat.Timeout, a.metrics)
	customerUC := usecase.NewCustomerUseCase(a.customers)
	employeeUC := usecase.NewEmployeeUseCase(a.employees)
	jobUC := usecase.NewJobUseCase(a.jobs, a.customers, a.employees)
	paymentUC := usecase.NewPaymentUseCase(a.payments, a.customers, gateway, documents)
	dashboardUC := usecase.NewDashboardUseCase(a.customers, a.employees, a.jobs, a.payments, a.quotes)
	authUC := usecase.NewAuthUseCase(a.employees,
		usecase.AdminCredentials{Username: cfg.Admin.Username, Password: cfg.Admin.Password},
		cfg.JWT.SigningKey, time.Duration(cfg.JWT.ExpirationHours)*time.Hour)
	activity := usecase.NewActivityLogger(a.activity)

	if err := os.MkdirAll(cfg.Server.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	pages := handlers.NewPages(session.NewManager(a.sessions, cfg.Session.TTL, cfg.Server.CookieSecure), business, activity)
	h := routes.Handlers{
		Pages:     pages,
		Public:    handlers.NewPublicHandler(pages, quoteUC),
		Estimate:  handlers.NewEstimateHandler(quoteUC),
		Chat:      handlers.NewChatHandler(chatUC),
		Auth:      handlers.NewAuthHandler(pages, authUC, cfg.Server.CookieSecure),
		Dashboard: handlers.NewDashboardHandler(pages, dashboardUC),
		Customers: handlers.NewCustomerHandler(pages, customerUC),
		Employees: handlers.NewEmployeeHandler(pages, employeeUC),
		Jobs:      handlers.NewJobHandler(pages, jobUC, customerUC, employeeUC),
		Quotes:    handlers.NewQuoteAdminHandler(pages, quoteUC, employeeUC, documents),
		Payments:  handlers.NewPaymentHandler(pages, paymentUC, customerUC, cfg.Payments.Mock),
		Portal:    handlers.NewEmployeePortalHandler(pages, jobUC, cfg.Server.UploadDir),
	}

	return routes.NewRouter(routes.Options{
		ServiceName: cfg.ServiceName,
		Logger:      a.log,
		Metrics:     a.metrics,
		AuthUseCase: authUC,
		UploadDir:   cfg.Server.UploadDir,
	}, h)
}

func runServer(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if a.cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	// The site stays up with the store down; requests degrade instead.
	if err := a.bootstrap(ctx); err != nil {
		a.log.Warn("[app][bootstrap] schema bootstrap incomplete", zap.Error(err))
	}

	router, err := a.router(ctx)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("[app][server] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("[app][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func runBootstrap(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	a, err := newApp(parent)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.bootstrap(parent); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	a.log.Info("[app][bootstrap] every table is ready", zap.Int("tables", len(a.schemas)))
	return nil
}

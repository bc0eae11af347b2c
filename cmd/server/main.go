package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tradebot365-admin/internal/config"
	"tradebot365-admin/internal/database"
	"tradebot365-admin/internal/handlers"
	"tradebot365-admin/internal/middleware"
	"tradebot365-admin/internal/models"
	"tradebot365-admin/internal/repositories"
	"tradebot365-admin/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const accountManagerService = "account_manager"

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.Server.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	actionLogger := services.NewActionLogger(logger)

	recordRepo := repositories.NewAccountRecordRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)

	reportCache := cache.New(cfg.Dashboard.CacheTTL, cfg.Dashboard.CacheCleanupInterval)

	hierarchyService := services.NewAccountHierarchyService(recordRepo, reportCache, metrics, actionLogger, services.HierarchyConfig{
		DefaultPageSize:  cfg.Dashboard.DefaultPageSize,
		MaxPageSize:      cfg.Dashboard.MaxPageSize,
		CacheTTL:         cfg.Dashboard.CacheTTL,
		MaxImportRecords: cfg.Dashboard.MaxImportRecords,
	})
	auditService := services.NewAuditService(auditRepo)
	tokenService := services.NewTokenService(&cfg.JWT)
	generator := services.NewAccountDataGenerator()

	breakerConfig := services.DefaultCircuitBreakerConfig()
	if cfg.Dashboard.ManagerMaxFailures > 0 {
		breakerConfig.MaxFailures = cfg.Dashboard.ManagerMaxFailures
	}
	if cfg.Dashboard.ManagerResetTimeout > 0 {
		breakerConfig.ResetTimeout = cfg.Dashboard.ManagerResetTimeout
	}
	breakerConfig.OnStateChange = func(from, to models.CircuitBreakerState) {
		actionLogger.LogCircuitBreakerStateChange(context.Background(), accountManagerService, from.String(), to.String())
		metrics.RecordGauge("circuit_breaker_state", float64(to), map[string]string{"service": accountManagerService})
	}
	breaker := services.NewCircuitBreaker(breakerConfig)

	var manager services.AccountManager = recordRepo
	if cfg.AccountManager.BaseURL != "" {
		remote := services.NewAccountManagerClient(&cfg.AccountManager, logger)
		manager = services.NewWriteThroughAccountManager(remote, recordRepo, logger)
		slog.Info("Forwarding trading account actions", "account_manager", cfg.AccountManager.BaseURL)
	}
	actionService := services.NewAccountActionService(manager, hierarchyService, auditService, breaker, metrics, actionLogger)

	if cfg.Dashboard.SeedMockData {
		seedMockData(ctx, cfg, recordRepo, hierarchyService, generator)
	}

	if cfg.IsDevelopment() {
		if token, expiresAt, err := tokenService.GenerateAccessToken(uuid.NewString(), "admin@tradebot365.local", models.RoleAdmin); err == nil {
			slog.Info("Development admin token", "token", token, "expires_at", expiresAt)
		}
	}

	rateLimiter := middleware.NewIPRateLimiter(cfg.Security)
	go rateLimiter.Run(ctx)
	go purgeAuditLogs(ctx, auditService, cfg.Dashboard.AuditRetention)

	e := newServer(cfg, db, tokenService, metrics, rateLimiter,
		handlers.NewAccountHierarchyHandler(hierarchyService, generator, auditService, metrics),
		handlers.NewAccountActionHandler(actionService),
	)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

func newServer(
	cfg *config.Config,
	db *database.DB,
	tokenService services.TokenServiceInterface,
	metrics services.MetricsRecorderInterface,
	rateLimiter *middleware.IPRateLimiter,
	hierarchyHandler *handlers.AccountHierarchyHandler,
	actionHandler *handlers.AccountActionHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	// X-Forwarded-For is honoured only when the request comes through a proxy on a private network
	e.IPExtractor = echo.ExtractIPFromXFFHeader()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(metrics))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit("10M"))
	e.Use(rateLimiter.Middleware())

	docs := handlers.NewDocsHandler(cfg.Dashboard.DocsDir)
	e.GET("/health", handlers.NewHealthCheckHandler(db).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/docs", docs.ServeScalarUI)
	e.GET("/docs/swagger.json", docs.ServeOAS3JSON)

	admin := e.Group("/api/v1/admin", middleware.RequireAuth(tokenService), middleware.RequireAccountManager())

	accounts := admin.Group("/accounts")
	accounts.GET("", hierarchyHandler.ListAccounts)
	accounts.GET("/stats", hierarchyHandler.GetStats)
	accounts.GET("/users/:userId", hierarchyHandler.GetUser)
	accounts.POST("/import", hierarchyHandler.ImportRecords, middleware.RequireAdmin())
	accounts.POST("/mock", hierarchyHandler.GenerateMockRecords, middleware.RequireAdmin())

	trading := accounts.Group("/trading/:accountId")
	trading.PUT("", actionHandler.EditTradingAccount)
	trading.DELETE("", actionHandler.DeleteTradingAccount)
	trading.POST("/toggle-connection", actionHandler.ToggleConnection)
	trading.GET("/activity", actionHandler.GetActivity)

	return e
}

// seedMockData fills an empty record store with a generated dataset
func seedMockData(
	ctx context.Context,
	cfg *config.Config,
	repo repositories.AccountRecordRepositoryInterface,
	hierarchyService services.AccountHierarchyServiceInterface,
	generator services.AccountDataGeneratorInterface,
) {
	count, err := repo.Count(ctx)
	if err != nil {
		slog.Warn("Skipping mock data seed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Record store not empty, skipping mock data seed", "records", count)
		return
	}

	opts := models.DefaultMockDataOptions()
	opts.Users = cfg.Dashboard.MockUsers
	opts.Seed = uint64(cfg.Dashboard.MockSeed)

	result, err := hierarchyService.ImportRecords(ctx, generator.GenerateRecords(opts.WithDefaults()))
	if err != nil {
		slog.Warn("Mock data seed failed", "error", err)
		return
	}
	slog.Info("Seeded mock account records", "stored", result.Stored, "hidden", result.Hidden)
}

// purgeAuditLogs drops audit entries older than retention once a day until ctx is done
func purgeAuditLogs(ctx context.Context, auditService services.AuditServiceInterface, retention time.Duration) {
	if retention <= 0 {
		return
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := auditService.PurgeOlderThan(retention)
			if err != nil {
				slog.Warn("Audit log purge failed", "error", err)
				continue
			}
			slog.Info("Purged audit logs", "count", purged, "retention", retention)
		}
	}
}

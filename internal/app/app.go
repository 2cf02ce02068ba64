package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/haguru/userdirectory/config"
	"github.com/haguru/userdirectory/internal/interfaces"
	"github.com/haguru/userdirectory/internal/middleware"
	"github.com/haguru/userdirectory/internal/routes"
	"github.com/haguru/userdirectory/internal/server"
	"github.com/haguru/userdirectory/internal/userregistry/memory"
	"github.com/haguru/userdirectory/internal/userservice"
	"github.com/haguru/userdirectory/pkg/metrics"
	"github.com/haguru/userdirectory/pkg/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App represents the main application, containing server and configuration.
// The registry it builds lives exactly as long as the process.
type App struct {
	Server   interfaces.Server
	Config   *config.ServiceConfig
	Logger   interfaces.Logger
	Registry interfaces.UserRegistry
}

// NewApp reads the config file at configPath and builds the App from it.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := zerolog.NewZerologLogger(cfg.ServiceName)
	return New(cfg, logger)
}

// New validates cfg and wires logger, metrics, registry, service, routes and server.
func New(cfg *config.ServiceConfig, logger interfaces.Logger) (*App, error) {
	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	logger.SetLevel(cfg.LogLevel)
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	metricsInstance, err := app.initializeMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	app.Registry = memory.NewUserRegistry()
	userService := userservice.NewUserService(app.Registry, logger, metricsInstance)
	if cfg.SeedPlaceholder {
		userService.SeedPlaceholder(context.Background(), time.Now())
	}

	app.Server = server.NewServer(cfg.Host, cfg.Port, logger, middleware.RequestLogMiddleware(logger))

	metricsHandler := promhttp.HandlerFor(
		metricsInstance.GetRegistry(),
		promhttp.HandlerOpts{})

	tracedMetricsHandler := otelhttp.NewHandler(metricsHandler, routes.MetricsRouteAPI)

	err = app.Server.AddRoute(http.MethodGet, cfg.MetricsPath, tracedMetricsHandler)
	if err != nil {
		return nil, fmt.Errorf("failed to add metrics route: %w", err)
	}

	route := routes.NewRoute(metricsInstance, userService, logger)
	for _, endpoint := range route.Endpoints(cfg.BasePath) {
		traced := otelhttp.NewHandler(endpoint.Handler, endpoint.Operation)
		if err := app.Server.AddRoute(endpoint.Method, endpoint.Pattern, traced); err != nil {
			return nil, fmt.Errorf("failed to add %s route: %w", endpoint.Operation, err)
		}
	}

	return app, nil
}

func (app *App) Run() error {
	// start the server
	if err := app.Server.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (app *App) initializeMetrics() (interfaces.Metrics, error) {
	appMetrics := metrics.NewMetrics(app.Config.ServiceName)

	if err := appMetrics.RegisterCounterVec(
		routes.UserRequestsTotal,
		routes.UserRequestsTotalHelp,
		routes.RequestLabels); err != nil {
		return nil, err
	}

	if err := appMetrics.RegisterHistogramVec(
		routes.UserRequestDurationSeconds,
		routes.UserRequestDurationSecondsHelp,
		routes.RequestDurationSecondsBuckets,
		routes.DurationLabels); err != nil {
		return nil, err
	}

	if err := appMetrics.RegisterGauge(userservice.RegisteredUsers, userservice.RegisteredUsersHelp); err != nil {
		return nil, err
	}

	return appMetrics, nil
}

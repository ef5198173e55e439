// Command server runs the process service API. APP_PROFILE picks the config
// profile; the dependency graph is wired with samber/do.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/process-service/internal/adapters/http"
	"github.com/jsamuelsen11/process-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/process-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/process-service/internal/adapters/persistence/sqlstore"
	"github.com/jsamuelsen11/process-service/internal/app"
	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/platform/config"
	"github.com/jsamuelsen11/process-service/internal/platform/health"
	"github.com/jsamuelsen11/process-service/internal/platform/logging"
	"github.com/jsamuelsen11/process-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	logger.Info("configuration loaded",
		slog.String("profile", profile),
		slog.Any("server", cfg.Server),
		slog.Any("database", cfg.Database),
	)

	ctx := context.Background()
	providers, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(providers, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	registerDependencies(ctx, injector, cfg, logger)

	server, err := resolve(injector, logger)
	if err != nil {
		return err
	}
	defer shutdownInjector(injector, logger)

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*sqlstore.Store](injector))

	return serve(server, logger)
}

// resolve builds the server and with it the whole graph, the store
// included. If that fails, the services already built are shut down.
func resolve(injector *do.RootScope, logger *slog.Logger) (*adapthttp.Server, error) {
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		shutdownInjector(injector, logger)
		return nil, fmt.Errorf("resolving server: %w", err)
	}
	return server, nil
}

// shutdownInjector shuts down every service the injector has built,
// dependents before their dependencies.
func shutdownInjector(injector *do.RootScope, logger *slog.Logger) {
	if report := injector.Shutdown(); report != nil && !report.Succeed {
		logger.Error("dependency shutdown error", slog.String("error", report.Error()))
	}
}

// serve runs server until SIGINT or SIGTERM, then drains it within
// server.shutdown_timeout. The port is bound before anything goes to the
// background so a taken port fails startup.
func serve(server *adapthttp.Server, logger *slog.Logger) error {
	if err := server.Listen(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

func flushTelemetry(providers *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := providers.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*sqlstore.Store, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		store, err := sqlstore.Open(ctx, cfg.Database,
			sqlstore.WithMetrics(metrics),
			sqlstore.WithBreaker(cfg.Database.CircuitBreaker, logger),
		)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		logger.Info("database ready",
			slog.String("driver", cfg.Database.Driver),
			slog.Bool("auto_migrate", cfg.Database.AutoMigrate),
		)
		return store, nil
	})

	do.Provide(injector, func(i do.Injector) (app.Repositories, error) {
		store := do.MustInvoke[*sqlstore.Store](i)
		return app.Repositories{
			Processes:  sqlstore.NewProcessRepository(store),
			Executions: sqlstore.NewExecutionRepository(store),
			Audit:      sqlstore.NewAuditLogRepository(store),
			Roles:      sqlstore.NewRoleRepository(store),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProcessService, error) {
		repos := do.MustInvoke[app.Repositories](i)
		return app.NewProcessService(repos, domain.SystemClock, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ExecutionService, error) {
		repos := do.MustInvoke[app.Repositories](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewExecutionService(repos, domain.SystemClock, logger, app.WithExecutionMetrics(metrics)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuditService, error) {
		repos := do.MustInvoke[app.Repositories](i)
		return app.NewAuditService(repos.Audit, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RoleService, error) {
		repos := do.MustInvoke[app.Repositories](i)
		return app.NewRoleService(repos, domain.SystemClock, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProcessHandler, error) {
		svc := do.MustInvoke[ports.ProcessService](i)
		exec := do.MustInvoke[ports.ExecutionService](i)
		return handlers.NewProcessHandler(svc, exec), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ExecutionHandler, error) {
		svc := do.MustInvoke[ports.ExecutionService](i)
		return handlers.NewExecutionHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AuditHandler, error) {
		svc := do.MustInvoke[ports.AuditService](i)
		return handlers.NewAuditHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.RoleHandler, error) {
		svc := do.MustInvoke[ports.RoleService](i)
		return handlers.NewRoleHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		procH := do.MustInvoke[*handlers.ProcessHandler](i)
		execH := do.MustInvoke[*handlers.ExecutionHandler](i)
		auditH := do.MustInvoke[*handlers.AuditHandler](i)
		roleH := do.MustInvoke[*handlers.RoleHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(procH, execH, auditH, roleH, healthH,
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.Recovery(logger),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
			// Innermost, so the unit of work sees the deadline and the span.
			middleware.AppContext(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

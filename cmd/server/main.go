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

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/okian/swatch/internal/adapters/http/api"
	"github.com/okian/swatch/internal/adapters/http/swagger"
	service "github.com/okian/swatch/internal/app"
	"github.com/okian/swatch/internal/catalog"
	"github.com/okian/swatch/internal/config"
	"github.com/okian/swatch/pkg/logger"
	"github.com/okian/swatch/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout            = 30 * time.Second
	writeTimeout           = 30 * time.Second
	idleTimeout            = 60 * time.Second
	readHeaderTimeout      = 5 * time.Second
	shutdownTimeout        = 30 * time.Second
	systemMetricsInterval  = 10 * time.Second
	serviceMetricsInterval = 5 * time.Second
)

func main() {
	// Only the custom registry is exported.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := run(); err != nil {
		os.Stderr.WriteString("swatch-server: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if err := logger.InitWithOptions(logger.WithFormat(cfg.LogFormat)); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Get()

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	configureMetrics(cfg)

	svc, err := newService(ctx, cfg)
	if err != nil {
		return err
	}
	if err := startService(ctx, svc); err != nil {
		return err
	}
	defer svc.Stop()

	go metrics.RunSystemCollector(ctx, systemMetricsInterval)
	go runServiceStats(ctx, svc, serviceMetricsInterval)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(ctx, svc, cfg),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server",
			logger.String("addr", cfg.Addr),
			logger.Any("metricsLabels", cfg.MetricsLabels),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
	return nil
}

// configureMetrics rebuilds the process-wide collectors from cfg.
func configureMetrics(cfg *config.Config) {
	metrics.Configure(
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithSubsystem(cfg.MetricsSubsystem),
		metrics.WithHistogramBuckets(cfg.MetricsBuckets),
		metrics.WithConstLabels(cfg.MetricsLabels),
	)
}

// newService loads the configured reference table and builds the color service.
func newService(ctx context.Context, cfg *config.Config) (*service.Service, error) {
	table, err := catalog.Load(ctx, catalog.Source{
		Kind: cfg.TableSource,
		Path: cfg.TablePath,
		DSN:  cfg.TableDSN,
	})
	if err != nil {
		return nil, err
	}

	return service.New(
		service.WithTable(table, cfg.TableSource),
		service.WithCacheSize(cfg.CacheSize),
		service.WithMaxNearest(cfg.MaxNearest),
		service.WithWorkerCount(cfg.WorkerCount),
		service.WithQueueSize(cfg.QueueSize),
		service.WithMaxDimension(cfg.AnalysisMaxDimension),
		service.WithMaxImagePixels(cfg.MaxImagePixels),
		service.WithJobRetention(cfg.JobRetention),
		service.WithLogger(logger.Get().Named("service")),
	)
}

// startService starts the analysis pipeline detached from ctx's
// cancellation, so queued jobs are drained by Stop rather than dropped
// when the shutdown signal arrives.
func startService(ctx context.Context, svc *service.Service) error {
	if err := svc.Start(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("start service: %w", err)
	}
	return nil
}

// newHandler registers the docs and API routes on a fresh mux.
func newHandler(ctx context.Context, svc *service.Service, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	api.NewServer(svc, api.WithMaxUploadBytes(cfg.MaxUploadBytes)).Register(ctx, mux)
	return mux
}

// runServiceStats refreshes the service gauges until ctx is done.
func runServiceStats(ctx context.Context, svc *service.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st := svc.GetStats(ctx)
			metrics.UpdateWorkerActiveCount(st.WorkerCount)
			metrics.UpdateAnalysisJobsStored(st.JobsStored)
		}
	}
}

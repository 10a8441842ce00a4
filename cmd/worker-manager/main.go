// cmd/worker-manager/main.go
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"deal-advisor-workers/internal/api"
	"deal-advisor-workers/internal/common/camunda"
	"deal-advisor-workers/internal/common/clock"
	"deal-advisor-workers/internal/common/config"
	"deal-advisor-workers/internal/common/database"
	"deal-advisor-workers/internal/common/logger"
	"deal-advisor-workers/internal/common/observability"

	ra "deal-advisor-workers/internal/workers/access/remember-access"
	gt "deal-advisor-workers/internal/workers/advice/generate-tips"
	ad "deal-advisor-workers/internal/workers/analysis/analyze-deal"
	er "deal-advisor-workers/internal/workers/finance/estimate-rates"
	li "deal-advisor-workers/internal/workers/finance/list-incentives"
	bf "deal-advisor-workers/internal/workers/pricing/breakdown-fees"
	ep "deal-advisor-workers/internal/workers/pricing/estimate-price"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(ctx context.Context, operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zapLog.Sync() }()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
	)

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		zapLog.Warn("observability init failed, continuing without otel metrics", zap.Error(err))
	}
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Init Redis with retry ---
	redis, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		zapLog.Fatal("redis config invalid", zap.Error(err))
	}
	defer redis.Close()

	err = retryWithBackoff(ctx, func() error {
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	zapLog.Info("Redis connected successfully")

	// --- Build handlers ---
	sysClock := clock.System()

	epCfg := ep.ConfigFromApp(cfg)
	if err := epCfg.Validate(); err != nil {
		zapLog.Fatal("invalid estimate-price config", zap.Error(err))
	}
	estimator := ep.NewEstimator(epCfg, ep.WithClock(sysClock))

	priceHandler := ep.NewHandler(epCfg, estimator, log)
	feeHandler := bf.NewHandler(bf.ConfigFromApp(cfg), log)
	rateHandler := er.NewHandler(er.ConfigFromApp(cfg), log)
	incentiveHandler := li.NewHandler(li.ConfigFromApp(cfg), log)
	tipHandler := gt.NewHandler(gt.ConfigFromApp(cfg), sysClock, log)

	analyzer := ad.NewAnalyzer(ad.Dependencies{
		Pricing:    priceHandler,
		Fees:       feeHandler,
		Rates:      rateHandler,
		Incentives: incentiveHandler,
		Tips:       tipHandler,
	})
	analyzeHandler := ad.NewHandler(ad.ConfigFromApp(cfg), analyzer, sysClock, log)

	raCfg := ra.ConfigFromApp(cfg)
	if err := raCfg.Validate(); err != nil {
		zapLog.Fatal("invalid remember-access config", zap.Error(err))
	}
	accessStore := ra.NewStore(redis.Client, raCfg.KeyPrefix, raCfg.TTL)
	accessHandler := ra.NewHandler(raCfg, accessStore, log)

	checks := map[string]api.ReadinessCheck{
		"redis": redis.Ping,
	}

	// --- Zeebe workers ---
	var registry *camunda.Registry
	if cfg.Camunda.Enabled {
		zeebe, err := camunda.NewClientWithConfig(ctx, &camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      config.GetDuration(cfg.Camunda.RequestTimeout),
			RetryConfig: &camunda.RetryConfig{
				MaxRetries: cfg.Camunda.ConnectRetries,
				BaseDelay:  2 * time.Second,
				MaxDelay:   30 * time.Second,
			},
		})
		if err != nil {
			zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
		}
		defer zeebe.Close()
		zapLog.Info("Zeebe client connected successfully")
		checks["zeebe"] = zeebe.HealthCheck

		registry = camunda.NewRegistry(zeebe, obs, log)
		registry.Register(ep.TaskType, config.GetWorkerConfig(cfg, ep.TaskType), priceHandler.Handle)
		registry.Register(bf.TaskType, config.GetWorkerConfig(cfg, bf.TaskType), feeHandler.Handle)
		registry.Register(er.TaskType, config.GetWorkerConfig(cfg, er.TaskType), rateHandler.Handle)
		registry.Register(li.TaskType, config.GetWorkerConfig(cfg, li.TaskType), incentiveHandler.Handle)
		registry.Register(gt.TaskType, config.GetWorkerConfig(cfg, gt.TaskType), tipHandler.Handle)
		registry.Register(ad.TaskType, config.GetWorkerConfig(cfg, ad.TaskType), analyzeHandler.Handle)
		registry.Register(ra.TaskType, config.GetWorkerConfig(cfg, ra.TaskType), accessHandler.Handle)

		zapLog.Info("Workers registered", zap.Int("count", registry.Count()))
	} else {
		zapLog.Info("Camunda disabled, serving HTTP API only")
	}

	// --- HTTP API ---
	server := api.NewServer(api.Options{
		ServiceName:    cfg.App.Name,
		Version:        cfg.App.Version,
		Analyzer:       analyzer,
		Access:         accessStore,
		Clock:          sysClock,
		Checks:         checks,
		RequestTimeout: config.GetDuration(cfg.HTTP.RequestTimeout),
	}, log)

	httpServer := api.NewHTTPServer(
		cfg.HTTP.Address,
		server.Router(),
		config.GetDuration(cfg.HTTP.ReadTimeout),
		config.GetDuration(cfg.HTTP.WriteTimeout),
	)

	serverErr := make(chan error, 1)
	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.HTTP.Address))
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		zapLog.Info("Shutdown signal received, stopping workers...")
	case err := <-serverErr:
		zapLog.Error("HTTP server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.HTTP.ShutdownTimeout))
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Warn("HTTP server shutdown incomplete", zap.Error(err))
	}

	if registry != nil {
		registry.Close()
	}
	zapLog.Info("Worker manager stopped")
}

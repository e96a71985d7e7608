package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	adapthttp "bodyprogress/internal/adapter/http"
	"bodyprogress/internal/app"
	"bodyprogress/internal/config"
	"bodyprogress/internal/logging"
	"bodyprogress/internal/telemetry/metrics"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath, *env)
	if err != nil {
		log.Fatalf("config: %s", err)
	}

	logCloser := logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogFile,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
	})
	defer func() { _ = logCloser.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, storageCloser, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("storage: %s", err)
	}
	defer func() { _ = storageCloser.Close() }()

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("bodyprogress", "server", promRegistry)

	photos := app.NewPhotoDecoder(app.DefaultMaxPhotoBytes)
	store := app.NewStore(ctx, kv, app.StoreOptions{
		Unit:             cfg.WeightUnit,
		Photos:           photos,
		AllowEntryDelete: cfg.EntryDeleteEnabled,
		Metrics:          metricsManager,
	})
	for _, w := range store.LoadWarnings() {
		log.Warnf("startup: %s", w)
	}

	srv := adapthttp.New(
		store,
		app.NewChartsService(store, cfg.WeightUnit),
		app.NewQuoteService(),
		photos,
		adapthttp.UISettings{Theme: cfg.Theme, Unit: cfg.WeightUnit},
		cfg.WebDir,
	).WithMetrics(metricsManager, promRegistry)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("listening on %s (storage=%s)", cfg.Addr, cfg.Storage)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("http server: %s", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Warnln("shutting down ...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown: %s", err)
	}
	log.Warnln("server shut down")
}

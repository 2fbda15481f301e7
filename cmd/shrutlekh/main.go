// Command shrutlekh runs the speech-to-Krutidev transcription service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shrutlekh/shrutlekh/api"
	"github.com/shrutlekh/shrutlekh/component"
	"github.com/shrutlekh/shrutlekh/config"
	"github.com/shrutlekh/shrutlekh/logger"
	"github.com/shrutlekh/shrutlekh/observability"
	"github.com/shrutlekh/shrutlekh/server"
	"github.com/shrutlekh/shrutlekh/service"
	"github.com/shrutlekh/shrutlekh/storage/local"
	"github.com/shrutlekh/shrutlekh/version"
)

const gracefulTimeout = 15 * time.Second

func main() {
	configFile := flag.String("config", "", "path to config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetShortVersion())
		return
	}

	if err := run(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, "shrutlekh:", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg := &AppConfig{}
	var opts []config.LoaderOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if err := config.LoadConfig("shrutlekh", cfg, opts...); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	logger.Init(cfg.Logging)
	log := logger.GetGlobalLogger()
	log.Info("starting", logger.Fields(
		"service", cfg.Name,
		"version", version.GetShortVersion(),
		"environment", cfg.Environment,
	))

	ctx := context.Background()

	// Observability is optional; without it spans and metrics are no-ops.
	var metrics *observability.Metrics
	if cfg.Observability.Enabled {
		tp, err := observability.InitTracer(ctx, observability.TracerConfig{
			ServiceName:    cfg.Name,
			ServiceVersion: version.GetVersionInfo().Version,
			Environment:    cfg.Environment,
			Endpoint:       cfg.Observability.Endpoint,
			Insecure:       cfg.Observability.Insecure,
			SampleRate:     cfg.Observability.SampleRate,
		})
		if err != nil {
			return fmt.Errorf("init tracer: %w", err)
		}
		defer shutdownWithTimeout(tp.Shutdown, log, "tracer")

		mp, err := observability.InitMeter(ctx, observability.MeterConfig{
			ServiceName:    cfg.Name,
			ServiceVersion: version.GetVersionInfo().Version,
			Environment:    cfg.Environment,
			Endpoint:       cfg.Observability.Endpoint,
			Insecure:       cfg.Observability.Insecure,
			Interval:       cfg.Observability.Interval,
		})
		if err != nil {
			return fmt.Errorf("init meter: %w", err)
		}
		defer shutdownWithTimeout(mp.Shutdown, log, "meter")

		metrics, err = observability.NewMetrics(observability.Meter(cfg.Name))
		if err != nil {
			return fmt.Errorf("create metrics: %w", err)
		}
	}

	storageComp, err := local.NewComponent(cfg.Storage, log)
	if err != nil {
		return err
	}

	providers, err := buildProviderManager(cfg.Transcription)
	if err != nil {
		return err
	}
	log.Info("transcription providers ready", logger.Fields(
		"providers", providers.Initialized(),
		"default", cfg.Transcription.Default,
	))

	svc := service.NewTranscriptionService(storageComp.Storage(), providers, metrics, log)

	srv := server.New(cfg.Server, log)
	registry := component.NewRegistry()
	if err := registry.Register(storageComp); err != nil {
		return err
	}
	if err := registry.Register(server.NewComponent(srv)); err != nil {
		return err
	}

	srv.ApplyDefaults(cfg.Name, registry.HealthAll)
	api.NewHandler(svc, metrics, log).RegisterRoutes(srv.GinEngine())

	if err := registry.StartAll(ctx); err != nil {
		return fmt.Errorf("start components: %w", err)
	}

	log.Info("ready", logger.Fields("addr", srv.Addr()))

	waitForSignal(log)

	stopCtx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
	defer cancel()
	if err := registry.StopAll(stopCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("shutdown complete")
	return nil
}

func waitForSignal(log *logger.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("shutdown signal received", logger.Fields("signal", sig.String()))
}

func shutdownWithTimeout(fn func(context.Context) error, log *logger.Logger, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Warn("shutdown failed", logger.Fields("component", name, "error", err.Error()))
	}
}

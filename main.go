package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"inheritance-engine/internal/config"
	"inheritance-engine/internal/engine"
	"inheritance-engine/internal/handler"
	"inheritance-engine/internal/logging"
	"inheritance-engine/internal/operations"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config overlaying the defaults")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(logging.Config{
		Environment: logging.Environment(cfg.Log.Environment),
		Level:       cfg.Log.Level,
		Service:     cfg.Server.Name,
	})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	registry := operations.NewRegistry(operations.Options{DefaultRounding: cfg.Calculation.Rounding()})
	h := handler.New(engine.New(registry), logger, cfg.Server.Name)

	server := &fasthttp.Server{
		Handler:            h.Handle,
		Name:               cfg.Server.Name,
		ReadTimeout:        cfg.Server.ReadTimeout,
		WriteTimeout:       cfg.Server.WriteTimeout,
		MaxRequestBodySize: cfg.Server.MaxRequestBodySize,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Inheritance tax engine starting", zap.String("addr", cfg.Server.Addr()))
		errCh <- server.ListenAndServe(cfg.Server.Addr())
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	case sig := <-stop:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
		if err := server.Shutdown(); err != nil {
			logger.Error("Graceful shutdown failed", zap.Error(err))
		}
	}
}

// Package main provides the HTTP API server for the chef restaurant guide.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"chefguide/internal/config"
	"chefguide/internal/dataset"
	"chefguide/internal/logger"
	"chefguide/internal/server"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	datasetFile := flag.String("dataset", "", "Dataset file (overrides config)")
	watch := flag.Bool("watch", false, "Reload the dataset file when it changes")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	if *datasetFile != "" {
		cfg.Dataset.File = *datasetFile
	}

	if *watch {
		cfg.Dataset.Watch = true
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLoggerWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, log); err != nil {
		log.Error("❌ Server stopped", "error", err)
		os.Exit(1)
	}

	log.Info("👋 Server stopped")
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("🚀 Starting chef guide API", "config", cfg.String())

	store := dataset.NewStore(cfg.Dataset, log)

	dir, err := store.Reload(ctx)
	if err != nil {
		return fmt.Errorf("initial load: %w", err)
	}

	log.Info("📊 Directory ready",
		"chefs", dir.Stats.TotalChefs,
		"restaurants", dir.Stats.TotalRestaurants,
		"awarded", dir.Stats.AwardCount,
	)

	srv, err := server.New(cfg.Server, store, log)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gctx)
	})

	if cfg.Dataset.Watch {
		watcher := dataset.NewWatcher(cfg.Dataset.File, store, cfg.Features.StrictValidation, log)

		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	return g.Wait()
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/iconidentify/channelscope/internal/api"
	"github.com/iconidentify/channelscope/internal/api/handler"
	"github.com/iconidentify/channelscope/internal/config"
	"github.com/iconidentify/channelscope/internal/metrics"
	"github.com/iconidentify/channelscope/internal/service"
	"github.com/iconidentify/channelscope/pkg/youtube"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "Path to config file")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("channelscope %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting channelscope",
		"version", Version,
		"build_time", BuildTime,
	)

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Register metrics collectors
	metrics.MustRegister(prometheus.DefaultRegisterer)

	// Initialize dependencies
	ytClient := youtube.NewClient(cfg.YouTube)
	analyzer := service.NewAnalyzer(ytClient, cfg.Analysis, logger)

	// Initialize handlers
	channelHandler := handler.NewChannelHandler(analyzer, cfg.Analysis.MaxChannels, logger)
	healthHandler := handler.NewHealthHandler(Version)
	uiHandler := handler.NewUIHandler()

	// Setup router
	router := api.NewRouter(channelHandler, healthHandler, uiHandler)

	// Setup HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

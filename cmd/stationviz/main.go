package main

//	@title			StationViz API
//	@version		0.1.0
//	@description	Icon lookup service for substation single-line diagrams.
//	@BasePath		/api/v1

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/HerbHall/stationviz/api/swagger"
	"github.com/HerbHall/stationviz/internal/config"
	"github.com/HerbHall/stationviz/internal/iconapi"
	"github.com/HerbHall/stationviz/internal/server"
	"github.com/HerbHall/stationviz/internal/version"
	"github.com/HerbHall/stationviz/internal/ws"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Subcommand dispatch (before flag.Parse).
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "resolve":
			os.Exit(runResolve(os.Args[2:], os.Stdout, os.Stderr))
		case "manifest":
			os.Exit(runManifest(os.Args[2:], os.Stdout, os.Stderr))
		case "version":
			fmt.Println(version.Info())
			return
		}
	}

	configPath := flag.String("config", "", "path to configuration file")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Load configuration (before logger, so log level/format can be configured).
	viperCfg, err := server.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	settings, err := config.FromViper(viperCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(settings.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("StationViz server starting", zap.String("version", version.Short()))

	if f := viperCfg.ConfigFileUsed(); f != "" {
		logger.Info("configuration loaded",
			zap.String("component", "config"),
			zap.String("source", f),
		)
	} else {
		logger.Warn("no configuration file found, using defaults",
			zap.String("component", "config"),
		)
	}

	theme := settings.Icons.Theme()
	iconHandler := iconapi.NewHandler(theme, logger.Named("icons"))
	logger.Info("icon handler initialized",
		zap.String("component", "icons"),
		zap.String("prefix", theme.Prefix),
		zap.String("extension", theme.Extension),
	)

	wsHandler := ws.NewHandler(iconHandler, settings.Server.AllowedOrigins, logger.Named("ws"))
	prometheus.MustRegister(wsHandler.Collector())
	logger.Info("websocket handler initialized", zap.String("component", "ws"))

	addr := settings.Server.Addr()
	srv := server.New(server.Options{
		Addr:       addr,
		DevMode:    settings.Server.DevMode,
		RateLimit:  settings.RateLimit.RPS,
		RateBurst:  settings.RateLimit.Burst,
		Registrars: []server.RouteRegistrar{iconHandler, wsHandler},
	}, logger)

	// Start server in background
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("StationViz server ready", zap.String("addr", addr))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("StationViz server stopped")
}

package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"productapi/internal/config"
	"productapi/internal/productapi"
	"productapi/pkg/kit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	log := kit.NewLogger(productapi.ServiceName, cfg.Environment)
	defer func() { _ = log.Sync() }()

	s := &productapi.Server{
		Store: productapi.NewStore(),
		State: productapi.NewAppState(),
		Log:   log,
	}
	if cfg.SimulateLatency {
		s.ListDelay = productapi.RandomListDelay
	}

	reg := prometheus.NewRegistry()
	h := productapi.NewHandler(s, productapi.HTTPDeps{
		Log:          log,
		Service:      productapi.ServiceName,
		Registry:     reg,
		MetricsToken: cfg.MetricsToken,
	})

	log.Info("starting product api",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

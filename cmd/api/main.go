package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/webshoplabs/product-form-api/api/routes"
	"github.com/webshoplabs/product-form-api/internal/catalog"
	"github.com/webshoplabs/product-form-api/internal/form"
	"github.com/webshoplabs/product-form-api/internal/imagehost"
	"github.com/webshoplabs/product-form-api/pkg/config"
	"github.com/webshoplabs/product-form-api/pkg/logger"
	"github.com/webshoplabs/product-form-api/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "product-form-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "product-form-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	catalogClient, err := catalog.NewClient(cfg.Catalog, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog client", err)
		os.Exit(1)
	}

	uploadClient, err := imagehost.NewClient(cfg.Upload, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create image host client", err)
		os.Exit(1)
	}

	loader, err := form.NewLoader(catalogClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create form loader", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	formMetrics := metrics.NewFormMetrics(registry)

	formService, err := form.NewService(loader, catalogClient, uploadClient, formMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create form service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting product form server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, formService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "server stopped unexpectedly", err)
		os.Exit(1)
	}
}

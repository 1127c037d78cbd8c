package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	_ "github.com/tair/inventory-tracker/docs"
	"github.com/tair/inventory-tracker/internal/product"
	httpDelivery "github.com/tair/inventory-tracker/internal/product/delivery/http"
	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/auth"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/tracing"
)

// inventory serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := boot(os.Stdout)
		if err != nil {
			return err
		}
		defer closeDB(db)

		logger.Logger.Info().
			Str("service", cfg.ServiceName).
			Str("environment", cfg.Environment).
			Str("log_level", cfg.LogLevel).
			Msg("Starting inventory service")

		if cfg.TracingEnabled {
			tp, err := tracing.InitTracer(cfg.ServiceName, cfg.Environment, cfg.JaegerEndpoint)
			if err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
			} else {
				defer func() {
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := tracing.Shutdown(ctx, tp); err != nil {
						logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
					}
				}()
			}
		}

		auth.SetSecret(cfg.JWTSecret)

		var publisher domain.StockEventPublisher = kafka.NopPublisher{}
		if len(cfg.KafkaBrokers) > 0 {
			kp, err := kafka.NewPublisher(cfg.KafkaBrokers)
			if err != nil {
				// Stock events are best-effort; the API keeps working without Kafka
				logger.Logger.Error().Err(err).Strs("brokers", cfg.KafkaBrokers).Msg("Failed to create Kafka publisher")
			} else {
				defer kp.Close()
				publisher = kp
			}
		}

		handler, err := product.InitializeHTTPHandler(db, publisher, prometheus.DefaultRegisterer)
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}

		router := mux.NewRouter()
		mwConfig := httpDelivery.DefaultMiddlewareConfig(cfg.AllowedOrigins, cfg.RequestTimeout)
		httpDelivery.RegisterMiddlewares(router, mwConfig)

		handler.RegisterRoutes(router, httpDelivery.RouteConfig{
			WriteGuard:      httpDelivery.WriteGuard(cfg.AuthRequired),
			MaxUploadMemory: cfg.MaxUploadMemory,
		})
		handler.RegisterHealthCheck(router, sqlDB)
		httpDelivery.RegisterSwaggerDocs(router)

		// Prometheus metrics endpoint
		router.Handle("/metrics", promhttp.Handler())

		srv := &http.Server{
			Addr:              ":" + cfg.HTTPPort,
			Handler:           httpDelivery.SetupCORS(mwConfig)(router),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Logger.Info().
				Str("port", cfg.HTTPPort).
				Str("metrics_endpoint", "/metrics").
				Bool("auth_required", cfg.AuthRequired).
				Msg("HTTP server started")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		// Wait for interrupt signal
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		logger.Logger.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

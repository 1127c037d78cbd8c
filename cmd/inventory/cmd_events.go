package main

import (
	"context"
	"encoding/json"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/config"
	"github.com/tair/inventory-tracker/pkg/logger"
)

var (
	eventsGroup      string
	eventsFromOldest bool
)

// inventory events
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print stock change events from Kafka as JSON lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		logger.InitWithWriter(cfg.ServiceName, cfg.IsDevelopment(), cmd.ErrOrStderr())
		logger.SetLevel(cfg.LogLevel)

		if len(cfg.KafkaBrokers) == 0 {
			return errors.New("KAFKA_BROKERS is not set")
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, eventsGroup, eventsFromOldest,
			func(_ context.Context, event kafka.StockChangedEvent) error {
				return enc.Encode(event)
			})
		if err != nil {
			return err
		}
		defer consumer.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return consumer.Run(ctx)
	},
}

func init() {
	eventsCmd.Flags().StringVar(&eventsGroup, "group", "inventory-events-cli", "Kafka consumer group id")
	eventsCmd.Flags().BoolVar(&eventsFromOldest, "from-beginning", false, "start from the oldest retained event")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gartstein/employees/internal/config"
	"github.com/gartstein/employees/internal/events"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEventsCmd(configPath *string) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Tail the change event topic and log every event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if !cfg.EventsEnabled() {
				return errors.New("KAFKA_BROKERS must be set to tail events")
			}

			logger, err := initLogger(cfg.Level())
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			defer syncLogger(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return tailEvents(ctx, events.NewConsumer(cfg.KafkaBrokers, group, cfg.Topic, logger), logger)
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "employees-events-tail", "Kafka consumer group id")
	return cmd
}

func tailEvents(ctx context.Context, consumer *events.Consumer, logger *zap.Logger) error {
	defer consumer.Close()

	consumer.RegisterHandler(func(_ context.Context, event events.Event) error {
		logger.Info("Change event",
			zap.String("event_type", string(event.Type)),
			zap.String("entity_id", event.EntityID),
			zap.Any("company", event.Company),
			zap.Any("employee", event.Employee),
		)
		return nil
	})

	logger.Info("Tailing change events")
	return consumer.Run(ctx)
}

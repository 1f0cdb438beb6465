package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gartstein/employees/internal/config"
	"github.com/gartstein/employees/internal/controller"
	"github.com/gartstein/employees/internal/db"
	"github.com/gartstein/employees/internal/db/memory"
	"github.com/gartstein/employees/internal/db/mongodb"
	"github.com/gartstein/employees/internal/events"
	"github.com/gartstein/employees/internal/handlers"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const connectRetries = 5

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}
}

func runServe(cfg *config.Config) error {
	logger, err := initLogger(cfg.Level())
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer syncLogger(logger)

	ctx := context.Background()

	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.close()

	producer, closeProducer, err := openProducer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeProducer()

	companySvc := controller.NewCompanyService(store.companies, store.employees, producer, logger)
	employeeSvc := controller.NewEmployeeService(store.employees, producer, logger)

	server := handlers.NewServer(cfg.HTTPPort, logger)
	server.RegisterCompanyHandler(handlers.NewCompanyHandler(companySvc, logger))
	server.RegisterEmployeeHandler(handlers.NewEmployeeHandler(employeeSvc, logger))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	return waitForShutdown(server, errCh, logger)
}

// storage bundles the repositories of one backend with its cleanup.
type storage struct {
	companies controller.CompanyRepository
	employees controller.EmployeeRepository
	close     func()
}

func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*storage, error) {
	logger.Info("Opening storage", zap.String("backend", cfg.Storage))

	switch cfg.Storage {
	case config.StorageMemory:
		return &storage{
			companies: memory.NewCompanyRepository(),
			employees: memory.NewEmployeeRepository(),
			close:     func() {},
		}, nil

	case config.StoragePostgres, config.StorageSQLite:
		repo, err := withRetry(ctx, logger, "database", func() (*db.Repository, error) {
			return db.NewRepository(cfg.DBConfig())
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return &storage{
			companies: repo.Companies(),
			employees: repo.Employees(),
			close: func() {
				if err := repo.Close(); err != nil {
					logger.Error("failed to close database", zap.Error(err))
				}
			},
		}, nil

	case config.StorageMongo:
		repo, err := withRetry(ctx, logger, "mongodb", func() (*mongodb.Repository, error) {
			connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return mongodb.NewRepository(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongodb: %w", err)
		}
		return &storage{
			companies: repo.Companies(),
			employees: repo.Employees(),
			close: func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := repo.Close(closeCtx); err != nil {
					logger.Error("failed to close mongodb", zap.Error(err))
				}
			},
		}, nil
	}
	return nil, fmt.Errorf("unsupported storage %q", cfg.Storage)
}

// openProducer returns a Kafka producer, or a no-op one when no brokers are configured.
func openProducer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (controller.EventProducer, func(), error) {
	if !cfg.EventsEnabled() {
		logger.Info("No Kafka brokers configured, change events are disabled")
		return events.NopProducer{}, func() {}, nil
	}

	producer, err := withRetry(ctx, logger, "kafka", func() (*events.Producer, error) {
		return events.NewProducer(cfg.KafkaBrokers, logger, cfg.Topic)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}
	return producer, producer.Close, nil
}

// withRetry retries op with exponential backoff, logging each failed attempt.
func withRetry[T any](ctx context.Context, logger *zap.Logger, what string, op func() (T, error)) (T, error) {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), connectRetries),
		ctx,
	)
	return backoff.RetryNotifyWithData[T](op, policy, func(err error, next time.Duration) {
		logger.Warn("Connection attempt failed",
			zap.String("target", what),
			zap.Duration("retry_in", next),
			zap.Error(err),
		)
	})
}

// waitForShutdown blocks until an interrupt or SIGTERM is received, or the
// server fails, then shuts the server down.
func waitForShutdown(server *handlers.Server, errCh <-chan error, logger *zap.Logger) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case sig := <-stop:
		logger.Info("Received signal", zap.String("signal", sig.String()))
		server.Stop()
		return <-errCh
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed", zap.Error(err))
		}
		return err
	}
}

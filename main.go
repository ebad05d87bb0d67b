package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/money-tracker/api"
	"github.com/carson-networks/money-tracker/internal/amqp"
	"github.com/carson-networks/money-tracker/internal/config"
	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/live"
	"github.com/carson-networks/money-tracker/internal/logging"
	"github.com/carson-networks/money-tracker/internal/operator"
	"github.com/carson-networks/money-tracker/internal/operator/actions"
	"github.com/carson-networks/money-tracker/internal/service"
	"github.com/carson-networks/money-tracker/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("money-tracker starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := live.NewHub()
	refresher := live.NewRefresher(dbStorage.Reader, hub, logger)

	var changes *amqp.Client
	if envConfig.AMQPEnabled() {
		changes, err = amqp.NewClient(envConfig.AMQPURL, envConfig.AMQPExchange, processOrigin(), logger)
		if err != nil {
			logger.WithError(err).Fatal("amqp.NewClient")
			return
		}
		defer changes.Close()
	}

	onCommit := func(ctx context.Context, change actions.Change) {
		if err := refresher.Refresh(ctx); err != nil {
			logger.WithError(err).Error("Main.onCommit.refresh")
		}
		if changes == nil {
			return
		}
		msg := amqp.NewChangeMessage(change.Collection, change.Op, change.ID)
		if err := changes.PublishChange(ctx, msg); err != nil {
			logger.WithError(err).Warn("Main.onCommit.publish")
		}
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, onCommit, logger)
	delegator.Start()
	defer delegator.Stop()

	if err := refresher.Refresh(ctx); err != nil {
		logger.WithError(err).Fatal("Refresher.Refresh.initial")
		return
	}

	svc := service.NewService(dbStorage, hub, ledger.NewAggregator(envConfig.Location), delegator)
	if dark, err := svc.Preferences.DarkMode(ctx); err == nil {
		logger.WithField("darkMode", dark).Info("Preferences.theme")
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
			Hub:     hub,
		}
		return httpRest.Serve(gctx)
	})

	if changes != nil {
		g.Go(func() error {
			err := changes.ConsumeChanges(gctx, func(msg *amqp.ChangeMessage) error {
				return refresher.Refresh(gctx)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			// Losing the broker degrades to single-process mode.
			logger.WithError(err).Error("AMQP.ConsumeChanges")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("money-tracker stopped with error")
		return
	}
	logger.Info("money-tracker stopped")
}

func processOrigin() string {
	host, err := os.Hostname()
	if err != nil {
		host = "money-tracker"
	}
	return host + "-" + uuid.Must(uuid.NewV4()).String()
}

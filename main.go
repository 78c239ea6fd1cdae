package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/prefin/api"
	"github.com/carson-networks/prefin/internal/auth"
	"github.com/carson-networks/prefin/internal/config"
	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/logging"
	"github.com/carson-networks/prefin/internal/operator"
	"github.com/carson-networks/prefin/internal/service"
	"github.com/carson-networks/prefin/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("prefin starting")

	if envConfig.MigrateOnStart {
		pre, post, err := storage.Migrate(envConfig.PostgresURL())
		if err != nil {
			logger.WithError(err).Fatal("storage.Migrate")
			return
		}
		logger.WithFields(logrus.Fields{
			"preMigrationVersion":  pre,
			"postMigrationVersion": post,
		}).Info("Migration status")
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}

	tokens, err := auth.NewTokenCodec(envConfig.JWTSecret, auth.DefaultTokenTTL)
	if err != nil {
		logger.WithError(err).Fatal("auth.NewTokenCodec")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.Port,
		Service:  service.NewService(dbStorage.Reader()),
		Operator: delegator,
		Tokens:   tokens,
		Cookies: apiutil.CookieSettings{
			Secure: envConfig.CookieSecure,
			MaxAge: tokens.TTL(),
		},
		DB:          dbStorage,
		CORSOrigins: envConfig.CORSOrigins,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return httpRest.Serve(groupCtx)
	})

	err = group.Wait()
	// In-flight writes finish before the pool closes.
	delegator.Stop()
	if closeErr := dbStorage.Close(); closeErr != nil {
		logger.WithError(closeErr).Warn("storage.Close")
	}
	if err != nil {
		logger.WithError(err).Error("prefin stopped with error")
		os.Exit(1)
	}
	logger.Info("prefin stopped")
}

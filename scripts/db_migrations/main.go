package main

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/prefin/internal/config"
	"github.com/carson-networks/prefin/internal/storage"
)

func main() {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	preMigrationVersion, postMigrationVersion, err := storage.Migrate(env.PostgresURL())
	if err != nil {
		logrus.WithError(err).Fatal("storage.Migrate")
		return
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
}

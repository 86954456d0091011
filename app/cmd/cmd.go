// Package cmd holds what the admin commands share: connecting sys.R to the configured database.
package cmd

import (
	"github.com/ribgsilva/simple-notes/platform/database"
	"github.com/ribgsilva/simple-notes/platform/env"
	"github.com/ribgsilva/simple-notes/sys"
	"go.uber.org/zap"
)

// Connect reads the database configs and opens sys.R.Database. The returned func closes it.
func Connect(log *zap.SugaredLogger) (func(), error) {
	env.Load(log, ".env")
	sys.Configs.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", database.SQLite)
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "data/notes.db")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	sys.R.Log = log

	db, err := database.Open(sys.Configs.Database.Driver, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
	if err != nil {
		return nil, err
	}
	sys.R.Database = db

	return func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}, nil
}

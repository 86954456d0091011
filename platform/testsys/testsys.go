// Package testsys wires sys.R against throwaway resources for tests: a sqlite file under
// t.TempDir() with the notes schema applied and, optionally, an in memory redis.
package testsys

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ribgsilva/simple-notes/persistence/v1/schema"
	"github.com/ribgsilva/simple-notes/platform/cache"
	"github.com/ribgsilva/simple-notes/platform/database"
	"github.com/ribgsilva/simple-notes/sys"
	"go.uber.org/zap"
)

// Setup configures sys for a test and restores the previous resources on cleanup.
// The returned miniredis is nil when withCache is false.
func Setup(t testing.TB, withCache bool) *miniredis.Miniredis {
	t.Helper()

	prevR := sys.R
	prevConfigs := sys.Configs
	t.Cleanup(func() {
		sys.R = prevR
		sys.Configs = prevConfigs
	})

	sys.Configs.Database.Driver = database.SQLite
	sys.Configs.Database.ConnectionURL = filepath.Join(t.TempDir(), "notes.db")
	sys.Configs.Database.PingTimeout = 2 * time.Second
	sys.Configs.Database.OperationTimeout = 5 * time.Second
	sys.Configs.Cache.OperationTimeout = 2 * time.Second
	sys.Configs.Cache.CacheTTL = time.Hour

	sys.R.Log = zap.NewNop().Sugar()
	sys.R.Cache = nil

	db, err := database.Open(sys.Configs.Database.Driver, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
	if err != nil {
		t.Fatalf("open database: %s", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	sys.R.Database = db

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %s", err)
	}

	if !withCache {
		return nil
	}

	s := miniredis.RunT(t)
	sys.Configs.Cache.Enabled = true
	sys.Configs.Cache.ConnectionURL = s.Addr()
	rdb, err := cache.Open(s.Addr(), "", "", sys.Configs.Database.PingTimeout)
	if err != nil {
		t.Fatalf("open cache: %s", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })
	sys.R.Cache = rdb

	return s
}

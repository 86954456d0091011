// Package database opens the sql.DB used by the note store.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const (
	SQLite = "sqlite"
	MySQL  = "mysql"
)

// Open connects to the database with the given driver and checks it answers a ping within pingTimeout.
// For sqlite the connection url is a file path; its parent directory is created when missing.
func Open(driver, url string, pingTimeout time.Duration) (*sql.DB, error) {
	dsn := url
	switch driver {
	case SQLite:
		if dir := filepath.Dir(sqlitePath(url)); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data directory: %w", err)
			}
		}
		if !strings.Contains(dsn, "_pragma=") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "_pragma=busy_timeout(5000)"
		}
	case MySQL:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}

	// sqlite is single writer, one connection keeps access serialized
	if driver == SQLite {
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	return db, nil
}

func sqlitePath(url string) string {
	p := strings.TrimPrefix(url, "file:")
	if i := strings.Index(p, "?"); i >= 0 {
		p = p[:i]
	}
	return p
}

package schema

import (
	"fmt"

	"github.com/ribgsilva/simple-notes/platform/database"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
)`

const mysqlSchema = `CREATE TABLE IF NOT EXISTS notes (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at VARCHAR(32) NOT NULL,
    updated_at VARCHAR(32) NOT NULL
)`

const dropSchema = `DROP TABLE IF EXISTS notes`

func createStatement(driver string) (string, error) {
	switch driver {
	case database.SQLite, "":
		return sqliteSchema, nil
	case database.MySQL:
		return mysqlSchema, nil
	default:
		return "", fmt.Errorf("no schema for driver %q", driver)
	}
}

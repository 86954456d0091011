package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "notes.db")

	db, err := Open(SQLite, path, time.Second)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("CREATE TABLE t (id INTEGER)")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("postgres", "whatever", time.Second)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestSQLitePath(t *testing.T) {
	assert.Equal(t, "data/notes.db", sqlitePath("file:data/notes.db?cache=shared"))
	assert.Equal(t, "notes.db", sqlitePath("notes.db"))
}

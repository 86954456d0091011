package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTES_TEST_PORT", "9090")
	t.Setenv("NOTES_TEST_TIMEOUT", "3s")
	t.Setenv("NOTES_TEST_ENABLED", "t")
	t.Setenv("NOTES_TEST_WORKERS", "4")
	t.Setenv("NOTES_TEST_RATE", "2.5")

	assert.Equal(t, "9090", OrDefault(log, "NOTES_TEST_PORT", "8080"))
	assert.Equal(t, "8080", OrDefault(log, "NOTES_TEST_MISSING", "8080"))
	assert.Equal(t, 3*time.Second, DurationDefault(log, "NOTES_TEST_TIMEOUT", "1s"))
	assert.Equal(t, time.Second, DurationDefault(log, "NOTES_TEST_MISSING", "1s"))
	assert.True(t, BoolDefault(log, "NOTES_TEST_ENABLED", "f"))
	assert.False(t, BoolDefault(log, "NOTES_TEST_MISSING", "f"))
	assert.Equal(t, 4, IntDefault(log, "NOTES_TEST_WORKERS", "1"))
	assert.Equal(t, 2.5, FloatDefault(log, "NOTES_TEST_RATE", "0"))
	assert.Equal(t, "9090", Must(log, "NOTES_TEST_PORT"))
}

func TestInvalidValuesFallBackToDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTES_TEST_TIMEOUT", "5")
	t.Setenv("NOTES_TEST_ENABLED", "maybe")
	t.Setenv("NOTES_TEST_WORKERS", "four")
	t.Setenv("NOTES_TEST_RATE", "fast")

	assert.Equal(t, 5*time.Second, DurationDefault(log, "NOTES_TEST_TIMEOUT", "5s"))
	assert.True(t, BoolDefault(log, "NOTES_TEST_ENABLED", "t"))
	assert.Equal(t, 1, IntDefault(log, "NOTES_TEST_WORKERS", "1"))
	assert.Equal(t, 0.5, FloatDefault(log, "NOTES_TEST_RATE", "0.5"))
}

func TestLoad(t *testing.T) {
	log := zap.NewNop().Sugar()

	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("NOTES_TEST_FROM_FILE=loaded\nNOTES_TEST_PRESET=file\n"), 0o600))

	t.Setenv("NOTES_TEST_PRESET", "env")
	t.Cleanup(func() { _ = os.Unsetenv("NOTES_TEST_FROM_FILE") })

	Load(log, filepath.Join(dir, "missing.env"), file)

	assert.Equal(t, "loaded", os.Getenv("NOTES_TEST_FROM_FILE"))
	assert.Equal(t, "env", os.Getenv("NOTES_TEST_PRESET"))
}

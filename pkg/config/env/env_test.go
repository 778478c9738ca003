package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BOOLTABLE_TEST_KEY=from-file\n"), 0o644))
	t.Setenv("ENV_PATH", path)
	t.Setenv("BOOLTABLE_TEST_KEY", "")
	require.NoError(t, os.Unsetenv("BOOLTABLE_TEST_KEY"))

	require.NoError(t, LoadDotEnv("local", "unused"))
	assert.Equal(t, "from-file", os.Getenv("BOOLTABLE_TEST_KEY"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	missing := filepath.Join(t.TempDir(), "missing.env")

	assert.NoError(t, LoadDotEnv("production", missing))
	assert.Error(t, LoadDotEnv("local", missing))
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		value    string
		expected slog.Level
	}{
		{value: "debug", expected: slog.LevelDebug},
		{value: " WARN ", expected: slog.LevelWarn},
		{value: "error", expected: slog.LevelError},
		{value: "", expected: slog.LevelInfo},
		{value: "loud", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.value)
			assert.Equal(t, tt.expected, LogLevel(slog.LevelInfo))
		})
	}
}

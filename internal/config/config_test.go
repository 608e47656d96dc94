package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test.
// Equivalent of t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestConfigureLogging(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingInvalidLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("LOG_FORMAT", "")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CAMT_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("CAMT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CAMT_TEST_KEY_MISSING", "fallback"))
}

func TestInitializeConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, ",", cfg.Output.CSVDelimiter)
	assert.True(t, cfg.Parser.StrictValidation)
}

func TestInitializeConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := "output:\n  format: csv\n  csv_delimiter: \";\"\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, ";", cfg.Output.CSVDelimiter)
	assert.Equal(t, "warn", cfg.Log.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CAMT_OUTPUT_FORMAT", "yaml")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreAppConfig(t *testing.T) {
	t.Helper()
	previous := AppConfig
	t.Cleanup(func() { AppConfig = previous })
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_File(t *testing.T) {
	restoreAppConfig(t)
	path := writeConfig(t, `
generator:
  rows: 250
  seed: 7
  legacy_sampling: true
  epoch: "2023-06-01"
output:
  path: "/tmp/flights.csv"
database:
  enabled: true
  host: "db"
  port: "3307"
  user: "qa"
  dbname: "flights"
log:
  level: "debug"
  format: "json"
`)

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, 250, AppConfig.Generator.Rows)
	assert.Equal(t, int64(7), AppConfig.Generator.Seed)
	assert.True(t, AppConfig.Generator.LegacySampling)
	assert.True(t, AppConfig.Generator.Epoch.Equal(time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "/tmp/flights.csv", AppConfig.Output.Path)
	assert.True(t, AppConfig.Database.Enabled)
	assert.Equal(t, "3307", AppConfig.Database.Port)
	assert.Equal(t, "json", AppConfig.Log.Format)
	// untouched sections keep their defaults
	assert.Equal(t, "8080", AppConfig.Server.Port)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	restoreAppConfig(t)
	path := writeConfig(t, "generator:\n  rows: 250\n  seed: 7\n")

	t.Setenv("FLIGHTQA_ROWS", "5000")
	t.Setenv("FLIGHTQA_SEED", "-3")
	t.Setenv("FLIGHTQA_OUTPUT", "/data/out.csv")
	t.Setenv("FLIGHTQA_DB_ENABLED", "true")
	t.Setenv("FLIGHTQA_DB_PASSWORD", "s3cret")

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, 5000, AppConfig.Generator.Rows)
	assert.Equal(t, int64(-3), AppConfig.Generator.Seed)
	assert.Equal(t, "/data/out.csv", AppConfig.Output.Path)
	assert.True(t, AppConfig.Database.Enabled)
	assert.Equal(t, "s3cret", AppConfig.Database.Password)
}

func TestLoadConfig_Errors(t *testing.T) {
	restoreAppConfig(t)

	assert.Error(t, LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, LoadConfig(writeConfig(t, "generator: [not, a, map]\n")))
	assert.Error(t, LoadConfig(writeConfig(t, "generator:\n  epoch: \"01/06/2023\"\n")))

	path := writeConfig(t, "generator:\n  rows: 10\n")
	t.Setenv("FLIGHTQA_ROWS", "many")
	assert.Error(t, LoadConfig(path))
}

func TestLoadConfig_SearchesStandardLocations(t *testing.T) {
	restoreAppConfig(t)
	// config.yaml sits next to this test, which is the working directory under go test.
	require.NoError(t, LoadConfig(""))

	assert.Equal(t, 1000, AppConfig.Generator.Rows)
	assert.Equal(t, int64(42), AppConfig.Generator.Seed)
	assert.Equal(t, "working_files/flight_data_sample.csv", AppConfig.Output.Path)
	assert.False(t, AppConfig.Database.Enabled)
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, 1000, d.Generator.Rows)
	assert.Equal(t, int64(42), d.Generator.Seed)
	assert.Equal(t, "info", d.Log.Level)
}

// config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. FLIGHTQA_ROWS.
const EnvPrefix = "FLIGHTQA_"

type GeneratorConfig struct {
	Rows           int       `yaml:"rows"`
	Seed           int64     `yaml:"seed"`
	LegacySampling bool      `yaml:"legacy_sampling"`
	EpochStr       string    `yaml:"epoch"` // YYYY-MM-DD, first day of the flight_date window
	Epoch          time.Time `yaml:"-"`     // Parsed epoch
}

type OutputConfig struct {
	Path string `yaml:"path"`
}

type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Output    OutputConfig    `yaml:"output"`
	Database  DatabaseConfig  `yaml:"database"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

var AppConfig = Defaults()

// Defaults returns the configuration used when no file or environment override is present.
func Defaults() Config {
	return Config{
		Generator: GeneratorConfig{
			Rows:     1000,
			Seed:     42,
			EpochStr: "2024-01-01",
			Epoch:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		Output: OutputConfig{
			Path: "working_files/flight_data_sample.csv",
		},
		Database: DatabaseConfig{
			Host:   "127.0.0.1",
			Port:   "3306",
			DBName: "flightqa",
		},
		Server: ServerConfig{
			Port: "8080",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads configuration from a YAML file, a .env file and FLIGHTQA_* environment variables,
// in increasing order of precedence. An empty configPath searches the standard locations and
// falls back to Defaults when none exist.
func LoadConfig(configPath string) error {
	// .env is optional; a missing file is not an error
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Defaults()

	if configPath == "" {
		potentialPaths := []string{
			"config.yaml",        // If running from config/
			"config/config.yaml", // If running from the repository root
		}
		for _, p := range potentialPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
		slog.Debug("loaded configuration file", "component", "config", "path", configPath)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return err
	}

	if cfg.Generator.EpochStr != "" {
		epoch, err := time.Parse("2006-01-02", cfg.Generator.EpochStr)
		if err != nil {
			return fmt.Errorf("failed to parse generator epoch: %w", err)
		}
		cfg.Generator.Epoch = epoch
	} else {
		cfg.Generator.Epoch = Defaults().Generator.Epoch
	}

	AppConfig = cfg
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	stringVars := map[string]*string{
		"OUTPUT":      &cfg.Output.Path,
		"EPOCH":       &cfg.Generator.EpochStr,
		"DB_HOST":     &cfg.Database.Host,
		"DB_PORT":     &cfg.Database.Port,
		"DB_USER":     &cfg.Database.User,
		"DB_PASSWORD": &cfg.Database.Password,
		"DB_NAME":     &cfg.Database.DBName,
		"SERVER_PORT": &cfg.Server.Port,
		"LOG_LEVEL":   &cfg.Log.Level,
		"LOG_FORMAT":  &cfg.Log.Format,
	}
	for key, dst := range stringVars {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "ROWS"); ok {
		rows, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("failed to parse %sROWS: %w", EnvPrefix, err)
		}
		cfg.Generator.Rows = rows
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %sSEED: %w", EnvPrefix, err)
		}
		cfg.Generator.Seed = seed
	}
	bools := map[string]*bool{
		"LEGACY_SAMPLING": &cfg.Generator.LegacySampling,
		"DB_ENABLED":      &cfg.Database.Enabled,
	}
	for key, dst := range bools {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("failed to parse %s%s: %w", EnvPrefix, key, err)
			}
			*dst = b
		}
	}
	return nil
}

// Package config loads the configuration for the journal example
// application from defaults, an optional TOML file, environment variables,
// and command line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel = "warn"

	envPrefix = "JOURNAL"
	// Environment variable pointing at an explicit config file.
	envConfig = "JOURNAL_CONFIG"
)

// Config holds the settings for the journal application.
type Config struct {
	// Database is the path to the SQLite database file.
	Database string

	// Limit is the maximum number of entries shown by the list subcommand.
	Limit int

	// LogLevel is the minimum level of log messages to emit.
	LogLevel string `mapstructure:"log_level"`
}

// Load parses the given command line arguments and merges them with the
// config file and environment. The returned flag set's remaining arguments
// select the subcommand.
func Load(args []string) (*Config, *pflag.FlagSet, error) {
	v := viper.New()

	v.SetDefault("database", defaultDatabasePath())
	v.SetDefault("limit", 10)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	flags := pflag.NewFlagSet("journal", pflag.ContinueOnError)
	flags.String("database", v.GetString("database"), "Path to the journal database")
	flags.Int("limit", v.GetInt("limit"), "Maximum number of entries to list")
	flags.String("log-level", v.GetString("log_level"), "Minimum log level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if path := os.Getenv(envConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")

		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Flags the user actually set win over the file and environment.
	flags.Visit(func(f *pflag.Flag) {
		key := f.Name
		if key == "log-level" {
			key = "log_level"
		}

		v.Set(key, f.Value.String())
	})

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, nil, err
	}

	return config, flags, nil
}

// Validate checks the configuration for values that cannot be used.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}

	if c.Database == "" {
		return fmt.Errorf("the database path must not be empty")
	}

	if c.Limit < 1 {
		return fmt.Errorf("invalid limit: %d", c.Limit)
	}

	return nil
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "journal.db"
	}

	return filepath.Join(home, ".journal", "journal.db")
}

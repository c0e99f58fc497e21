package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/albumlist/internal/icons"
)

const (
	appName    = "albumlist"
	dbFileName = "albums.db"
)

// Environment variables, applied after config files.
const (
	EnvDatabase = "ALBUMLIST_DB"
	EnvIcons    = "ALBUMLIST_ICONS"
	EnvColor    = "ALBUMLIST_COLOR"
	EnvLogFile  = "ALBUMLIST_LOG_FILE"
	EnvLogLevel = "ALBUMLIST_LOG_LEVEL"
)

type Config struct {
	Database string    `koanf:"database"` // path to the SQLite file
	Icons    string    `koanf:"icons"`    // "nerd", "unicode", or "none"
	Color    string    `koanf:"color"`    // "auto", "always", or "never"
	Log      LogConfig `koanf:"log"`
}

// LogConfig holds the diagnostic log settings. Logging is off without a file.
type LogConfig struct {
	File       string `koanf:"file"`
	Level      string `koanf:"level"`        // debug, info, warn, error (default: info)
	MaxSizeMB  int    `koanf:"max_size_mb"`  // rotate after this size (default: 5)
	MaxBackups int    `koanf:"max_backups"`  // rotated files kept (default: 3)
	MaxAgeDays int    `koanf:"max_age_days"` // rotated files age limit (default: 30)
	Compress   bool   `koanf:"compress"`     // gzip rotated files
}

// Options carries command-line overrides.
type Options struct {
	File     string // extra config file, loaded last; must exist
	Database string // wins over every other source
}

// Load reads config files, then .env and the environment, then opts.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	if opts.File != "" {
		path := expandPath(opts.File)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg := &Config{
		Icons: string(icons.StyleUnicode),
		Color: "auto",
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// .env never overrides variables already set in the environment.
	_ = godotenv.Load()
	applyEnv(cfg)
	if opts.Database != "" {
		cfg.Database = opts.Database
	}

	if cfg.Database == "" {
		path, err := defaultDatabasePath()
		if err != nil {
			return nil, err
		}
		cfg.Database = path
	}
	cfg.Database = expandPath(cfg.Database)
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Database = getEnv(EnvDatabase, cfg.Database)
	cfg.Icons = getEnv(EnvIcons, cfg.Icons)
	cfg.Color = getEnv(EnvColor, cfg.Color)
	cfg.Log.File = getEnv(EnvLogFile, cfg.Log.File)
	cfg.Log.Level = getEnv(EnvLogLevel, cfg.Log.Level)
}

func (c *Config) validate() error {
	if !icons.Valid(c.Icons) {
		return fmt.Errorf("icons: unknown style %q", c.Icons)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color: unknown mode %q", c.Color)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func defaultDatabasePath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/albumlist/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

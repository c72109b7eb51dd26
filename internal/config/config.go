// Package config resolves hostgen settings from flags, HOSTGEN_* environment
// variables, .env files and an optional .hostgen.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by hostgen.
const EnvPrefix = "HOSTGEN"

// Configuration keys.
const (
	KeyData      = "data"
	KeyBackend   = "backend"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyNoColor   = "no_color"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Default store files per backend.
const (
	DefaultJSONPath   = "base.json"
	DefaultSQLitePath = "base.db"
)

// Config holds the resolved settings for one run.
type Config struct {
	DataPath   string
	Backend    string
	LogLevel   string
	LogFormat  string
	NoColor    bool
	ConfigFile string // config file actually read, empty if none
}

// New returns a viper instance with hostgen defaults and environment binding.
// Callers may bind command flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyBackend, BackendJSON)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "auto")
	v.SetDefault(KeyNoColor, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves configuration in order of precedence:
// 1. Command-line flags bound to v
// 2. HOSTGEN_* environment variables
// 3. .env and .env.local in the working directory
// 4. configFile, or .hostgen.yaml in the working directory or home
// 5. Defaults
func Load(v *viper.Viper, configFile string) (*Config, error) {
	loadEnvFiles()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(".hostgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	backend, err := ParseBackend(v.GetString(KeyBackend))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataPath:   v.GetString(KeyData),
		Backend:    backend,
		LogLevel:   v.GetString(KeyLogLevel),
		LogFormat:  v.GetString(KeyLogFormat),
		NoColor:    v.GetBool(KeyNoColor),
		ConfigFile: v.ConfigFileUsed(),
	}
	if cfg.DataPath == "" {
		cfg.DataPath = DefaultPath(backend)
	}

	return cfg, nil
}

// ParseBackend validates a backend name. Empty means json.
func ParseBackend(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", BackendJSON:
		return BackendJSON, nil
	case BackendSQLite, "sqlite3":
		return BackendSQLite, nil
	}
	return "", fmt.Errorf("unknown backend %q (want %s or %s)", s, BackendJSON, BackendSQLite)
}

// DefaultPath returns the store file used by a backend when none is configured.
func DefaultPath(backend string) string {
	if backend == BackendSQLite {
		return DefaultSQLitePath
	}
	return DefaultJSONPath
}

// loadEnvFiles loads .env files; .env.local does not override .env since
// godotenv never replaces variables that are already set.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

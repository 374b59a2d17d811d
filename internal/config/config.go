// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Settings SettingsConfig `toml:"settings"`
	TMDB     TMDBConfig     `toml:"tmdb"`
	Radarr   *ArrConfig     `toml:"radarr"`
	Sonarr   *ArrConfig     `toml:"sonarr"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// SettingsConfig configures the settings store. Secret is the key
// material for credential encryption at rest.
type SettingsConfig struct {
	Secret string `toml:"secret"`
}

type TMDBConfig struct {
	APIKey string `toml:"api_key"`
}

// ArrConfig configures one automation service (Radarr or Sonarr).
// RootFolder is optional; empty means the service's first configured
// folder is used.
type ArrConfig struct {
	URL        string `toml:"url"`
	APIKey     string `toml:"api_key"`
	RootFolder string `toml:"root_folder"`
}

// Load reads and parses the configuration file. Missing environment
// variables and validation failures are aggregated into one
// ConfigError so the operator sees everything at once.
func Load(path string) (*Config, error) {
	cfg, missing, err := parse(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation parses the file and applies defaults but skips
// validation; used by tooling that inspects or rewrites configs.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := parse(path)
	return cfg, err
}

func parse(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8585
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/scoutarr.db"
	}
	return &cfg, missing, nil
}

// envVarPattern matches ${VAR}, ${VAR:-default}, and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)((:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces ${VAR_NAME} references with environment
// variable values. ${VAR:-default} falls back to the default when the
// variable is unset or empty; ${VAR:?message} reports the message as a
// missing-variable error. Plain ${VAR} references that don't resolve
// are left unchanged and reported in the missing list. Comment lines
// are passed through untouched so commented-out examples don't trip
// the missing-variable check.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(line, func(match string) string {
			groups := envVarPattern.FindStringSubmatch(match)
			name, op, arg := groups[1], groups[3], groups[4]
			value := os.Getenv(name)

			switch op {
			case ":-":
				if value == "" {
					return arg
				}
				return value
			case ":?":
				if value == "" {
					missing = append(missing, name+": "+arg)
					return match
				}
				return value
			default:
				if _, ok := os.LookupEnv(name); !ok {
					missing = append(missing, name)
					return match
				}
				return value
			}
		})
	}
	return strings.Join(lines, "\n"), missing
}

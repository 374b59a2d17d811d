// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Automation service validation
	errs = append(errs, validateArr("radarr", c.Radarr)...)
	errs = append(errs, validateArr("sonarr", c.Sonarr)...)

	return errs
}

func validateArr(name string, cfg *ArrConfig) []string {
	if cfg == nil {
		return nil
	}

	var errs []string
	if cfg.URL == "" {
		errs = append(errs, fmt.Sprintf("%s.url: required when %s is configured", name, name))
	} else if u, err := url.Parse(cfg.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("%s.url: %q is not a valid URL", name, cfg.URL))
	}
	if cfg.APIKey == "" {
		errs = append(errs, fmt.Sprintf("%s.api_key: required when %s is configured", name, name))
	}
	return errs
}

// Package clients builds external service clients per request.
// Connection details come from the settings store when present, then
// fall back to the config file, so runtime changes through the
// settings API take effect without a restart.
package clients

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vmunix/scoutarr/internal/config"
	"github.com/vmunix/scoutarr/internal/settings"
	"github.com/vmunix/scoutarr/internal/tmdb"
	"github.com/vmunix/scoutarr/pkg/radarr"
	"github.com/vmunix/scoutarr/pkg/sonarr"
)

// ErrNotConfigured indicates a service has no connection details in
// either the settings store or the config file.
var ErrNotConfigured = errors.New("service not configured")

// Factory resolves connection details and constructs clients.
type Factory struct {
	cfg   *config.Config
	store *settings.Store
	log   *slog.Logger
}

// NewFactory creates a client factory.
func NewFactory(cfg *config.Config, store *settings.Store, log *slog.Logger) *Factory {
	if log == nil {
		log = slog.Default()
	}
	return &Factory{cfg: cfg, store: store, log: log}
}

// value reads a setting, treating a missing key as empty.
func (f *Factory) value(key string) (string, error) {
	v, err := f.store.Value(key)
	if errors.Is(err, settings.ErrNotFound) {
		return "", nil
	}
	return v, err
}

// TMDB builds a metadata client.
func (f *Factory) TMDB() (*tmdb.Client, error) {
	apiKey, err := f.value(settings.KeyTMDBAPIKey)
	if err != nil {
		return nil, err
	}
	if apiKey == "" {
		apiKey = f.cfg.TMDB.APIKey
	}
	if apiKey == "" {
		return nil, fmt.Errorf("tmdb: %w", ErrNotConfigured)
	}
	return tmdb.New(apiKey), nil
}

// Radarr builds a movie service client.
func (f *Factory) Radarr() (*radarr.Client, error) {
	url, apiKey, err := f.resolve(settings.KeyRadarrURL, settings.KeyRadarrAPIKey, f.cfg.Radarr)
	if err != nil {
		return nil, err
	}
	if url == "" || apiKey == "" {
		return nil, fmt.Errorf("radarr: %w", ErrNotConfigured)
	}
	return radarr.New(url, apiKey, radarr.WithLogger(f.log)), nil
}

// Sonarr builds a show service client.
func (f *Factory) Sonarr() (*sonarr.Client, error) {
	url, apiKey, err := f.resolve(settings.KeySonarrURL, settings.KeySonarrAPIKey, f.cfg.Sonarr)
	if err != nil {
		return nil, err
	}
	if url == "" || apiKey == "" {
		return nil, fmt.Errorf("sonarr: %w", ErrNotConfigured)
	}
	return sonarr.New(url, apiKey, sonarr.WithLogger(f.log)), nil
}

// RadarrRootFolder returns the configured movie root folder, empty if
// the service should pick its first configured folder.
func (f *Factory) RadarrRootFolder() string {
	if v, err := f.value(settings.KeyRadarrRootFolder); err == nil && v != "" {
		return v
	}
	if f.cfg.Radarr != nil {
		return f.cfg.Radarr.RootFolder
	}
	return ""
}

// SonarrRootFolder returns the configured show root folder.
func (f *Factory) SonarrRootFolder() string {
	if v, err := f.value(settings.KeySonarrRootFolder); err == nil && v != "" {
		return v
	}
	if f.cfg.Sonarr != nil {
		return f.cfg.Sonarr.RootFolder
	}
	return ""
}

func (f *Factory) resolve(urlKey, apiKeyKey string, fallback *config.ArrConfig) (string, string, error) {
	url, err := f.value(urlKey)
	if err != nil {
		return "", "", err
	}
	apiKey, err := f.value(apiKeyKey)
	if err != nil {
		return "", "", err
	}
	if fallback != nil {
		if url == "" {
			url = fallback.URL
		}
		if apiKey == "" {
			apiKey = fallback.APIKey
		}
	}
	return url, apiKey, nil
}

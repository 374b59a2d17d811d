package sonarr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/vmunix/scoutarr/pkg/arr"
)

const service = "sonarr"

// Client is a Sonarr v3 API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", service)
	}
}

// New creates a new Sonarr client for the given base URL and API key.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	op := method + " " + endpoint

	u := c.baseURL + "/api/v3" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s body: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("create request %s: %w", op, err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &arr.RequestError{Service: service, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &arr.RequestError{Service: service, Op: op, Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", op, err)
		}
	}
	return nil
}

// GetSeriesByTVDBID returns the library entry for a TVDB cross-reference
// ID, or nil if the series is not in the library.
func (c *Client) GetSeriesByTVDBID(ctx context.Context, tvdbID int64) (*Series, error) {
	var series []Series
	query := url.Values{"tvdbId": {fmt.Sprint(tvdbID)}}
	if err := c.do(ctx, http.MethodGet, "/series", query, nil, &series); err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, nil
	}
	return &series[0], nil
}

// Lookup resolves a TMDB ID into a series candidate. Sonarr bridges the
// TMDB ID to its native TVDB ID; the returned candidate carries the
// tvdbId needed for library lookups. Returns nil if nothing resolves.
func (c *Client) Lookup(ctx context.Context, tmdbID int64) (*Series, error) {
	var results []Series
	query := url.Values{"term": {fmt.Sprintf("tmdb:%d", tmdbID)}}
	if err := c.do(ctx, http.MethodGet, "/series/lookup", query, nil, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// QualityProfiles returns the configured quality profiles. An empty
// list is a configuration error, never silently defaulted.
func (c *Client) QualityProfiles(ctx context.Context) ([]arr.QualityProfile, error) {
	var profiles []arr.QualityProfile
	if err := c.do(ctx, http.MethodGet, "/qualityprofile", nil, nil, &profiles); err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, &arr.ConfigError{Service: service, Resource: "quality profiles"}
	}
	return profiles, nil
}

// RootFolders returns the configured root folders. An empty list is a
// configuration error.
func (c *Client) RootFolders(ctx context.Context) ([]arr.RootFolder, error) {
	var folders []arr.RootFolder
	if err := c.do(ctx, http.MethodGet, "/rootfolder", nil, nil, &folders); err != nil {
		return nil, err
	}
	if len(folders) == 0 {
		return nil, &arr.ConfigError{Service: service, Resource: "root folders"}
	}
	return folders, nil
}

// Add adds a series to Sonarr with monitoring, season folders, and an
// immediate search for missing episodes. req.Seasons, when non-nil,
// selects exactly which seasons to monitor (see ApplySeasonSelection).
// Returns arr.ErrAlreadyExists if the series is in the library and
// arr.ErrNotFound if Sonarr cannot resolve the TMDB ID.
func (c *Client) Add(ctx context.Context, tmdbID int64, req AddRequest) (*Series, error) {
	start := time.Now()

	series, err := c.Lookup(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	if series != nil && series.TVDBID != 0 {
		existing, err := c.GetSeriesByTVDBID(ctx, series.TVDBID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%s (%s): %w", existing.Title, service, arr.ErrAlreadyExists)
		}
	}
	if series == nil {
		return nil, fmt.Errorf("series %d: %w", tmdbID, arr.ErrNotFound)
	}

	rootFolder := req.RootFolder
	if rootFolder == "" {
		folders, err := c.RootFolders(ctx)
		if err != nil {
			return nil, err
		}
		rootFolder = folders[0].Path
	}

	profileID := req.QualityProfileID
	if profileID == 0 {
		profiles, err := c.QualityProfiles(ctx)
		if err != nil {
			return nil, err
		}
		profileID = profiles[0].ID
	}

	ApplySeasonSelection(series.Seasons, req.Seasons)

	series.QualityProfileID = profileID
	series.RootFolderPath = rootFolder
	series.Monitored = true
	series.SeasonFolder = true
	series.AddOptions = &AddOptions{SearchForMissingEpisodes: true}
	// The lookup response may carry an empty or stale path; drop it so
	// Sonarr computes the path from rootFolderPath + title.
	series.Path = ""

	var created Series
	if err := c.do(ctx, http.MethodPost, "/series", nil, series, &created); err != nil {
		return nil, err
	}

	if c.log != nil {
		c.log.Debug("series added", "tmdb_id", tmdbID, "title", created.Title, "duration_ms", time.Since(start).Milliseconds())
	}
	return &created, nil
}

// Status derives the availability of a series: not_found when it cannot
// be resolved or is not in the library, available when every episode is
// downloaded, added otherwise.
func (c *Client) Status(ctx context.Context, tmdbID int64) (arr.Status, error) {
	series, err := c.Lookup(ctx, tmdbID)
	if err != nil {
		return "", err
	}
	if series == nil || series.TVDBID == 0 {
		return arr.StatusNotFound, nil
	}

	existing, err := c.GetSeriesByTVDBID(ctx, series.TVDBID)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return arr.StatusNotFound, nil
	}
	if existing.Statistics != nil && existing.Statistics.PercentOfEpisodes == 100 {
		return arr.StatusAvailable, nil
	}
	return arr.StatusAdded, nil
}

// AllSeries returns every series in the library.
func (c *Client) AllSeries(ctx context.Context) ([]Series, error) {
	var series []Series
	if err := c.do(ctx, http.MethodGet, "/series", nil, nil, &series); err != nil {
		return nil, err
	}
	return series, nil
}

// Recent returns the most recently added series, newest first.
func (c *Client) Recent(ctx context.Context, limit int) ([]Series, error) {
	series, err := c.AllSeries(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Added.After(series[j].Added)
	})
	if limit > 0 && len(series) > limit {
		series = series[:limit]
	}
	return series, nil
}

// Queue returns the current download queue.
func (c *Client) Queue(ctx context.Context) (*Queue, error) {
	query := url.Values{
		"page":           {"1"},
		"pageSize":       {"50"},
		"includeSeries":  {"true"},
		"includeEpisode": {"true"},
	}
	var q Queue
	if err := c.do(ctx, http.MethodGet, "/queue", query, nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// SeasonDetails returns the per-season status of a library series, or
// nil if the series is not in the library. Season 0 is omitted.
func (c *Client) SeasonDetails(ctx context.Context, tmdbID int64) (*SeriesDetails, error) {
	series, err := c.Lookup(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	if series == nil || series.TVDBID == 0 {
		return nil, nil
	}

	existing, err := c.GetSeriesByTVDBID(ctx, series.TVDBID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	details := &SeriesDetails{
		SonarrID: existing.ID,
		Title:    existing.Title,
	}
	for _, season := range existing.Seasons {
		if season.SeasonNumber == 0 {
			continue
		}

		var episodeCount, fileCount int
		var percent float64
		if season.Statistics != nil {
			episodeCount = season.Statistics.EpisodeCount
			fileCount = season.Statistics.EpisodeFileCount
			percent = season.Statistics.PercentOfEpisodes
		}

		status := SeasonAvailable
		switch {
		case percent == 100:
			status = SeasonDownloaded
		case season.Monitored:
			status = SeasonMonitored
		}

		details.Seasons = append(details.Seasons, SeasonDetail{
			Number:           season.SeasonNumber,
			Status:           status,
			Episodes:         fmt.Sprintf("%d/%d", fileCount, episodeCount),
			EpisodeCount:     episodeCount,
			EpisodeFileCount: fileCount,
		})
	}
	return details, nil
}

// UpdateSeasonMonitoring turns on monitoring for the given seasons of a
// series already in the library, then triggers a series-wide search so
// the newly monitored seasons are fetched. Monitoring is only ever
// added; seasons outside the list keep their flags. Returns
// arr.ErrNotFound if the series cannot be resolved or is not in the
// library.
func (c *Client) UpdateSeasonMonitoring(ctx context.Context, tmdbID int64, seasons []int) (*Series, error) {
	series, err := c.Lookup(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	if series == nil || series.TVDBID == 0 {
		return nil, fmt.Errorf("series %d: %w", tmdbID, arr.ErrNotFound)
	}

	existing, err := c.GetSeriesByTVDBID(ctx, series.TVDBID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("series %d not in library: %w", tmdbID, arr.ErrNotFound)
	}

	toAdd := make(map[int]bool, len(seasons))
	for _, n := range seasons {
		toAdd[n] = true
	}
	for i := range existing.Seasons {
		// Specials are never a valid monitoring target.
		if existing.Seasons[i].SeasonNumber == 0 {
			continue
		}
		if toAdd[existing.Seasons[i].SeasonNumber] {
			existing.Seasons[i].Monitored = true
		}
	}

	var updated Series
	endpoint := fmt.Sprintf("/series/%d", existing.ID)
	if err := c.do(ctx, http.MethodPut, endpoint, nil, existing, &updated); err != nil {
		return nil, err
	}

	if err := c.do(ctx, http.MethodPost, "/command", nil, command{Name: "SeriesSearch", SeriesID: existing.ID}, nil); err != nil {
		return nil, err
	}

	if c.log != nil {
		c.log.Debug("season monitoring updated", "tmdb_id", tmdbID, "seasons", seasons, "series_id", existing.ID)
	}
	return &updated, nil
}

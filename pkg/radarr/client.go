package radarr

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

const service = "radarr"

// Client is a Radarr v3 API client.
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

// New creates a new Radarr client for the given base URL and API key.
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

// do performs a request against the v3 API and decodes the response into
// out (if non-nil). All failures surface as *arr.RequestError.
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

// GetMovie returns the library entry for a TMDB ID, or nil if the movie
// is not in the library.
func (c *Client) GetMovie(ctx context.Context, tmdbID int64) (*Movie, error) {
	var movies []Movie
	query := url.Values{"tmdbId": {fmt.Sprint(tmdbID)}}
	if err := c.do(ctx, http.MethodGet, "/movie", query, nil, &movies); err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, nil
	}
	return &movies[0], nil
}

// Lookup resolves a TMDB ID into a movie candidate via Radarr's own
// metadata bridge. Returns nil if Radarr knows nothing about the ID.
func (c *Client) Lookup(ctx context.Context, tmdbID int64) (*Movie, error) {
	var results []Movie
	query := url.Values{"term": {fmt.Sprintf("tmdb:%d", tmdbID)}}
	if err := c.do(ctx, http.MethodGet, "/movie/lookup", query, nil, &results); err != nil {
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

// Add adds a movie to Radarr with monitoring and an immediate search.
// Returns arr.ErrAlreadyExists if the movie is in the library and
// arr.ErrNotFound if Radarr cannot resolve the TMDB ID.
func (c *Client) Add(ctx context.Context, tmdbID int64, req AddRequest) (*Movie, error) {
	start := time.Now()

	existing, err := c.GetMovie(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%s (%s): %w", existing.Title, service, arr.ErrAlreadyExists)
	}

	movie, err := c.Lookup(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", tmdbID, arr.ErrNotFound)
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

	movie.QualityProfileID = profileID
	movie.RootFolderPath = rootFolder
	movie.Monitored = true
	movie.AddOptions = &AddOptions{SearchForMovie: true}

	var created Movie
	if err := c.do(ctx, http.MethodPost, "/movie", nil, movie, &created); err != nil {
		return nil, err
	}

	if c.log != nil {
		c.log.Debug("movie added", "tmdb_id", tmdbID, "title", created.Title, "duration_ms", time.Since(start).Milliseconds())
	}
	return &created, nil
}

// Status derives the availability of a movie: not_found when it is not
// in the library, available when its file is downloaded, added otherwise.
func (c *Client) Status(ctx context.Context, tmdbID int64) (arr.Status, error) {
	movie, err := c.GetMovie(ctx, tmdbID)
	if err != nil {
		return "", err
	}
	if movie == nil {
		return arr.StatusNotFound, nil
	}
	if movie.HasFile {
		return arr.StatusAvailable, nil
	}
	return arr.StatusAdded, nil
}

// AllMovies returns every movie in the library.
func (c *Client) AllMovies(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	if err := c.do(ctx, http.MethodGet, "/movie", nil, nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Recent returns the most recently added movies, newest first.
func (c *Client) Recent(ctx context.Context, limit int) ([]Movie, error) {
	movies, err := c.AllMovies(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(movies, func(i, j int) bool {
		return movies[i].Added.After(movies[j].Added)
	})
	if limit > 0 && len(movies) > limit {
		movies = movies[:limit]
	}
	return movies, nil
}

// Queue returns the current download queue.
func (c *Client) Queue(ctx context.Context) (*Queue, error) {
	query := url.Values{
		"page":         {"1"},
		"pageSize":     {"50"},
		"includeMovie": {"true"},
	}
	var q Queue
	if err := c.do(ctx, http.MethodGet, "/queue", query, nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

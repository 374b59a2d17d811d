package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Client wraps HTTP calls to the scoutarr server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new scoutarr API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) delete(path string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// API response types (mirror server types)

type MediaResponse struct {
	TMDBID      int64   `json:"tmdb_id"`
	MediaType   string  `json:"media_type"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
}

type MediaPageResponse struct {
	Results      []MediaResponse `json:"results"`
	Page         int             `json:"page"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
}

type WatchlistItemResponse struct {
	ID              int64  `json:"id"`
	TMDBID          int64  `json:"tmdb_id"`
	MediaType       string `json:"media_type"`
	Title           string `json:"title"`
	Notes           string `json:"notes,omitempty"`
	Status          string `json:"status"`
	SelectedSeasons []int  `json:"selected_seasons,omitempty"`
	CreatedAt       string `json:"created_at"`
}

type BatchResultResponse struct {
	Processed []int64 `json:"processed"`
	Failed    []struct {
		TMDBID int64  `json:"tmdb_id"`
		Error  string `json:"error"`
	} `json:"failed"`
}

type QueueRecordResponse struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Status   string  `json:"status"`
	TimeLeft string  `json:"timeleft,omitempty"`
	Size     float64 `json:"size"`
	SizeLeft float64 `json:"sizeleft"`
}

type QueueResponse struct {
	TotalRecords int                   `json:"totalRecords"`
	Records      []QueueRecordResponse `json:"records"`
}

type RecentTitleResponse struct {
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
	Added string `json:"added,omitempty"`
}

type ActivityResponse struct {
	MovieQueue   *QueueResponse        `json:"movie_queue"`
	ShowQueue    *QueueResponse        `json:"show_queue"`
	RecentMovies []RecentTitleResponse `json:"recent_movies"`
	RecentShows  []RecentTitleResponse `json:"recent_shows"`
}

type CombinedQueueResponse struct {
	Movies *QueueResponse `json:"movies"`
	Shows  *QueueResponse `json:"shows"`
}

// API methods

func (c *Client) Health() error {
	var resp map[string]string
	return c.get("/health", &resp)
}

func (c *Client) Search(query string, page int) (*MediaPageResponse, error) {
	params := url.Values{"query": {query}}
	if page > 1 {
		params.Set("page", fmt.Sprint(page))
	}
	var result MediaPageResponse
	if err := c.get("/api/discover/search?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Trending(mediaType string) (*MediaPageResponse, error) {
	path := "/api/discover/movies/trending"
	if mediaType == "show" {
		path = "/api/discover/shows/trending"
	}
	var result MediaPageResponse
	if err := c.get(path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Watchlist() ([]WatchlistItemResponse, error) {
	var items []WatchlistItemResponse
	if err := c.get("/api/watchlist", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) WatchlistAdd(tmdbID int64, mediaType, title string) (*WatchlistItemResponse, error) {
	body := map[string]any{
		"tmdb_id":    tmdbID,
		"media_type": mediaType,
		"title":      title,
	}
	var item WatchlistItemResponse
	if err := c.post("/api/watchlist", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) WatchlistRemove(tmdbID int64, mediaType string) error {
	return c.delete(fmt.Sprintf("/api/watchlist/%d?media_type=%s", tmdbID, mediaType))
}

func (c *Client) WatchlistProcess(tmdbIDs []int64, mediaType string) (*BatchResultResponse, error) {
	body := map[string]any{
		"tmdb_ids":   tmdbIDs,
		"media_type": mediaType,
	}
	var result BatchResultResponse
	if err := c.post("/api/watchlist/process", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) WatchlistStatus(tmdbIDs []int64, mediaType string) (map[int64]string, error) {
	body := map[string]any{
		"tmdb_ids":   tmdbIDs,
		"media_type": mediaType,
	}
	var statuses map[int64]*string
	if err := c.post("/api/watchlist/status", body, &statuses); err != nil {
		return nil, err
	}
	result := make(map[int64]string, len(statuses))
	for id, st := range statuses {
		if st == nil {
			result[id] = "unknown"
			continue
		}
		result[id] = *st
	}
	return result, nil
}

func (c *Client) Activity() (*ActivityResponse, error) {
	var activity ActivityResponse
	if err := c.get("/api/library/activity", &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (c *Client) Queue() (*CombinedQueueResponse, error) {
	var queue CombinedQueueResponse
	if err := c.get("/api/library/queue", &queue); err != nil {
		return nil, err
	}
	return &queue, nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

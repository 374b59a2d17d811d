// Package tmdb provides a client for the TMDB metadata API and the
// transform layer that normalizes its movie and TV shapes into one.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/vmunix/scoutarr/internal/media"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// ErrNotFound is returned when a title, person, or collection doesn't
// exist in TMDB.
var ErrNotFound = errors.New("not found in TMDB")

// Client is a TMDB API client. Metadata is fetched fresh per request;
// there is no cache.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a new TMDB client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiType translates the internal media type to TMDB's path segment.
// This is the only place the internal "show" tag becomes "tv".
func apiType(t media.Type) string {
	if t == media.TypeShow {
		return "tv"
	}
	return "movie"
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// TrendingMovies returns this week's trending movies.
func (c *Client) TrendingMovies(ctx context.Context, page int) (*MediaPage, error) {
	var raw rawPage
	if err := c.get(ctx, "/trending/movie/week", pageParams(page), &raw); err != nil {
		return nil, err
	}
	return transformPage(raw, media.TypeMovie), nil
}

// TrendingShows returns this week's trending TV shows.
func (c *Client) TrendingShows(ctx context.Context, page int) (*MediaPage, error) {
	var raw rawPage
	if err := c.get(ctx, "/trending/tv/week", pageParams(page), &raw); err != nil {
		return nil, err
	}
	return transformPage(raw, media.TypeShow), nil
}

// Search runs a multi-type search. Person results are dropped; TV
// results carry the internal "show" tag.
func (c *Client) Search(ctx context.Context, query string, page int) (*MediaPage, error) {
	params := pageParams(page)
	params.Set("query", NormalizeQuery(query))

	var raw rawPage
	if err := c.get(ctx, "/search/multi", params, &raw); err != nil {
		return nil, err
	}

	result := &MediaPage{
		Results:    make([]Media, 0, len(raw.Results)),
		Page:       raw.Page,
		TotalPages: raw.TotalPages,
	}
	for _, item := range raw.Results {
		switch item.MediaType {
		case "movie":
			result.Results = append(result.Results, transformItem(item, media.TypeMovie))
		case "tv":
			result.Results = append(result.Results, transformItem(item, media.TypeShow))
		}
	}
	result.TotalResults = len(result.Results)
	return result, nil
}

// DiscoverFilters narrows a filtered discovery query. Zero values are
// omitted from the request.
type DiscoverFilters struct {
	Genres        string // comma-separated TMDB genre IDs
	Year          int
	YearGTE       int
	YearLTE       int
	RatingGTE     float64
	Certification string
	SortBy        string
}

// params maps the filters to TMDB discover parameters. Movies and TV
// name their date fields differently.
func (f DiscoverFilters) params(t media.Type, page int) url.Values {
	params := pageParams(page)

	if f.Genres != "" {
		params.Set("with_genres", f.Genres)
	}
	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = "popularity.desc"
	}
	params.Set("sort_by", sortBy)

	if f.RatingGTE > 0 {
		params.Set("vote_average.gte", fmt.Sprint(f.RatingGTE))
		// A vote-count floor keeps obscure titles out of rating filters.
		params.Set("vote_count.gte", "50")
	}

	if t == media.TypeMovie {
		if f.Year > 0 {
			params.Set("primary_release_year", fmt.Sprint(f.Year))
		}
		if f.YearGTE > 0 {
			params.Set("primary_release_date.gte", fmt.Sprintf("%d-01-01", f.YearGTE))
		}
		if f.YearLTE > 0 {
			params.Set("primary_release_date.lte", fmt.Sprintf("%d-12-31", f.YearLTE))
		}
	} else {
		if f.Year > 0 {
			params.Set("first_air_date_year", fmt.Sprint(f.Year))
		}
		if f.YearGTE > 0 {
			params.Set("first_air_date.gte", fmt.Sprintf("%d-01-01", f.YearGTE))
		}
		if f.YearLTE > 0 {
			params.Set("first_air_date.lte", fmt.Sprintf("%d-12-31", f.YearLTE))
		}
	}

	if f.Certification != "" {
		params.Set("certification", f.Certification)
		params.Set("certification_country", "US")
	}
	return params
}

// Discover runs a filtered discovery query for the given media type.
func (c *Client) Discover(ctx context.Context, t media.Type, filters DiscoverFilters, page int) (*MediaPage, error) {
	var raw rawPage
	endpoint := "/discover/" + apiType(t)
	if err := c.get(ctx, endpoint, filters.params(t, page), &raw); err != nil {
		return nil, err
	}
	return transformPage(raw, t), nil
}

// Similar returns titles similar to the given one.
func (c *Client) Similar(ctx context.Context, tmdbID int64, t media.Type) (*MediaPage, error) {
	var raw rawPage
	endpoint := fmt.Sprintf("/%s/%d/similar", apiType(t), tmdbID)
	if err := c.get(ctx, endpoint, nil, &raw); err != nil {
		return nil, err
	}
	p := transformPage(raw, t)
	p.Page = 1
	p.TotalPages = 1
	p.TotalResults = len(p.Results)
	return p, nil
}

// Genres returns the genre list for the given media type.
func (c *Client) Genres(ctx context.Context, t media.Type) ([]Genre, error) {
	var list genreList
	if err := c.get(ctx, "/genre/"+apiType(t)+"/list", nil, &list); err != nil {
		return nil, err
	}
	return list.Genres, nil
}

// Details returns a title's full record with credits, videos, and
// recommendations appended in one request.
func (c *Client) Details(ctx context.Context, tmdbID int64, t media.Type) (*Detail, error) {
	params := url.Values{"append_to_response": {"credits,videos,recommendations"}}

	var raw rawDetail
	endpoint := fmt.Sprintf("/%s/%d", apiType(t), tmdbID)
	if err := c.get(ctx, endpoint, params, &raw); err != nil {
		return nil, err
	}

	title := raw.Title
	if title == "" {
		title = raw.Name
	}
	release := raw.ReleaseDate
	if release == "" {
		release = raw.FirstAirDate
	}

	return &Detail{
		TMDBID:          raw.ID,
		MediaType:       t,
		Title:           title,
		Overview:        raw.Overview,
		PosterPath:      raw.PosterPath,
		BackdropPath:    raw.BackdropPath,
		ReleaseDate:     release,
		VoteAverage:     raw.VoteAverage,
		Runtime:         raw.Runtime,
		NumberOfSeasons: raw.NumberOfSeasons,
		Genres:          raw.Genres,
		Credits:         raw.Credits,
		Videos:          raw.Videos,
		Recommendations: raw.Recommendations,
	}, nil
}

// Person returns a person record with combined credits.
func (c *Client) Person(ctx context.Context, personID int64) (*Person, error) {
	params := url.Values{"append_to_response": {"combined_credits"}}

	var person Person
	endpoint := fmt.Sprintf("/person/%d", personID)
	if err := c.get(ctx, endpoint, params, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// Collection returns a movie collection and its member titles.
func (c *Client) Collection(ctx context.Context, collectionID int64) (*Collection, error) {
	var raw struct {
		ID         int64     `json:"id"`
		Name       string    `json:"name"`
		Overview   string    `json:"overview"`
		PosterPath string    `json:"poster_path"`
		Parts      []rawItem `json:"parts"`
	}
	endpoint := fmt.Sprintf("/collection/%d", collectionID)
	if err := c.get(ctx, endpoint, nil, &raw); err != nil {
		return nil, err
	}

	collection := &Collection{
		ID:         raw.ID,
		Name:       raw.Name,
		Overview:   raw.Overview,
		PosterPath: raw.PosterPath,
		Parts:      make([]Media, 0, len(raw.Parts)),
	}
	for _, part := range raw.Parts {
		collection.Parts = append(collection.Parts, transformItem(part, media.TypeMovie))
	}
	return collection, nil
}

func pageParams(page int) url.Values {
	if page < 1 {
		page = 1
	}
	return url.Values{"page": {fmt.Sprint(page)}}
}

// transformItem normalizes one TMDB result into the internal shape.
func transformItem(item rawItem, t media.Type) Media {
	title := item.Title
	if title == "" {
		title = item.Name
	}
	release := item.ReleaseDate
	if release == "" {
		release = item.FirstAirDate
	}
	return Media{
		TMDBID:      item.ID,
		MediaType:   t,
		Title:       title,
		Overview:    item.Overview,
		PosterPath:  item.PosterPath,
		ReleaseDate: release,
		VoteAverage: item.VoteAverage,
	}
}

func transformPage(raw rawPage, t media.Type) *MediaPage {
	page := &MediaPage{
		Results:      make([]Media, 0, len(raw.Results)),
		Page:         raw.Page,
		TotalPages:   raw.TotalPages,
		TotalResults: raw.TotalResults,
	}
	for _, item := range raw.Results {
		page.Results = append(page.Results, transformItem(item, t))
	}
	return page
}

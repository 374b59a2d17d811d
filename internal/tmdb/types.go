package tmdb

import (
	"encoding/json"

	"github.com/vmunix/scoutarr/internal/media"
)

// Media is a title normalized from TMDB's movie and TV shapes. TV uses
// "name"/"first_air_date" where movies use "title"/"release_date"; both
// map to Title/ReleaseDate here.
type Media struct {
	TMDBID      int64      `json:"tmdb_id"`
	MediaType   media.Type `json:"media_type"`
	Title       string     `json:"title"`
	Overview    string     `json:"overview,omitempty"`
	PosterPath  string     `json:"poster_path,omitempty"`
	ReleaseDate string     `json:"release_date,omitempty"`
	VoteAverage float64    `json:"vote_average,omitempty"`
}

// MediaPage is one page of normalized results.
type MediaPage struct {
	Results      []Media `json:"results"`
	Page         int     `json:"page"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Genre is a TMDB genre.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Detail is a full title record with appended credits, videos, and
// recommendations. The appended blocks are passed through to callers
// unmodified; the reconciliation core never reads them.
type Detail struct {
	TMDBID          int64           `json:"tmdb_id"`
	MediaType       media.Type      `json:"media_type"`
	Title           string          `json:"title"`
	Overview        string          `json:"overview,omitempty"`
	PosterPath      string          `json:"poster_path,omitempty"`
	BackdropPath    string          `json:"backdrop_path,omitempty"`
	ReleaseDate     string          `json:"release_date,omitempty"`
	VoteAverage     float64         `json:"vote_average,omitempty"`
	Runtime         int             `json:"runtime,omitempty"`
	NumberOfSeasons int             `json:"number_of_seasons,omitempty"`
	Genres          []Genre         `json:"genres,omitempty"`
	Credits         json.RawMessage `json:"credits,omitempty"`
	Videos          json.RawMessage `json:"videos,omitempty"`
	Recommendations json.RawMessage `json:"recommendations,omitempty"`
}

// Person is a person record.
type Person struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	Biography          string          `json:"biography,omitempty"`
	ProfilePath        string          `json:"profile_path,omitempty"`
	KnownForDepartment string          `json:"known_for_department,omitempty"`
	Birthday           string          `json:"birthday,omitempty"`
	CombinedCredits    json.RawMessage `json:"combined_credits,omitempty"`
}

// Collection is a movie collection with its member titles.
type Collection struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Overview   string  `json:"overview,omitempty"`
	PosterPath string  `json:"poster_path,omitempty"`
	Parts      []Media `json:"parts"`
}

// rawItem is the union of TMDB's movie and TV result shapes.
type rawItem struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
}

// rawPage is TMDB's paginated envelope.
type rawPage struct {
	Page         int       `json:"page"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
	Results      []rawItem `json:"results"`
}

// rawDetail is TMDB's detail shape with appended sub-resources.
type rawDetail struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Name            string          `json:"name"`
	Overview        string          `json:"overview"`
	PosterPath      string          `json:"poster_path"`
	BackdropPath    string          `json:"backdrop_path"`
	ReleaseDate     string          `json:"release_date"`
	FirstAirDate    string          `json:"first_air_date"`
	VoteAverage     float64         `json:"vote_average"`
	Runtime         int             `json:"runtime"`
	NumberOfSeasons int             `json:"number_of_seasons"`
	Genres          []Genre         `json:"genres"`
	Credits         json.RawMessage `json:"credits"`
	Videos          json.RawMessage `json:"videos"`
	Recommendations json.RawMessage `json:"recommendations"`
}

type genreList struct {
	Genres []Genre `json:"genres"`
}

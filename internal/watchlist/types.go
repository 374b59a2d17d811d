// Package watchlist owns watchlist rows and the batch processing that
// reconciles them against the automation services.
package watchlist

import (
	"time"

	"github.com/vmunix/scoutarr/internal/media"
)

// Status is an item's last known processing outcome. It reflects what
// happened the last time the item was processed, not live service
// state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAdded     Status = "added"
	StatusAvailable Status = "available"
)

// Item is a user's intent to acquire a title. (TMDBID, MediaType) is
// the natural key; at most one row exists per pair.
type Item struct {
	ID         int64      `json:"id"`
	TMDBID     int64      `json:"tmdb_id"`
	MediaType  media.Type `json:"media_type"`
	Title      string     `json:"title"`
	PosterPath string     `json:"poster_path,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	Status     Status     `json:"status"`

	// SelectedSeasons is the user's season selection for shows. nil
	// means no selection was made and the service's defaults apply.
	SelectedSeasons []int `json:"selected_seasons,omitempty"`

	// IsSeasonUpdate marks a show that is already in the library and
	// only needs additional seasons monitored, not a fresh add.
	IsSeasonUpdate bool `json:"is_season_update"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BatchResult partitions a processed batch: every input ID lands in
// exactly one of the two lists.
type BatchResult struct {
	Processed []int64       `json:"processed"`
	Failed    []BatchFailed `json:"failed"`
}

// BatchFailed records one item's processing failure.
type BatchFailed struct {
	TMDBID int64  `json:"tmdb_id"`
	Error  string `json:"error"`
}

// Package sonarr provides a client for the Sonarr v3 API, including
// season-level monitoring control.
package sonarr

import "time"

// Series is a series as Sonarr knows it, either a library entry or a
// lookup candidate. Lookup candidates carry the TVDB cross-reference ID
// needed to find the library entry but have no library ID.
type Series struct {
	ID               int64             `json:"id,omitempty"`
	TVDBID           int64             `json:"tvdbId"`
	TMDBID           int64             `json:"tmdbId,omitempty"`
	Title            string            `json:"title"`
	TitleSlug        string            `json:"titleSlug,omitempty"`
	Year             int               `json:"year,omitempty"`
	Overview         string            `json:"overview,omitempty"`
	Monitored        bool              `json:"monitored"`
	SeasonFolder     bool              `json:"seasonFolder"`
	QualityProfileID int64             `json:"qualityProfileId,omitempty"`
	RootFolderPath   string            `json:"rootFolderPath,omitempty"`
	Path             string            `json:"path,omitempty"`
	Added            time.Time         `json:"added,omitzero"`
	Seasons          []Season          `json:"seasons,omitempty"`
	Statistics       *SeriesStatistics `json:"statistics,omitempty"`
	Images           []Image           `json:"images,omitempty"`
	AddOptions       *AddOptions       `json:"addOptions,omitempty"`
}

// Season is one season of a series with its monitoring flag.
type Season struct {
	SeasonNumber int               `json:"seasonNumber"`
	Monitored    bool              `json:"monitored"`
	Statistics   *SeasonStatistics `json:"statistics,omitempty"`
}

// SeasonStatistics is Sonarr's per-season download accounting.
type SeasonStatistics struct {
	EpisodeCount      int     `json:"episodeCount"`
	EpisodeFileCount  int     `json:"episodeFileCount"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

// SeriesStatistics is Sonarr's series-wide download accounting.
type SeriesStatistics struct {
	SeasonCount       int     `json:"seasonCount"`
	EpisodeCount      int     `json:"episodeCount"`
	EpisodeFileCount  int     `json:"episodeFileCount"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

// Image is a cover or poster reference attached to a series.
type Image struct {
	CoverType string `json:"coverType"`
	URL       string `json:"url,omitempty"`
	RemoteURL string `json:"remoteUrl,omitempty"`
}

// AddOptions controls Sonarr's behavior when a series is added.
type AddOptions struct {
	SearchForMissingEpisodes bool `json:"searchForMissingEpisodes"`
}

// AddRequest carries optional overrides for Add. Zero values mean "use
// the first configured entry". A nil Seasons leaves Sonarr's default
// monitoring untouched; a non-nil slice (including empty) selects
// exactly those seasons.
type AddRequest struct {
	QualityProfileID int64
	RootFolder       string
	Seasons          []int
}

// SeasonStatus is the derived per-season state for SeasonDetails.
type SeasonStatus string

const (
	// SeasonDownloaded means every episode of the season has a file.
	SeasonDownloaded SeasonStatus = "downloaded"
	// SeasonMonitored means the season is being searched for.
	SeasonMonitored SeasonStatus = "monitored"
	// SeasonAvailable means the season exists but is not monitored.
	SeasonAvailable SeasonStatus = "available"
)

// SeasonDetail is one season's derived status with episode counts.
type SeasonDetail struct {
	Number           int          `json:"number"`
	Status           SeasonStatus `json:"status"`
	Episodes         string       `json:"episodes"`
	EpisodeCount     int          `json:"episode_count"`
	EpisodeFileCount int          `json:"episode_file_count"`
}

// SeriesDetails is the season-level view of a library series.
type SeriesDetails struct {
	SonarrID int64          `json:"sonarr_id"`
	Title    string         `json:"title"`
	Seasons  []SeasonDetail `json:"seasons"`
}

// Queue is a page of Sonarr's download queue.
type Queue struct {
	Page         int           `json:"page"`
	PageSize     int           `json:"pageSize"`
	TotalRecords int           `json:"totalRecords"`
	Records      []QueueRecord `json:"records"`
}

// QueueRecord is a single in-flight download.
type QueueRecord struct {
	ID       int64   `json:"id"`
	SeriesID int64   `json:"seriesId"`
	Title    string  `json:"title"`
	Status   string  `json:"status"`
	TimeLeft string  `json:"timeleft,omitempty"`
	Size     float64 `json:"size"`
	SizeLeft float64 `json:"sizeleft"`
}

// command is the body for POST /command.
type command struct {
	Name     string `json:"name"`
	SeriesID int64  `json:"seriesId,omitempty"`
}

// Package radarr provides a client for the Radarr v3 API.
package radarr

import "time"

// Movie is a movie as Radarr knows it, either a library entry or a
// lookup candidate. Lookup candidates have no library ID.
type Movie struct {
	ID               int64       `json:"id,omitempty"`
	TMDBID           int64       `json:"tmdbId"`
	Title            string      `json:"title"`
	TitleSlug        string      `json:"titleSlug,omitempty"`
	Year             int         `json:"year,omitempty"`
	Overview         string      `json:"overview,omitempty"`
	HasFile          bool        `json:"hasFile"`
	Monitored        bool        `json:"monitored"`
	QualityProfileID int64       `json:"qualityProfileId,omitempty"`
	RootFolderPath   string      `json:"rootFolderPath,omitempty"`
	Path             string      `json:"path,omitempty"`
	Added            time.Time   `json:"added,omitzero"`
	Images           []Image     `json:"images,omitempty"`
	AddOptions       *AddOptions `json:"addOptions,omitempty"`
}

// Image is a cover or poster reference attached to a movie.
type Image struct {
	CoverType string `json:"coverType"`
	URL       string `json:"url,omitempty"`
	RemoteURL string `json:"remoteUrl,omitempty"`
}

// AddOptions controls Radarr's behavior when a movie is added.
type AddOptions struct {
	SearchForMovie bool `json:"searchForMovie"`
}

// AddRequest carries optional overrides for Add. Zero values mean "use
// the first configured entry".
type AddRequest struct {
	QualityProfileID int64
	RootFolder       string
}

// Queue is a page of Radarr's download queue.
type Queue struct {
	Page         int           `json:"page"`
	PageSize     int           `json:"pageSize"`
	TotalRecords int           `json:"totalRecords"`
	Records      []QueueRecord `json:"records"`
}

// QueueRecord is a single in-flight download.
type QueueRecord struct {
	ID       int64   `json:"id"`
	MovieID  int64   `json:"movieId"`
	Title    string  `json:"title"`
	Status   string  `json:"status"`
	TimeLeft string  `json:"timeleft,omitempty"`
	Size     float64 `json:"size"`
	SizeLeft float64 `json:"sizeleft"`
}

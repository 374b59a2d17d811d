package watchlist

import (
	"context"
	"log/slog"

	"github.com/vmunix/scoutarr/internal/media"
	"github.com/vmunix/scoutarr/pkg/radarr"
	"github.com/vmunix/scoutarr/pkg/sonarr"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// MovieAdder adds movies to the movie automation service.
type MovieAdder interface {
	Add(ctx context.Context, tmdbID int64, req radarr.AddRequest) (*radarr.Movie, error)
}

// SeriesManager adds shows and adjusts season monitoring on the show
// automation service.
type SeriesManager interface {
	Add(ctx context.Context, tmdbID int64, req sonarr.AddRequest) (*sonarr.Series, error)
	UpdateSeasonMonitoring(ctx context.Context, tmdbID int64, seasons []int) (*sonarr.Series, error)
}

// Service reconciles watchlist rows against the automation services.
type Service struct {
	store     *Store
	movies    MovieAdder
	shows     SeriesManager
	movieRoot string
	showRoot  string
	log       *slog.Logger
}

// NewService creates a watchlist service. movieRoot and showRoot are
// the configured root folders; empty means the service's first
// configured folder is used.
func NewService(store *Store, movies MovieAdder, shows SeriesManager, movieRoot, showRoot string, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store:     store,
		movies:    movies,
		shows:     shows,
		movieRoot: movieRoot,
		showRoot:  showRoot,
		log:       log,
	}
}

// ProcessBatch pushes each watchlist item to its automation service,
// strictly sequentially. A failure on one item never short-circuits
// the rest: the item's error goes into the failed list, its row stays
// pending, and processing continues. Successful items are marked
// added immediately, so partial progress survives a later failure.
// Every input ID lands in exactly one of the two result lists.
func (s *Service) ProcessBatch(ctx context.Context, tmdbIDs []int64, mediaType media.Type) *BatchResult {
	result := &BatchResult{
		Processed: make([]int64, 0, len(tmdbIDs)),
		Failed:    []BatchFailed{},
	}

	for _, tmdbID := range tmdbIDs {
		if err := s.processOne(ctx, tmdbID, mediaType); err != nil {
			s.log.Warn("watchlist item failed", "tmdb_id", tmdbID, "media_type", mediaType, "error", err)
			result.Failed = append(result.Failed, BatchFailed{TMDBID: tmdbID, Error: err.Error()})
			continue
		}
		result.Processed = append(result.Processed, tmdbID)
	}
	return result
}

func (s *Service) processOne(ctx context.Context, tmdbID int64, mediaType media.Type) error {
	var err error
	switch mediaType {
	case media.TypeMovie:
		_, err = s.movies.Add(ctx, tmdbID, radarr.AddRequest{RootFolder: s.movieRoot})
	case media.TypeShow:
		err = s.processShow(ctx, tmdbID)
	default:
		return media.ErrInvalidType
	}

	// Every error lands in the failed partition, already-in-library
	// included; the row stays pending so the caller can resolve it.
	if err != nil {
		return err
	}
	return s.store.UpdateStatus(tmdbID, mediaType, StatusAdded)
}

// processShow re-reads the row so the current season selection and
// update flag apply, not the ones from when the batch was requested.
func (s *Service) processShow(ctx context.Context, tmdbID int64) error {
	item, err := s.store.Get(tmdbID, media.TypeShow)
	if err != nil {
		return err
	}

	if item.IsSeasonUpdate {
		_, err = s.shows.UpdateSeasonMonitoring(ctx, tmdbID, item.SelectedSeasons)
		return err
	}
	_, err = s.shows.Add(ctx, tmdbID, sonarr.AddRequest{
		RootFolder: s.showRoot,
		Seasons:    item.SelectedSeasons,
	})
	return err
}

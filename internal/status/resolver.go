// Package status derives unified availability for titles across the
// automation services. Nothing here is cached: every resolution reads
// live service state.
package status

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/scoutarr/pkg/arr"
	"github.com/vmunix/scoutarr/pkg/radarr"
	"github.com/vmunix/scoutarr/pkg/sonarr"
)

// MovieLister reads the movie service's library.
type MovieLister interface {
	AllMovies(ctx context.Context) ([]radarr.Movie, error)
}

// SeriesLister reads the show service's library and resolves TMDB IDs
// to library candidates.
type SeriesLister interface {
	AllSeries(ctx context.Context) ([]sonarr.Series, error)
	Lookup(ctx context.Context, tmdbID int64) (*sonarr.Series, error)
}

// Resolver answers batch status queries with one bulk library fetch
// per batch instead of one per title.
type Resolver struct {
	movies MovieLister
	shows  SeriesLister
	log    *slog.Logger
}

// NewResolver creates a status resolver.
func NewResolver(movies MovieLister, shows SeriesLister, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{movies: movies, shows: shows, log: log}
}

// MovieStatuses resolves status for many movies with a single library
// fetch. Movies carry their TMDB ID natively, so mapping is direct.
// A nil entry means the title is not in the library.
func (r *Resolver) MovieStatuses(ctx context.Context, tmdbIDs []int64) (map[int64]*arr.Status, error) {
	movies, err := r.movies.AllMovies(ctx)
	if err != nil {
		return nil, err
	}

	byTMDB := make(map[int64]arr.Status, len(movies))
	for _, m := range movies {
		status := arr.StatusAdded
		if m.HasFile {
			status = arr.StatusAvailable
		}
		byTMDB[m.TMDBID] = status
	}

	result := make(map[int64]*arr.Status, len(tmdbIDs))
	for _, id := range tmdbIDs {
		if status, ok := byTMDB[id]; ok {
			result[id] = &status
		} else {
			result[id] = nil
		}
	}
	return result, nil
}

// ShowStatuses resolves status for many shows. The library keys on
// TVDB IDs while callers pass TMDB IDs, so each requested ID needs a
// lookup to bridge the two spaces; those run concurrently against a
// status map precomputed from one bulk library fetch. A nil entry
// means the ID resolved to nothing, which is not an error.
func (r *Resolver) ShowStatuses(ctx context.Context, tmdbIDs []int64) (map[int64]*arr.Status, error) {
	series, err := r.shows.AllSeries(ctx)
	if err != nil {
		return nil, err
	}

	byTVDB := make(map[int64]arr.Status, len(series))
	for _, s := range series {
		status := arr.StatusAdded
		if s.Statistics != nil && s.Statistics.PercentOfEpisodes == 100 {
			status = arr.StatusAvailable
		}
		byTVDB[s.TVDBID] = status
	}

	result := make(map[int64]*arr.Status, len(tmdbIDs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, tmdbID := range tmdbIDs {
		g.Go(func() error {
			candidate, err := r.shows.Lookup(ctx, tmdbID)
			if err != nil {
				return err
			}

			var status *arr.Status
			if candidate != nil && candidate.TVDBID != 0 {
				if s, ok := byTVDB[candidate.TVDBID]; ok {
					status = &s
				}
			}

			mu.Lock()
			result[tmdbID] = status
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

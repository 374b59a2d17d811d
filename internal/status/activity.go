package status

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/scoutarr/pkg/radarr"
	"github.com/vmunix/scoutarr/pkg/sonarr"
)

// MovieActivity reads the movie service's queue and recent additions.
type MovieActivity interface {
	Queue(ctx context.Context) (*radarr.Queue, error)
	Recent(ctx context.Context, limit int) ([]radarr.Movie, error)
}

// SeriesActivity reads the show service's queue and recent additions.
type SeriesActivity interface {
	Queue(ctx context.Context) (*sonarr.Queue, error)
	Recent(ctx context.Context, limit int) ([]sonarr.Series, error)
}

// Activity is a combined dashboard of both services.
type Activity struct {
	MovieQueue   *radarr.Queue   `json:"movie_queue"`
	ShowQueue    *sonarr.Queue   `json:"show_queue"`
	RecentMovies []radarr.Movie  `json:"recent_movies"`
	RecentShows  []sonarr.Series `json:"recent_shows"`
}

// FetchActivity reads queue and recent additions from both services.
// The four reads are independent, so they run concurrently and join.
func FetchActivity(ctx context.Context, movies MovieActivity, shows SeriesActivity, recentLimit int) (*Activity, error) {
	activity := &Activity{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := movies.Queue(ctx)
		activity.MovieQueue = q
		return err
	})
	g.Go(func() error {
		q, err := shows.Queue(ctx)
		activity.ShowQueue = q
		return err
	})
	g.Go(func() error {
		recent, err := movies.Recent(ctx, recentLimit)
		activity.RecentMovies = recent
		return err
	})
	g.Go(func() error {
		recent, err := shows.Recent(ctx, recentLimit)
		activity.RecentShows = recent
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return activity, nil
}

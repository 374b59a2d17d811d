package api

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/scoutarr/internal/status"
	"github.com/vmunix/scoutarr/pkg/radarr"
	"github.com/vmunix/scoutarr/pkg/sonarr"
)

func (s *Server) libraryActivity(w http.ResponseWriter, r *http.Request) {
	movies, err := s.clients.Radarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	shows, err := s.clients.Sonarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	activity, err := status.FetchActivity(r.Context(), movies, shows, queryInt(r, "limit", 10))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

type combinedQueue struct {
	Movies *radarr.Queue `json:"movies"`
	Shows  *sonarr.Queue `json:"shows"`
}

func (s *Server) libraryQueue(w http.ResponseWriter, r *http.Request) {
	movies, err := s.clients.Radarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	shows, err := s.clients.Sonarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var queue combinedQueue
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		q, err := movies.Queue(ctx)
		queue.Movies = q
		return err
	})
	g.Go(func() error {
		q, err := shows.Queue(ctx)
		queue.Shows = q
		return err
	})
	if err := g.Wait(); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, queue)
}

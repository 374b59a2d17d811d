package api

import (
	"net/http"

	"github.com/vmunix/scoutarr/internal/media"
	"github.com/vmunix/scoutarr/internal/status"
	"github.com/vmunix/scoutarr/internal/watchlist"
	"github.com/vmunix/scoutarr/pkg/arr"
)

func (s *Server) listWatchlist(w http.ResponseWriter, r *http.Request) {
	items, err := s.watchlist.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	if items == nil {
		items = []*watchlist.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

type addWatchlistRequest struct {
	TMDBID          int64  `json:"tmdb_id"`
	MediaType       string `json:"media_type"`
	Title           string `json:"title"`
	PosterPath      string `json:"poster_path"`
	Notes           string `json:"notes"`
	SelectedSeasons []int  `json:"selected_seasons"`
	IsSeasonUpdate  bool   `json:"is_season_update"`
}

func (s *Server) addWatchlist(w http.ResponseWriter, r *http.Request) {
	var req addWatchlistRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	mediaType, err := media.ParseType(req.MediaType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if req.TMDBID == 0 {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "tmdb_id is required")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "MISSING_TITLE", "title is required")
		return
	}

	item, err := s.watchlist.Add(&watchlist.Item{
		TMDBID:          req.TMDBID,
		MediaType:       mediaType,
		Title:           req.Title,
		PosterPath:      req.PosterPath,
		Notes:           req.Notes,
		SelectedSeasons: req.SelectedSeasons,
		IsSeasonUpdate:  req.IsSeasonUpdate,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) deleteWatchlist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	mediaType, err := media.ParseType(r.URL.Query().Get("media_type"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := s.watchlist.Delete(id, mediaType); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type batchRequest struct {
	TMDBIDs   []int64 `json:"tmdb_ids"`
	MediaType string  `json:"media_type"`
}

func (s *Server) deleteWatchlistBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	mediaType, err := media.ParseType(req.MediaType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	deleted, err := s.watchlist.DeleteBatch(req.TMDBIDs, mediaType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

type updateSeasonsRequest struct {
	Seasons []int `json:"seasons"`
}

func (s *Server) updateWatchlistSeasons(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	var req updateSeasonsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	if err := s.watchlist.UpdateSeasons(id, req.Seasons); err != nil {
		writeServiceError(w, err)
		return
	}
	item, err := s.watchlist.Get(id, media.TypeShow)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) processWatchlist(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	mediaType, err := media.ParseType(req.MediaType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	service, err := s.watchlistService()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, service.ProcessBatch(r.Context(), req.TMDBIDs, mediaType))
}

// watchlistService assembles the reconciliation service with fresh
// clients so settings changes apply per request.
func (s *Server) watchlistService() (*watchlist.Service, error) {
	movies, err := s.clients.Radarr()
	if err != nil {
		return nil, err
	}
	shows, err := s.clients.Sonarr()
	if err != nil {
		return nil, err
	}
	return watchlist.NewService(
		s.watchlist, movies, shows,
		s.clients.RadarrRootFolder(), s.clients.SonarrRootFolder(),
		s.log.With("component", "watchlist"),
	), nil
}

func (s *Server) batchStatus(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	mediaType, err := media.ParseType(req.MediaType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var statuses map[int64]*arr.Status
	switch mediaType {
	case media.TypeMovie:
		movies, err := s.clients.Radarr()
		if err != nil {
			writeServiceError(w, err)
			return
		}
		resolver := status.NewResolver(movies, nil, s.log)
		statuses, err = resolver.MovieStatuses(r.Context(), req.TMDBIDs)
		if err != nil {
			writeServiceError(w, err)
			return
		}
	case media.TypeShow:
		shows, err := s.clients.Sonarr()
		if err != nil {
			writeServiceError(w, err)
			return
		}
		resolver := status.NewResolver(nil, shows, s.log)
		statuses, err = resolver.ShowStatuses(r.Context(), req.TMDBIDs)
		if err != nil {
			writeServiceError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, statuses)
}

package api

import (
	"net/http"

	"github.com/vmunix/scoutarr/pkg/radarr"
	"github.com/vmunix/scoutarr/pkg/sonarr"
)

type statusResponse struct {
	TMDBID int64  `json:"tmdb_id"`
	Status string `json:"status"`
}

func (s *Server) radarrStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	client, err := s.clients.Radarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	st, err := client.Status(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{TMDBID: id, Status: string(st)})
}

type addTitleRequest struct {
	TMDBID           int64  `json:"tmdb_id"`
	QualityProfileID int64  `json:"quality_profile_id"`
	RootFolder       string `json:"root_folder"`
	Seasons          []int  `json:"seasons"`
}

func (s *Server) radarrAdd(w http.ResponseWriter, r *http.Request) {
	var req addTitleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.TMDBID == 0 {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "tmdb_id is required")
		return
	}
	client, err := s.clients.Radarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rootFolder := req.RootFolder
	if rootFolder == "" {
		rootFolder = s.clients.RadarrRootFolder()
	}
	movie, err := client.Add(r.Context(), req.TMDBID, radarr.AddRequest{
		QualityProfileID: req.QualityProfileID,
		RootFolder:       rootFolder,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, movie)
}

func (s *Server) radarrQueue(w http.ResponseWriter, r *http.Request) {
	client, err := s.clients.Radarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	queue, err := client.Queue(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, queue)
}

func (s *Server) radarrRecent(w http.ResponseWriter, r *http.Request) {
	client, err := s.clients.Radarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	recent, err := client.Recent(r.Context(), queryInt(r, "limit", 10))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recent)
}

func (s *Server) sonarrStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	client, err := s.clients.Sonarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	st, err := client.Status(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{TMDBID: id, Status: string(st)})
}

func (s *Server) sonarrAdd(w http.ResponseWriter, r *http.Request) {
	var req addTitleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.TMDBID == 0 {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "tmdb_id is required")
		return
	}
	client, err := s.clients.Sonarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rootFolder := req.RootFolder
	if rootFolder == "" {
		rootFolder = s.clients.SonarrRootFolder()
	}
	series, err := client.Add(r.Context(), req.TMDBID, sonarr.AddRequest{
		QualityProfileID: req.QualityProfileID,
		RootFolder:       rootFolder,
		Seasons:          req.Seasons,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, series)
}

func (s *Server) sonarrQueue(w http.ResponseWriter, r *http.Request) {
	client, err := s.clients.Sonarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	queue, err := client.Queue(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, queue)
}

func (s *Server) sonarrRecent(w http.ResponseWriter, r *http.Request) {
	client, err := s.clients.Sonarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	recent, err := client.Recent(r.Context(), queryInt(r, "limit", 10))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recent)
}

func (s *Server) sonarrSeasons(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	client, err := s.clients.Sonarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	details, err := client.SeasonDetails(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) sonarrUpdateSeasons(w http.ResponseWriter, r *http.Request) {
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
	client, err := s.clients.Sonarr()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	series, err := client.UpdateSeasonMonitoring(r.Context(), id, req.Seasons)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

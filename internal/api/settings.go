package api

import (
	"net/http"

	"github.com/vmunix/scoutarr/internal/settings"
)

// settingsResponse carries the masked settings plus per-service
// configured flags so a UI can tell which integrations are live
// without seeing any credential material.
type settingsResponse struct {
	Settings  []*settings.Setting `json:"settings"`
	HasTMDB   bool                `json:"has_tmdb"`
	HasRadarr bool                `json:"has_radarr"`
	HasSonarr bool                `json:"has_sonarr"`
}

func (s *Server) settingsView() (*settingsResponse, error) {
	all, err := s.settings.List()
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []*settings.Setting{}
	}

	resp := &settingsResponse{Settings: all}
	if _, err := s.clients.TMDB(); err == nil {
		resp.HasTMDB = true
	}
	if _, err := s.clients.Radarr(); err == nil {
		resp.HasRadarr = true
	}
	if _, err := s.clients.Sonarr(); err == nil {
		resp.HasSonarr = true
	}
	return resp, nil
}

func (s *Server) listSettings(w http.ResponseWriter, r *http.Request) {
	resp, err := s.settingsView()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if len(req) == 0 {
		writeError(w, http.StatusBadRequest, "EMPTY_BODY", "no settings provided")
		return
	}

	for key, value := range req {
		if err := s.settings.Set(key, value); err != nil {
			writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
			return
		}
	}

	// Return the updated view, masked.
	resp, err := s.settingsView()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

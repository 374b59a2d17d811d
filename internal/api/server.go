// Package api implements the REST API.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vmunix/scoutarr/internal/clients"
	"github.com/vmunix/scoutarr/internal/settings"
	"github.com/vmunix/scoutarr/internal/watchlist"
)

// Server is the API server.
type Server struct {
	watchlist *watchlist.Store
	settings  *settings.Store
	clients   *clients.Factory
	log       *slog.Logger
}

// New creates a new API server.
func New(watchlistStore *watchlist.Store, settingsStore *settings.Store, factory *clients.Factory, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		watchlist: watchlistStore,
		settings:  settingsStore,
		clients:   factory,
		log:       log,
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.health)

	// Discovery
	mux.HandleFunc("GET /api/discover/movies/trending", s.trendingMovies)
	mux.HandleFunc("GET /api/discover/shows/trending", s.trendingShows)
	mux.HandleFunc("GET /api/discover/search", s.search)
	mux.HandleFunc("GET /api/discover/movies", s.discoverMovies)
	mux.HandleFunc("GET /api/discover/shows", s.discoverShows)
	mux.HandleFunc("GET /api/discover/similar/{id}", s.similar)
	mux.HandleFunc("GET /api/discover/movies/{id}", s.movieDetails)
	mux.HandleFunc("GET /api/discover/shows/{id}", s.showDetails)
	mux.HandleFunc("GET /api/discover/person/{id}", s.person)
	mux.HandleFunc("GET /api/discover/collection/{id}", s.collection)
	mux.HandleFunc("GET /api/genres/movies", s.movieGenres)
	mux.HandleFunc("GET /api/genres/shows", s.showGenres)

	// Watchlist
	mux.HandleFunc("GET /api/watchlist", s.listWatchlist)
	mux.HandleFunc("POST /api/watchlist", s.addWatchlist)
	mux.HandleFunc("DELETE /api/watchlist/batch", s.deleteWatchlistBatch)
	mux.HandleFunc("DELETE /api/watchlist/{id}", s.deleteWatchlist)
	mux.HandleFunc("PUT /api/watchlist/{id}/seasons", s.updateWatchlistSeasons)
	mux.HandleFunc("POST /api/watchlist/process", s.processWatchlist)
	mux.HandleFunc("POST /api/watchlist/status", s.batchStatus)

	// Per-service
	mux.HandleFunc("GET /api/radarr/status/{id}", s.radarrStatus)
	mux.HandleFunc("POST /api/radarr/add", s.radarrAdd)
	mux.HandleFunc("GET /api/radarr/queue", s.radarrQueue)
	mux.HandleFunc("GET /api/radarr/recent", s.radarrRecent)
	mux.HandleFunc("GET /api/sonarr/status/{id}", s.sonarrStatus)
	mux.HandleFunc("POST /api/sonarr/add", s.sonarrAdd)
	mux.HandleFunc("GET /api/sonarr/queue", s.sonarrQueue)
	mux.HandleFunc("GET /api/sonarr/recent", s.sonarrRecent)
	mux.HandleFunc("GET /api/sonarr/series/{id}/seasons", s.sonarrSeasons)
	mux.HandleFunc("POST /api/sonarr/series/{id}/seasons", s.sonarrUpdateSeasons)

	// Combined library view
	mux.HandleFunc("GET /api/library/activity", s.libraryActivity)
	mux.HandleFunc("GET /api/library/queue", s.libraryQueue)

	// Settings
	mux.HandleFunc("GET /api/settings", s.listSettings)
	mux.HandleFunc("PUT /api/settings", s.updateSettings)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// queryFloat extracts an optional float from query string.
func queryFloat(r *http.Request, name string) float64 {
	val := r.URL.Query().Get(name)
	if val == "" {
		return 0
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return f
}

func decodeBody(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

package api

import (
	"net/http"

	"github.com/vmunix/scoutarr/internal/media"
	"github.com/vmunix/scoutarr/internal/tmdb"
)

func (s *Server) trendingMovies(w http.ResponseWriter, r *http.Request) {
	client, err := s.clients.TMDB()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	page, err := client.TrendingMovies(r.Context(), queryInt(r, "page", 1))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) trendingShows(w http.ResponseWriter, r *http.Request) {
	client, err := s.clients.TMDB()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	page, err := client.TrendingShows(r.Context(), queryInt(r, "page", 1))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "MISSING_QUERY", "query parameter is required")
		return
	}

	client, err := s.clients.TMDB()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	page, err := client.Search(r.Context(), query, queryInt(r, "page", 1))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// discoverFilters reads the filter query parameters shared by the
// movie and show discovery endpoints.
func discoverFilters(r *http.Request) tmdb.DiscoverFilters {
	return tmdb.DiscoverFilters{
		Genres:        r.URL.Query().Get("genres"),
		Year:          queryInt(r, "year", 0),
		YearGTE:       queryInt(r, "year_gte", 0),
		YearLTE:       queryInt(r, "year_lte", 0),
		RatingGTE:     queryFloat(r, "rating_gte"),
		Certification: r.URL.Query().Get("certification"),
		SortBy:        r.URL.Query().Get("sort_by"),
	}
}

func (s *Server) discoverMovies(w http.ResponseWriter, r *http.Request) {
	s.discover(w, r, media.TypeMovie)
}

func (s *Server) discoverShows(w http.ResponseWriter, r *http.Request) {
	s.discover(w, r, media.TypeShow)
}

func (s *Server) discover(w http.ResponseWriter, r *http.Request, t media.Type) {
	client, err := s.clients.TMDB()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	page, err := client.Discover(r.Context(), t, discoverFilters(r), queryInt(r, "page", 1))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) similar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	mediaType, err := mediaTypeParam(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	client, err := s.clients.TMDB()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	page, err := client.Similar(r.Context(), id, mediaType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) movieDetails(w http.ResponseWriter, r *http.Request) {
	s.details(w, r, media.TypeMovie)
}

func (s *Server) showDetails(w http.ResponseWriter, r *http.Request) {
	s.details(w, r, media.TypeShow)
}

func (s *Server) details(w http.ResponseWriter, r *http.Request, t media.Type) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	client, err := s.clients.TMDB()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	detail, err := client.Details(r.Context(), id, t)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) person(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	client, err := s.clients.TMDB()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	person, err := client.Person(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

func (s *Server) collection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	client, err := s.clients.TMDB()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	collection, err := client.Collection(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, collection)
}

func (s *Server) movieGenres(w http.ResponseWriter, r *http.Request) {
	s.genres(w, r, media.TypeMovie)
}

func (s *Server) showGenres(w http.ResponseWriter, r *http.Request) {
	s.genres(w, r, media.TypeShow)
}

func (s *Server) genres(w http.ResponseWriter, r *http.Request, t media.Type) {
	client, err := s.clients.TMDB()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	genres, err := client.Genres(r.Context(), t)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, genres)
}

// mediaTypeParam reads and validates the media_type query parameter,
// defaulting to movie.
func mediaTypeParam(r *http.Request) (media.Type, error) {
	raw := r.URL.Query().Get("media_type")
	if raw == "" {
		return media.TypeMovie, nil
	}
	return media.ParseType(raw)
}

package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/scoutarr/internal/media"
)

func TestClient_TrendingMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/week", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"page": 2,
			"total_pages": 10,
			"total_results": 200,
			"results": [
				{"id": 550, "title": "Fight Club", "release_date": "1999-10-15", "vote_average": 8.4},
				{"id": 27205, "title": "Inception", "release_date": "2010-07-15", "vote_average": 8.3}
			]
		}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))

	page, err := client.TrendingMovies(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.TotalPages)
	require.Len(t, page.Results, 2)
	assert.Equal(t, int64(550), page.Results[0].TMDBID)
	assert.Equal(t, "Fight Club", page.Results[0].Title)
	assert.Equal(t, media.TypeMovie, page.Results[0].MediaType)
	assert.Equal(t, "1999-10-15", page.Results[0].ReleaseDate)
}

func TestClient_TrendingShows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/tv/week", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"page": 1,
			"total_pages": 1,
			"total_results": 1,
			"results": [
				{"id": 1396, "name": "Breaking Bad", "first_air_date": "2008-01-20", "vote_average": 8.9}
			]
		}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))

	page, err := client.TrendingShows(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)

	// TV fields normalize onto the movie-shaped internal struct.
	show := page.Results[0]
	assert.Equal(t, media.TypeShow, show.MediaType)
	assert.Equal(t, "Breaking Bad", show.Title)
	assert.Equal(t, "2008-01-20", show.ReleaseDate)
}

func TestClient_Search_DropsPersonResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/multi", r.URL.Path)
		assert.Equal(t, "Leon", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"page": 1,
			"total_pages": 1,
			"total_results": 3,
			"results": [
				{"id": 101, "media_type": "movie", "title": "Léon: The Professional", "release_date": "1994-09-14"},
				{"id": 202, "media_type": "person", "name": "Jean Reno"},
				{"id": 303, "media_type": "tv", "name": "Leon the Show", "first_air_date": "2020-01-01"}
			]
		}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))

	// Accented query is normalized before it reaches the API.
	page, err := client.Search(context.Background(), "  Léon ", 1)
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	assert.Equal(t, media.TypeMovie, page.Results[0].MediaType)
	assert.Equal(t, media.TypeShow, page.Results[1].MediaType)
	assert.Equal(t, 2, page.TotalResults)
}

func TestClient_Discover_MovieFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/movie", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "28,12", q.Get("with_genres"))
		assert.Equal(t, "vote_average.desc", q.Get("sort_by"))
		assert.Equal(t, "7", q.Get("vote_average.gte"))
		assert.Equal(t, "50", q.Get("vote_count.gte"))
		assert.Equal(t, "2010-01-01", q.Get("primary_release_date.gte"))
		assert.Equal(t, "2019-12-31", q.Get("primary_release_date.lte"))
		assert.Equal(t, "PG-13", q.Get("certification"))
		assert.Equal(t, "US", q.Get("certification_country"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"total_pages":1,"total_results":0,"results":[]}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))

	filters := DiscoverFilters{
		Genres:        "28,12",
		YearGTE:       2010,
		YearLTE:       2019,
		RatingGTE:     7,
		Certification: "PG-13",
		SortBy:        "vote_average.desc",
	}
	_, err := client.Discover(context.Background(), media.TypeMovie, filters, 1)
	require.NoError(t, err)
}

func TestClient_Discover_ShowDateFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/tv", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2015", q.Get("first_air_date_year"))
		assert.Empty(t, q.Get("primary_release_year"))
		assert.Equal(t, "popularity.desc", q.Get("sort_by"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"total_pages":1,"total_results":0,"results":[]}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))

	_, err := client.Discover(context.Background(), media.TypeShow, DiscoverFilters{Year: 2015}, 1)
	require.NoError(t, err)
}

func TestClient_Details(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550", r.URL.Path)
		assert.Equal(t, "credits,videos,recommendations", r.URL.Query().Get("append_to_response"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 550,
			"title": "Fight Club",
			"release_date": "1999-10-15",
			"runtime": 139,
			"genres": [{"id": 18, "name": "Drama"}],
			"credits": {"cast": [{"id": 819, "name": "Edward Norton"}]},
			"videos": {"results": []},
			"recommendations": {"results": []}
		}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))

	detail, err := client.Details(context.Background(), 550, media.TypeMovie)
	require.NoError(t, err)
	assert.Equal(t, int64(550), detail.TMDBID)
	assert.Equal(t, "Fight Club", detail.Title)
	assert.Equal(t, 139, detail.Runtime)
	require.Len(t, detail.Genres, 1)
	assert.JSONEq(t, `{"cast": [{"id": 819, "name": "Edward Norton"}]}`, string(detail.Credits))
}

func TestClient_Details_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))

	detail, err := client.Details(context.Background(), 99999999, media.TypeMovie)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Genres(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genre/tv/list", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"genres":[{"id":18,"name":"Drama"},{"id":35,"name":"Comedy"}]}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))

	genres, err := client.Genres(context.Background(), media.TypeShow)
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Drama", genres[0].Name)
}

func TestClient_Collection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collection/263", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 263,
			"name": "The Dark Knight Collection",
			"parts": [
				{"id": 272, "title": "Batman Begins", "release_date": "2005-06-10"},
				{"id": 155, "title": "The Dark Knight", "release_date": "2008-07-16"}
			]
		}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))

	collection, err := client.Collection(context.Background(), 263)
	require.NoError(t, err)
	assert.Equal(t, "The Dark Knight Collection", collection.Name)
	require.Len(t, collection.Parts, 2)
	assert.Equal(t, media.TypeMovie, collection.Parts[0].MediaType)
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"accents stripped", "Léon", "Leon"},
		{"whitespace collapsed", "  the   matrix  ", "the matrix"},
		{"case preserved", "Breaking Bad", "Breaking Bad"},
		{"plain ascii untouched", "heat", "heat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuery(tt.input))
		})
	}
}

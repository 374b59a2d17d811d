package sonarr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/scoutarr/pkg/arr"
)

// mockSonarr creates a test server that simulates the Sonarr v3 API.
// Handlers are keyed by path relative to /api/v3.
func mockSonarr(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		const prefix = "/api/v3"
		if len(r.URL.Path) < len(prefix) || r.URL.Path[:len(prefix)] != prefix {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if handler, ok := handlers[r.URL.Path[len(prefix):]]; ok {
			handler(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic("test: failed to encode JSON: " + err.Error())
	}
}

// seriesHandler serves both the tvdbId-filtered library query and the
// full library listing, like Sonarr's /series endpoint.
func seriesHandler(library []Series) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tvdbID := r.URL.Query().Get("tvdbId")
		if tvdbID == "" {
			writeJSON(w, library)
			return
		}
		var matched []Series
		for _, s := range library {
			if tvdbID == jsonNumber(s.TVDBID) {
				matched = append(matched, s)
			}
		}
		writeJSON(w, matched)
	}
}

func jsonNumber(n int64) string {
	data, _ := json.Marshal(n)
	return string(data)
}

func TestAdd(t *testing.T) {
	var posted Series
	srv := mockSonarr(t, map[string]http.HandlerFunc{
		"/series/lookup": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "tmdb:1396", r.URL.Query().Get("term"))
			writeJSON(w, []Series{{
				TVDBID:    81189,
				Title:     "Breaking Bad",
				TitleSlug: "breaking-bad",
				Path:      "/stale/path",
				Seasons: []Season{
					{SeasonNumber: 0, Monitored: true},
					{SeasonNumber: 1, Monitored: true},
					{SeasonNumber: 2, Monitored: true},
				},
			}})
		},
		"/series": func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
				posted.ID = 7
				writeJSON(w, posted)
				return
			}
			writeJSON(w, []Series{})
		},
		"/rootfolder": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, []arr.RootFolder{{ID: 1, Path: "/tv"}})
		},
		"/qualityprofile": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, []arr.QualityProfile{{ID: 6, Name: "HD-1080p"}})
		},
	})
	defer srv.Close()

	client := New(srv.URL, "key")
	created, err := client.Add(context.Background(), 1396, AddRequest{Seasons: []int{2}})
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "/tv", posted.RootFolderPath)
	assert.Equal(t, int64(6), posted.QualityProfileID)
	assert.True(t, posted.Monitored)
	assert.True(t, posted.SeasonFolder)
	assert.Empty(t, posted.Path, "stale lookup path should be dropped")
	require.NotNil(t, posted.AddOptions)
	assert.True(t, posted.AddOptions.SearchForMissingEpisodes)

	// Selection [2]: season 0 and 1 off, season 2 on.
	monitored := make(map[int]bool)
	for _, s := range posted.Seasons {
		monitored[s.SeasonNumber] = s.Monitored
	}
	assert.Equal(t, map[int]bool{0: false, 1: false, 2: true}, monitored)
}

func TestAdd_AlreadyExists(t *testing.T) {
	srv := mockSonarr(t, map[string]http.HandlerFunc{
		"/series/lookup": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, []Series{{TVDBID: 81189, Title: "Breaking Bad"}})
		},
		"/series": seriesHandler([]Series{{ID: 7, TVDBID: 81189, Title: "Breaking Bad"}}),
	})
	defer srv.Close()

	client := New(srv.URL, "key")
	_, err := client.Add(context.Background(), 1396, AddRequest{})
	assert.ErrorIs(t, err, arr.ErrAlreadyExists)
}

func TestAdd_LookupEmpty(t *testing.T) {
	srv := mockSonarr(t, map[string]http.HandlerFunc{
		"/series/lookup": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, []Series{})
		},
	})
	defer srv.Close()

	client := New(srv.URL, "key")
	_, err := client.Add(context.Background(), 99999999, AddRequest{})
	assert.ErrorIs(t, err, arr.ErrNotFound)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		lookup  []Series
		library []Series
		want    arr.Status
	}{
		{
			name: "unresolvable",
			want: arr.StatusNotFound,
		},
		{
			name:   "not in library",
			lookup: []Series{{TVDBID: 81189}},
			want:   arr.StatusNotFound,
		},
		{
			name:   "partially downloaded",
			lookup: []Series{{TVDBID: 81189}},
			library: []Series{{
				ID: 7, TVDBID: 81189,
				Statistics: &SeriesStatistics{PercentOfEpisodes: 46},
			}},
			want: arr.StatusAdded,
		},
		{
			name:   "fully downloaded",
			lookup: []Series{{TVDBID: 81189}},
			library: []Series{{
				ID: 7, TVDBID: 81189,
				Statistics: &SeriesStatistics{PercentOfEpisodes: 100},
			}},
			want: arr.StatusAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := mockSonarr(t, map[string]http.HandlerFunc{
				"/series/lookup": func(w http.ResponseWriter, r *http.Request) {
					writeJSON(w, tt.lookup)
				},
				"/series": seriesHandler(tt.library),
			})
			defer srv.Close()

			client := New(srv.URL, "key")
			status, err := client.Status(context.Background(), 1396)
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestSeasonDetails(t *testing.T) {
	srv := mockSonarr(t, map[string]http.HandlerFunc{
		"/series/lookup": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, []Series{{TVDBID: 81189}})
		},
		"/series": seriesHandler([]Series{{
			ID:     7,
			TVDBID: 81189,
			Title:  "Breaking Bad",
			Seasons: []Season{
				{SeasonNumber: 0, Monitored: false},
				{SeasonNumber: 1, Monitored: true, Statistics: &SeasonStatistics{EpisodeCount: 7, EpisodeFileCount: 7, PercentOfEpisodes: 100}},
				{SeasonNumber: 2, Monitored: true, Statistics: &SeasonStatistics{EpisodeCount: 13, EpisodeFileCount: 6, PercentOfEpisodes: 46}},
				{SeasonNumber: 3, Monitored: false, Statistics: &SeasonStatistics{EpisodeCount: 13}},
			},
		}}),
	})
	defer srv.Close()

	client := New(srv.URL, "key")
	details, err := client.SeasonDetails(context.Background(), 1396)
	require.NoError(t, err)
	require.NotNil(t, details)

	assert.Equal(t, int64(7), details.SonarrID)
	assert.Equal(t, "Breaking Bad", details.Title)
	require.Len(t, details.Seasons, 3, "specials are omitted")

	assert.Equal(t, SeasonDownloaded, details.Seasons[0].Status)
	assert.Equal(t, SeasonMonitored, details.Seasons[1].Status)
	assert.Equal(t, SeasonAvailable, details.Seasons[2].Status)
}

func TestSeasonDetails_NotInLibrary(t *testing.T) {
	srv := mockSonarr(t, map[string]http.HandlerFunc{
		"/series/lookup": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, []Series{{TVDBID: 81189}})
		},
		"/series": seriesHandler(nil),
	})
	defer srv.Close()

	client := New(srv.URL, "key")
	details, err := client.SeasonDetails(context.Background(), 1396)
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestUpdateSeasonMonitoring(t *testing.T) {
	var updated Series
	var searched command
	srv := mockSonarr(t, map[string]http.HandlerFunc{
		"/series/lookup": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, []Series{{TVDBID: 81189}})
		},
		"/series": seriesHandler([]Series{{
			ID:     7,
			TVDBID: 81189,
			Title:  "Breaking Bad",
			Seasons: []Season{
				{SeasonNumber: 0, Monitored: false},
				{SeasonNumber: 1, Monitored: true},
				{SeasonNumber: 2, Monitored: false},
				{SeasonNumber: 3, Monitored: false},
			},
		}}),
		"/series/7": func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPut, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&updated))
			writeJSON(w, updated)
		},
		"/command": func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&searched))
			writeJSON(w, map[string]string{"status": "queued"})
		},
	})
	defer srv.Close()

	client := New(srv.URL, "key")
	// Season 0 in the list must be ignored.
	_, err := client.UpdateSeasonMonitoring(context.Background(), 1396, []int{0, 2, 3})
	require.NoError(t, err)

	monitored := make(map[int]bool)
	for _, s := range updated.Seasons {
		monitored[s.SeasonNumber] = s.Monitored
	}
	// Monitoring is only ever added: season 1 keeps its flag.
	assert.Equal(t, map[int]bool{0: false, 1: true, 2: true, 3: true}, monitored)

	assert.Equal(t, "SeriesSearch", searched.Name)
	assert.Equal(t, int64(7), searched.SeriesID)
}

func TestUpdateSeasonMonitoring_NotInLibrary(t *testing.T) {
	srv := mockSonarr(t, map[string]http.HandlerFunc{
		"/series/lookup": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, []Series{{TVDBID: 81189}})
		},
		"/series": seriesHandler(nil),
	})
	defer srv.Close()

	client := New(srv.URL, "key")
	_, err := client.UpdateSeasonMonitoring(context.Background(), 1396, []int{1})
	assert.ErrorIs(t, err, arr.ErrNotFound)
}

package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_NowPlaying(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/movies/now-playing", r.URL.Path)
		assert.Equal(t, "KR", r.URL.Query().Get("region"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":2,"results":[{"id":603},{"id":550}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	ids, err := client.NowPlaying(context.Background(), "KR", 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{603, 550}, ids)
}

func TestClient_ReleaseDates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/movies/603/release-dates", r.URL.Path)

		resp := releaseDatesResponse{
			ID: 603,
			Results: []RegionReleases{
				{Region: "KR", Dates: []ReleaseDate{
					{Date: "1999-03-31", Type: ReleaseTheatrical, Certification: "15"},
					{Date: "2025-05-02", Type: ReleaseTheatrical},
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	history, err := client.ReleaseDates(context.Background(), 603)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "KR", history[0].Region)
	require.Len(t, history[0].Dates, 2)
	assert.True(t, history[0].Dates[0].Type.IsTheatrical())
}

func TestClient_Seasons(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tv/1396/seasons", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"seasons":[
				{"season_number":0,"air_date":"2009-02-17","poster_path":"/sp.jpg"},
				{"season_number":5,"air_date":"2012-07-15","poster_path":"/s5.jpg"}
			],
			"first_air_date":"2008-01-20",
			"last_air_date":"2013-09-29"
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	list, err := client.Seasons(context.Background(), 1396)
	require.NoError(t, err)
	require.Len(t, list.Seasons, 2)
	assert.Equal(t, 5, list.Seasons[1].SeasonNumber)
	assert.Equal(t, "2013-09-29", list.LastAirDate)
}

func TestClient_TitleMeta(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tv/1396/meta", r.URL.Path)
		assert.Equal(t, "KR", r.URL.Query().Get("region"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"providers":[
				{"provider_name":"Netflix","logo_path":"/n.jpg"},
				{"name":"wavve","logo":"/w.jpg"}
			],
			"certification":"18"
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	meta, err := client.TitleMeta(context.Background(), KindTV, 1396, "KR")
	require.NoError(t, err)
	require.Len(t, meta.Providers, 2)
	assert.Equal(t, "Netflix", meta.Providers[0].ProviderName)
	assert.Equal(t, "wavve", meta.Providers[1].Name)
	assert.Equal(t, "18", meta.Certification)
}

func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.ReleaseDates(context.Background(), 99999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":1}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	ids, err := client.NowPlaying(context.Background(), "KR", 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)
	assert.Equal(t, 2, calls, "503 should be retried")
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("bad-key", WithBaseURL(server.URL))

	_, err := client.NowPlaying(context.Background(), "KR", 1)
	require.Error(t, err)
	assert.Equal(t, 1, calls, "4xx is not transient")
}

package places_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/config"
	"github.com/directory-platform/internal/infrastructure/places"
)

func newTestClient(baseURL string, maxRetries int) *config.PlacesConfig {
	return &config.PlacesConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		RequestTimeout: 2 * time.Second,
		MaxRetries:     maxRetries,
		ResultLimit:    20,
	}
}

func TestSearchPlaces_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/textsearch", r.URL.Path)
		assert.Equal(t, "lawyers in Tampa, FL", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"place_id": "p1", "name": "Tampa Family Law Group", "formatted_address": "123 Main St", "rating": 4.8},
				{"place_id": "p2", "name": "Bayshore Legal"}
			]
		}`))
	}))
	defer server.Close()

	client := places.NewPlacesClient(newTestClient(server.URL, 3), zap.NewNop())

	got, err := client.SearchPlaces(context.Background(), "lawyers in Tampa, FL", 20)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].Ref)
	assert.Equal(t, "Tampa Family Law Group", got[0].Name)
	require.NotNil(t, got[0].Rating)
	assert.Equal(t, 4.8, *got[0].Rating)
	assert.Nil(t, got[1].Rating)
}

func TestSearchPlaces_LimitTruncates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"place_id": "p1", "name": "A"},
				{"place_id": "p2", "name": "B"},
				{"place_id": "p3", "name": "C"}
			]
		}`))
	}))
	defer server.Close()

	client := places.NewPlacesClient(newTestClient(server.URL, 0), zap.NewNop())

	got, err := client.SearchPlaces(context.Background(), "q", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSearchPlaces_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	client := places.NewPlacesClient(newTestClient(server.URL, 0), zap.NewNop())

	got, err := client.SearchPlaces(context.Background(), "q", 20)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchPlaces_RetriesRateLimitAndServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&calls, 1) {
		case 1:
			w.WriteHeader(http.StatusTooManyRequests)
		case 2:
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"status": "OK", "results": [{"place_id": "p1", "name": "A"}]}`))
		}
	}))
	defer server.Close()

	client := places.NewPlacesClient(newTestClient(server.URL, 5), zap.NewNop())

	got, err := client.SearchPlaces(context.Background(), "q", 20)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestSearchPlaces_DoesNotRetryRequestDenied(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "bad key"}`))
	}))
	defer server.Close()

	client := places.NewPlacesClient(newTestClient(server.URL, 5), zap.NewNop())

	_, err := client.SearchPlaces(context.Background(), "q", 20)
	assert.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestSearchPlaces_RetryBudgetExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := places.NewPlacesClient(newTestClient(server.URL, 1), zap.NewNop())

	_, err := client.SearchPlaces(context.Background(), "q", 20)
	assert.Error(t, err)
}

func TestSearchPlaces_EmptyQuery(t *testing.T) {
	client := places.NewPlacesClient(newTestClient("http://unused", 0), zap.NewNop())

	_, err := client.SearchPlaces(context.Background(), "", 20)
	assert.Error(t, err)
}

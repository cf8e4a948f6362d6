package search_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/config"
	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/infrastructure/search"
)

func newTestConfig(baseURL string) *config.SearchConfig {
	return &config.SearchConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		IndexName:      "businesses",
		RequestTimeout: 2 * time.Second,
	}
}

func TestIndexBusinesses(t *testing.T) {
	t.Run("puts documents with auth header", func(t *testing.T) {
		var received []domain.BusinessDocument
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/indexes/businesses/documents", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		client := search.NewSearchClient(newTestConfig(server.URL), zap.NewNop())

		docs := []domain.BusinessDocument{
			{ID: uuid.New(), Name: "Tampa Family Law Group", Category: "Family Law", City: "Tampa"},
		}
		require.NoError(t, client.IndexBusinesses(context.Background(), docs))
		require.Len(t, received, 1)
		assert.Equal(t, "Tampa Family Law Group", received[0].Name)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		client := search.NewSearchClient(newTestConfig("http://unused"), zap.NewNop())
		assert.NoError(t, client.IndexBusinesses(context.Background(), nil))
	})

	t.Run("server error surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := search.NewSearchClient(newTestConfig(server.URL), zap.NewNop())

		err := client.IndexBusinesses(context.Background(), []domain.BusinessDocument{{ID: uuid.New()}})
		assert.Error(t, err)
	})
}

func TestDeleteBusiness(t *testing.T) {
	t.Run("deletes by id", func(t *testing.T) {
		id := uuid.New()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/indexes/businesses/documents/"+id.String(), r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := search.NewSearchClient(newTestConfig(server.URL), zap.NewNop())
		assert.NoError(t, client.DeleteBusiness(context.Background(), id))
	})

	t.Run("missing document is tolerated", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := search.NewSearchClient(newTestConfig(server.URL), zap.NewNop())
		assert.NoError(t, client.DeleteBusiness(context.Background(), uuid.New()))
	})
}

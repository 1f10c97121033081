package search

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"curator/config"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(t *testing.T, handler http.HandlerFunc) service.ProductSearcher {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	searcher, err := NewClient(&config.Config{Relevance: &config.RelevanceConfig{
		SearchBaseURL: server.URL + "/",
		Timeout:       5 * time.Second,
	}}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return searcher
}

var query = entity.SearchCase{
	JobFunction: entity.Facet{ID: 10, Name: "Engineering"},
	Industry:    entity.Facet{ID: 20, Name: "Software"},
	Location:    entity.Facet{ID: 30, Name: "Netherlands"},
}

func TestSearch(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("includeLocationId"))
		assert.Equal(t, "10", r.URL.Query().Get("jobFunctionId"))
		assert.Equal(t, "20", r.URL.Query().Get("industryId"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`{"results": [
			{"product_id": 1, "title": "Dev Jobs NL", "job_functions": [{"id": 10, "name": "Engineering"}],
			 "industries": [], "locations": [{"id": 30, "canonical_name": "Netherlands"}]},
			{"product_id": 2, "title": "Global Board", "job_functions": [], "industries": [{"id": 29, "name": "Generic"}],
			 "locations": [{"id": 2425, "canonical_name": "Global"}]}
		]}`))
	})

	results, err := searcher.Search(context.Background(), query, 50)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, int64(1), results[0].ProductID)
	assert.True(t, results[0].HasJobFunction(10))
	assert.True(t, results[0].HasLocation(30))
	assert.Equal(t, "Netherlands", results[0].Locations[0].Name)
	assert.True(t, results[1].HasIndustry(29))
}

func TestSearch_Status(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := searcher.Search(context.Background(), query, 50)

	assert.ErrorIs(t, err, domainerrors.ErrSearchFailed)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(&config.Config{Relevance: &config.RelevanceConfig{}}, slog.New(slog.DiscardHandler))

	assert.Error(t, err)
}

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadradar/leadradar/internal/model"
	"github.com/leadradar/leadradar/internal/search"
)

type stubFinder struct {
	candidates []model.Candidate
	err        error
}

func (s *stubFinder) TextSearch(ctx context.Context, query string, lat, lng float64, limit int) ([]model.Candidate, error) {
	return s.candidates, s.err
}

func newTestServer(finder *stubFinder) *Server {
	gin.SetMode(gin.TestMode)
	return &Server{
		Orchestrator: search.NewOrchestrator(finder, nil, nil),
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(&stubFinder{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	s.SetupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchRequiresIndustry(t *testing.T) {
	s := newTestServer(&stubFinder{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"lat": 1, "lng": 2}`))
	req.Header.Set("Content-Type", "application/json")

	s.SetupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchReturnsScoredResults(t *testing.T) {
	finder := &stubFinder{candidates: []model.Candidate{
		{PlaceID: "p1", Name: "No Site Salon", Phone: "555", Rating: 4.5, ReviewCount: 10, PhotoCount: 2},
	}}
	s := newTestServer(finder)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search",
		strings.NewReader(`{"industry": "salon", "lat": 30.26, "lng": -97.74, "limit": 5}`))
	req.Header.Set("Content-Type", "application/json")

	s.SetupRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SearchID string               `json:"search_id"`
		Count    int                  `json:"count"`
		Results  []model.SearchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SearchID)
	require.Equal(t, 1, resp.Count)
	result := resp.Results[0]
	assert.Equal(t, "p1", result.Candidate.PlaceID)
	assert.NotZero(t, result.Score.NoWebsite)
	assert.Equal(t, result.Score.Sum(), result.Score.Total)
	assert.NotEmpty(t, result.Opportunities)
}

func TestSearchDiscoveryFailureIsBadGateway(t *testing.T) {
	finder := &stubFinder{err: context.DeadlineExceeded}
	s := newTestServer(finder)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"industry": "cafe"}`))
	req.Header.Set("Content-Type", "application/json")

	s.SetupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSearchPromptWithoutLLMIsNotImplemented(t *testing.T) {
	s := newTestServer(&stubFinder{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search/prompt",
		strings.NewReader(`{"prompt": "dentists near me", "lat": 1, "lng": 2}`))
	req.Header.Set("Content-Type", "application/json")

	s.SetupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

package pricing

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewHandler(newTestEngine(t))
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHandler_GetEstimate(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/fares/estimate", gin.H{
		"service":          ServicePremium,
		"pickup_latitude":  40.5,
		"pickup_longitude": -73.5,
		"dropoff_latitude": 40.73,
		"dropoff_longitude": -73.99,
		"distance_km":      10,
		"duration_minutes": 15,
		"requested_at":     "2025-03-12T14:00:00Z",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	var res PricingResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, ServicePremium, res.Service)
	assert.InDelta(t, 21.40, res.Price, 1e-9)
	assert.Equal(t, ReasonStandard, res.SurgeReason)
}

func TestHandler_GetEstimate_UnsupportedService(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/fares/estimate", gin.H{
		"service":          "helicopter",
		"pickup_latitude":  40.5,
		"pickup_longitude": -73.5,
		"dropoff_latitude": 40.73,
		"dropoff_longitude": -73.99,
		"distance_km":      10,
		"duration_minutes": 15,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "unsupported service")
}

func TestHandler_GetEstimate_ValidationFailure(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/fares/estimate", gin.H{
		"service":         ServicePremium,
		"pickup_latitude": 95.0, // out of range
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CompareFares_SortedByPrice(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/fares/compare", gin.H{
		"pickup_latitude":  40.5,
		"pickup_longitude": -73.5,
		"dropoff_latitude": 40.73,
		"dropoff_longitude": -73.99,
		"distance_km":      10,
		"duration_minutes": 15,
		"requested_at":     "2025-03-12T14:00:00Z",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	var res CompareResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Equal(t, 3, res.Count)
	require.Len(t, res.Results, 3)
	for i := 1; i < len(res.Results); i++ {
		assert.LessOrEqual(t, res.Results[i-1].Price, res.Results[i].Price)
	}
}

func TestHandler_GetSurge(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodGet,
		"/api/v1/fares/surge?pickup_lat=40.6413&pickup_lng=-73.7781&dropoff_lat=40.73&dropoff_lng=-73.99&at=2025-03-12T08:10:00Z", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var res SurgeResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, ReasonPeakAirport, res.Reason)
	assert.InDelta(t, 1.85, res.Multiplier, 1e-9)
}

func TestHandler_GetSurge_BadQuery(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/fares/surge?pickup_lat=abc&pickup_lng=1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/fares/surge", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAirportSurcharge(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodGet,
		"/api/v1/fares/airport-surcharge?pickup_lat=40.6413&pickup_lng=-73.7781&dropoff_lat=40.5&dropoff_lng=-73.5", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var res map[string]bool
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.True(t, res["airport_surcharge"])
}

func TestHandler_GetRecommendations(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/fares/recommendations?at=2025-03-12T08:00:00Z", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var res map[string][]string
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.NotEmpty(t, res["recommendations"])
}

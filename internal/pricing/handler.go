package pricing

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/richxcame/fare-compare/pkg/common"
	"github.com/richxcame/fare-compare/pkg/middleware"
)

// Handler exposes the engine over HTTP for the comparison surface.
type Handler struct {
	engine *Engine
}

// NewHandler creates a new pricing handler.
func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

// FareRequest is the shared trip payload. Coordinates are range-checked, not
// required: out-of-range geofence misses degrade gracefully inside the
// engine, and so do zero or negative distances.
type FareRequest struct {
	PickupLatitude   float64    `json:"pickup_latitude" validate:"gte=-90,lte=90"`
	PickupLongitude  float64    `json:"pickup_longitude" validate:"gte=-180,lte=180"`
	DropoffLatitude  float64    `json:"dropoff_latitude" validate:"gte=-90,lte=90"`
	DropoffLongitude float64    `json:"dropoff_longitude" validate:"gte=-180,lte=180"`
	DistanceKm       float64    `json:"distance_km"`
	DurationMinutes  float64    `json:"duration_minutes"`
	RequestedAt      *time.Time `json:"requested_at,omitempty"`
	ObservedSeconds  *float64   `json:"observed_seconds,omitempty"`
	ExpectedSeconds  *float64   `json:"expected_seconds,omitempty"`
	IncludeDebug     bool       `json:"include_debug,omitempty"`
}

// EstimateRequest prices a single service.
type EstimateRequest struct {
	FareRequest
	Service string `json:"service" validate:"required"`
}

// CompareResponse carries every configured service side by side, cheapest
// first.
type CompareResponse struct {
	Results []*PricingResult `json:"results"`
	Count   int              `json:"count"`
}

func (r *FareRequest) toInput(service string) PricingInput {
	input := PricingInput{
		Service:         service,
		Pickup:          Coordinates{Latitude: r.PickupLatitude, Longitude: r.PickupLongitude},
		Destination:     Coordinates{Latitude: r.DropoffLatitude, Longitude: r.DropoffLongitude},
		DistanceKm:      r.DistanceKm,
		DurationMinutes: r.DurationMinutes,
		ObservedSeconds: r.ObservedSeconds,
		ExpectedSeconds: r.ExpectedSeconds,
		IncludeDebug:    r.IncludeDebug,
	}
	if r.RequestedAt != nil {
		input.RequestedAt = *r.RequestedAt
	}
	return input
}

// CompareFares prices the trip for every configured service.
func (h *Handler) CompareFares(c *gin.Context) {
	var req FareRequest
	if !middleware.ValidateAndBind(c, &req) {
		return
	}

	services := h.engine.Services()
	results := make([]*PricingResult, 0, len(services))
	for _, service := range services {
		res, err := h.engine.CalculateFare(req.toInput(service))
		if err != nil {
			common.ErrorResponse(c, http.StatusInternalServerError, "failed to calculate fares")
			return
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Price != results[j].Price {
			return results[i].Price < results[j].Price
		}
		return results[i].Service < results[j].Service
	})

	common.SuccessResponse(c, CompareResponse{Results: results, Count: len(results)})
}

// GetEstimate prices the trip for one service.
func (h *Handler) GetEstimate(c *gin.Context) {
	var req EstimateRequest
	if !middleware.ValidateAndBind(c, &req) {
		return
	}

	res, err := h.engine.CalculateFare(req.FareRequest.toInput(req.Service))
	if err != nil {
		if errors.Is(err, ErrUnsupportedService) {
			common.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to calculate estimate")
		return
	}

	common.SuccessResponse(c, res)
}

// GetSurge exposes the surge classifier standalone.
func (h *Handler) GetSurge(c *gin.Context) {
	pickup, ok := queryCoordinates(c, "pickup_lat", "pickup_lng")
	if !ok {
		return
	}
	dropoff, ok := queryCoordinates(c, "dropoff_lat", "dropoff_lng")
	if !ok {
		return
	}
	at, ok := queryTime(c, "at")
	if !ok {
		return
	}

	common.SuccessResponse(c, h.engine.CalculateSurge(pickup, dropoff, at))
}

// GetRecommendations returns best-time advisory copy.
func (h *Handler) GetRecommendations(c *gin.Context) {
	at, ok := queryTime(c, "at")
	if !ok {
		return
	}

	common.SuccessResponse(c, gin.H{
		"recommendations": h.engine.BestTimeRecommendations(at),
	})
}

// GetAirportSurcharge reports whether either endpoint is an airport.
func (h *Handler) GetAirportSurcharge(c *gin.Context) {
	pickup, ok := queryCoordinates(c, "pickup_lat", "pickup_lng")
	if !ok {
		return
	}
	dropoff, ok := queryCoordinates(c, "dropoff_lat", "dropoff_lng")
	if !ok {
		return
	}

	common.SuccessResponse(c, gin.H{
		"airport_surcharge": h.engine.HasAirportSurcharge(pickup, dropoff),
	})
}

func queryCoordinates(c *gin.Context, latKey, lngKey string) (Coordinates, bool) {
	latStr := c.Query(latKey)
	lngStr := c.Query(lngKey)
	if latStr == "" || lngStr == "" {
		common.ErrorResponse(c, http.StatusBadRequest, latKey+" and "+lngKey+" are required")
		return Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid "+latKey)
		return Coordinates{}, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid "+lngKey)
		return Coordinates{}, false
	}

	return Coordinates{Latitude: lat, Longitude: lng}, true
}

func queryTime(c *gin.Context, key string) (time.Time, bool) {
	value := c.Query(key)
	if value == "" {
		return time.Time{}, true
	}

	at, err := time.Parse(time.RFC3339, value)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid "+key+", expected RFC3339")
		return time.Time{}, false
	}
	return at, true
}

// RegisterRoutes registers fare routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	fares := rg.Group("/fares")
	{
		fares.POST("/compare", h.CompareFares)
		fares.POST("/estimate", h.GetEstimate)
		fares.GET("/surge", h.GetSurge)
		fares.GET("/recommendations", h.GetRecommendations)
		fares.GET("/airport-surcharge", h.GetAirportSurcharge)
	}
}

package handlers

import (
	"encoding/json"
	"net/http"

	"fleet-ai-service/internal/api/dto"
	"fleet-ai-service/internal/domain"
	"fleet-ai-service/internal/services"

	"go.uber.org/zap"
)

// Fallback coordinates carried over from the historical service
// (lower Manhattan to midtown).
const (
	defaultStartLat = 40.7128
	defaultStartLng = -74.0060
	defaultEndLat   = 40.7580
	defaultEndLng   = -73.9855

	defaultOptimizationType = "FASTEST"
)

type RouteHandler struct {
	Estimator *services.RouteEstimator
	Log       *zap.Logger
}

func (h *RouteHandler) CalculateRoute(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	optimization := req.OptimizationType
	if optimization == "" {
		optimization = defaultOptimizationType
	}

	plan := h.Estimator.Estimate(
		coord(req.StartLatitude, defaultStartLat),
		coord(req.StartLongitude, defaultStartLng),
		coord(req.EndLatitude, defaultEndLat),
		coord(req.EndLongitude, defaultEndLng),
		optimization,
	)

	writeData(w, http.StatusOK, toRoutePlanResponse(plan))
}

func coord(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func toRoutePlanResponse(p *domain.RoutePlan) *dto.RoutePlanResponse {
	points := make([]dto.RoutePointResponse, 0, len(p.RoutePoints))
	for _, pt := range p.RoutePoints {
		points = append(points, dto.RoutePointResponse{
			Latitude:  pt.Latitude,
			Longitude: pt.Longitude,
		})
	}

	return &dto.RoutePlanResponse{
		DistanceKm:           p.DistanceKm,
		RoutePoints:          points,
		EstimatedTimeMinutes: p.EstimatedTimeMinutes,
		OptimizationType:     p.OptimizationType,
		AverageSpeed:         p.AverageSpeed,
		FuelEfficiency:       p.FuelEfficiency,
		RouteQualityScore:    p.RouteQualityScore,
	}
}

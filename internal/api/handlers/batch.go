package handlers

import (
	"encoding/json"
	"net/http"

	"fleet-ai-service/internal/api/dto"
	"fleet-ai-service/internal/services"

	"go.uber.org/zap"
)

type BatchHandler struct {
	Optimizer *services.BatchOptimizer
	Log       *zap.Logger
}

func (h *BatchHandler) BatchOptimize(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchOptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	items := make([]services.BatchItem, 0, len(req.Routes))
	for _, route := range req.Routes {
		optimization := route.OptimizationType
		if optimization == "" {
			optimization = defaultOptimizationType
		}

		items = append(items, services.BatchItem{
			RouteID: route.ID,
			Trip: tripFeaturesFromRequest(
				route.Distance, route.VehicleType, route.IsElectric,
				route.HourOfDay, route.DayOfWeek, route.CurrentSpeed,
			),
			StartLatitude:    coord(route.StartLatitude, defaultStartLat),
			StartLongitude:   coord(route.StartLongitude, defaultStartLng),
			EndLatitude:      coord(route.EndLatitude, defaultEndLat),
			EndLongitude:     coord(route.EndLongitude, defaultEndLng),
			OptimizationType: optimization,
		})
	}

	results := h.Optimizer.Optimize(r.Context(), items)

	out := make([]dto.BatchResultResponse, 0, len(results))
	for _, res := range results {
		entry := dto.BatchResultResponse{RouteID: res.RouteID}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		} else {
			entry.ETA = toETAResponse(res.ETA)
			entry.Route = toRoutePlanResponse(res.Route)
		}
		out = append(out, entry)
	}

	writeData(w, http.StatusOK, out)
}

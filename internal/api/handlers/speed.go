package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"fleet-ai-service/internal/api/dto"
	"fleet-ai-service/internal/services"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SpeedHandler struct {
	Analyzer *services.SpeedAnalyzer
	Log      *zap.Logger
}

func (h *SpeedHandler) SpeedFeedback(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := strconv.ParseInt(chi.URLParam(r, "vehicleID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "vehicleID must be an integer")
		return
	}

	report, err := h.Analyzer.Analyze(r.Context(), vehicleID)
	if err != nil {
		if errors.Is(err, services.ErrDataUnavailable) {
			h.Log.Warn("speed feedback data unavailable", zap.Int64("vehicle_id", vehicleID), zap.Error(err))
			writeError(w, http.StatusServiceUnavailable, "trip data unavailable")
			return
		}
		h.Log.Error("speed feedback failed", zap.Int64("vehicle_id", vehicleID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeData(w, http.StatusOK, &dto.SpeedReportResponse{
		VehicleID:     report.VehicleID,
		AvgSpeed:      report.AvgSpeed,
		MaxSpeed:      report.MaxSpeed,
		MinSpeed:      report.MinSpeed,
		SpeedVariance: report.SpeedVariance,
		SpeedTrend:    report.SpeedTrend,
		Feedback:      report.Feedback,
		TripsAnalyzed: report.TripsAnalyzed,
	})
}

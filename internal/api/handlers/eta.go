package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fleet-ai-service/internal/api/dto"
	"fleet-ai-service/internal/domain"
	"fleet-ai-service/internal/services"

	"go.uber.org/zap"
)

// Request defaults carried over from the historical service: absent fields
// get these, explicit zeroes are validated downstream.
const (
	defaultDistance     = 10.0
	defaultVehicleType  = "SEDAN"
	defaultCurrentSpeed = 30.0
)

type ETAHandler struct {
	Predictor *services.Predictor
	Log       *zap.Logger
}

func (h *ETAHandler) PredictETA(w http.ResponseWriter, r *http.Request) {
	var req dto.PredictETARequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	pred, err := h.Predictor.Predict(tripFeaturesFromRequest(
		req.Distance, req.VehicleType, req.IsElectric,
		req.HourOfDay, req.DayOfWeek, req.CurrentSpeed,
	))
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("predict eta failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "prediction unavailable")
		return
	}

	writeData(w, http.StatusOK, toETAResponse(pred))
}

// tripFeaturesFromRequest applies the request defaults shared by the
// single and batch prediction endpoints.
func tripFeaturesFromRequest(distance *float64, vehicleType string, isElectric bool, hourOfDay, dayOfWeek *int, currentSpeed *float64) services.TripFeatures {
	now := time.Now()

	f := services.TripFeatures{
		Distance:    defaultDistance,
		VehicleType: vehicleType,
		IsElectric:  isElectric,
		HourOfDay:   now.Hour(),
		DayOfWeek:   int(now.Weekday()) + 1,
		Speed:       defaultCurrentSpeed,
	}
	if f.VehicleType == "" {
		f.VehicleType = defaultVehicleType
	}
	if distance != nil {
		f.Distance = *distance
	}
	if hourOfDay != nil {
		f.HourOfDay = *hourOfDay
	}
	if dayOfWeek != nil {
		f.DayOfWeek = *dayOfWeek
	}
	if currentSpeed != nil {
		f.Speed = *currentSpeed
	}
	return f
}

func toETAResponse(p *domain.ETAPrediction) *dto.ETAResponse {
	return &dto.ETAResponse{
		EstimatedDurationMinutes: p.EstimatedDurationMinutes,
		EstimatedDurationHours:   p.EstimatedDurationHours,
		ConfidenceInterval:       p.ConfidenceInterval,
		MinDuration:              p.MinDuration,
		MaxDuration:              p.MaxDuration,
		CurrentSpeed:             p.CurrentSpeed,
		RecommendedSpeed:         p.RecommendedSpeed,
	}
}

package handlers

import (
	"errors"
	"net/http"

	"fleet-ai-service/internal/services"

	"go.uber.org/zap"
)

type TrainHandler struct {
	Predictor *services.Predictor
	Log       *zap.Logger
}

func (h *TrainHandler) RetrainModel(w http.ResponseWriter, r *http.Request) {
	if err := h.Predictor.Retrain(r.Context()); err != nil {
		if errors.Is(err, services.ErrRetrainInProgress) {
			writeError(w, http.StatusConflict, "a retrain is already running")
			return
		}
		h.Log.Error("retrain failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "retrain failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "model retrained successfully",
	})
}

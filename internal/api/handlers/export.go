package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"fleet-ai-service/internal/services"

	"go.uber.org/zap"
)

type ExportHandler struct {
	Exporter *services.Exporter
	Log      *zap.Logger
}

func (h *ExportHandler) ExportRouteData(w http.ResponseWriter, r *http.Request) {
	filename := sanitizeFilename(r.URL.Query().Get("filename"))

	// Build the document before touching the response so a storage failure
	// can still produce a proper error status.
	var buf bytes.Buffer
	rows, err := h.Exporter.Export(r.Context(), &buf)
	if err != nil {
		if errors.Is(err, services.ErrDataUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "route data unavailable")
			return
		}
		h.Log.Error("export route data failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.Log.Info("route data exported", zap.Int("rows", rows), zap.String("filename", filename))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// sanitizeFilename strips any path components from the caller-supplied name
// and forces a .csv extension; an empty name gets a timestamped default.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "route_data_" + time.Now().Format("20060102_150405") + ".csv"
	}
	if !strings.HasSuffix(name, ".csv") {
		name += ".csv"
	}
	return name
}

package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"fleet-ai-service/internal/domain"
	"fleet-ai-service/internal/platform/obs"
	"fleet-ai-service/internal/ports"

	"go.uber.org/zap"
)

var exportHeader = []string{
	"id", "start_location", "end_location", "distance",
	"estimated_duration", "actual_duration", "optimization_type", "created_at",
	"vehicle_number", "vehicle_type", "manufacturer", "model",
	"duration_accuracy", "efficiency_score",
}

// Exporter streams route history as CSV, deriving per-row accuracy and
// efficiency columns from the estimated vs. actual durations.
type Exporter struct {
	repo ports.TripRepository
	log  *zap.Logger
}

func NewExporter(repo ports.TripRepository, log *zap.Logger) *Exporter {
	return &Exporter{repo: repo, log: log}
}

// Export writes the CSV to w and returns the number of data rows written.
// Rows missing an actual duration get blank derived columns rather than
// being dropped.
func (e *Exporter) Export(ctx context.Context, w io.Writer) (n int, err error) {
	defer obs.Time(e.log, "export_route_data")(&err)

	rows, err := e.repo.FetchRouteExportRows(ctx)
	if err != nil {
		return 0, fmt.Errorf("export route data: %w: %v", ErrDataUnavailable, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("export route data: write header: %w", err)
	}

	for _, row := range rows {
		if err := cw.Write(exportRecord(row)); err != nil {
			return n, fmt.Errorf("export route data: write row %d: %w", row.ID, err)
		}
		n++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return n, fmt.Errorf("export route data: flush: %w", err)
	}
	return n, nil
}

func exportRecord(row domain.RouteExportRow) []string {
	actual, accuracy, efficiency := "", "", ""
	if row.ActualDuration != nil {
		actual = formatFloat(*row.ActualDuration)
		if row.EstimatedDuration != 0 {
			// Signed percentage deviation from the estimate, and a 0-100
			// score penalizing deviation in either direction.
			acc := (*row.ActualDuration - row.EstimatedDuration) / row.EstimatedDuration * 100
			eff := math.Min(math.Max(100-math.Abs(acc), 0), 100)
			accuracy = formatFloat(round2(acc))
			efficiency = formatFloat(round2(eff))
		}
	}

	return []string{
		strconv.FormatInt(row.ID, 10),
		row.StartLocation,
		row.EndLocation,
		formatFloat(row.Distance),
		formatFloat(row.EstimatedDuration),
		actual,
		row.OptimizationType,
		row.CreatedAt.Format(time.RFC3339),
		deref(row.VehicleNumber),
		deref(row.VehicleType),
		deref(row.Manufacturer),
		deref(row.Model),
		accuracy,
		efficiency,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

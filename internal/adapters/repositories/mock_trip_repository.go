package repositories

import (
	"context"

	"fleet-ai-service/internal/domain"
)

// In-memory TripRepository for tests. Err, when set, is returned by every
// method to simulate an unreachable store.
type MockTripRepository struct {
	Trips      []domain.TripRecord
	Speeds     map[int64][]float64
	ExportRows []domain.RouteExportRow
	Err        error
}

func (m *MockTripRepository) FetchHistoricalTrips(ctx context.Context) ([]domain.TripRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Trips, nil
}

func (m *MockTripRepository) FetchRecentSpeeds(ctx context.Context, vehicleID int64) ([]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Speeds[vehicleID], nil
}

func (m *MockTripRepository) FetchRouteExportRows(ctx context.Context) ([]domain.RouteExportRow, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.ExportRows, nil
}

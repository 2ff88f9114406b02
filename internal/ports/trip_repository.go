package ports

import (
	"context"

	"fleet-ai-service/internal/domain"
)

// Port: a boundary for retrieving trip history from the relational store.
// The core never issues queries itself; adapters own the SQL.
type TripRepository interface {
	// Retrieve completed trips with positive distance and duration,
	// joined with their booking and vehicle attributes.
	FetchHistoricalTrips(ctx context.Context) ([]domain.TripRecord, error)

	// Retrieve up to the 50 most recent trip speeds for a vehicle,
	// most-recent-first. Null speeds are omitted.
	FetchRecentSpeeds(ctx context.Context, vehicleID int64) ([]float64, error)

	// Retrieve route history rows for CSV export, newest first.
	FetchRouteExportRows(ctx context.Context) ([]domain.RouteExportRow, error)
}

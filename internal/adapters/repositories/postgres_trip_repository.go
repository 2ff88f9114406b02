package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleet-ai-service/internal/domain"
)

// Postgres-backed implementation of the TripRepository port.
type PostgresTripRepository struct{ DB *sql.DB }

func NewPostgresTripRepository(db *sql.DB) *PostgresTripRepository {
	return &PostgresTripRepository{DB: db}
}

// Return completed trips with positive distance and duration, joined with
// booking and vehicle attributes.
func (r *PostgresTripRepository) FetchHistoricalTrips(ctx context.Context) ([]domain.TripRecord, error) {
	if r.DB == nil {
		return nil, errors.New("postgres trip repository: DB is nil")
	}

	query := `
	SELECT
		t.distance,
		t.duration,
		t.start_time,
		t.end_time,
		v.type,
		v.is_electric,
		COALESCE(v.speed, 0)
	FROM trips t
	JOIN bookings b ON t.booking_id = b.id
	JOIN vehicles v ON b.vehicle_id = v.id
	WHERE t.end_time IS NOT NULL
	  AND t.distance > 0
	  AND t.duration > 0;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch historical trips: query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.TripRecord, 0, 64)
	for rows.Next() {
		var rec domain.TripRecord
		err := rows.Scan(&rec.Distance, &rec.Duration, &rec.StartTime, &rec.EndTime,
			&rec.VehicleType, &rec.IsElectric, &rec.Speed)
		if err != nil {
			return nil, fmt.Errorf("fetch historical trips: scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch historical trips: row iteration: %w", err)
	}

	return records, nil
}

// Return up to the 50 most recent trip speeds for a vehicle,
// most-recent-first. Null speeds are dropped during the scan.
func (r *PostgresTripRepository) FetchRecentSpeeds(ctx context.Context, vehicleID int64) ([]float64, error) {
	if r.DB == nil {
		return nil, errors.New("postgres trip repository: DB is nil")
	}

	query := `
	SELECT v.speed
	FROM trips t
	JOIN bookings b ON t.booking_id = b.id
	JOIN vehicles v ON b.vehicle_id = v.id
	WHERE b.vehicle_id = $1
	ORDER BY t.start_time DESC
	LIMIT 50;
	`
	rows, err := r.DB.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("fetch recent speeds: query for vehicle %d: %w", vehicleID, err)
	}
	defer rows.Close()

	speeds := make([]float64, 0, 50)
	for rows.Next() {
		var speed sql.NullFloat64
		if err := rows.Scan(&speed); err != nil {
			return nil, fmt.Errorf("fetch recent speeds: scan row: %w", err)
		}
		if speed.Valid {
			speeds = append(speeds, speed.Float64)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch recent speeds: row iteration: %w", err)
	}

	return speeds, nil
}

// Return route history rows for CSV export, newest first. Vehicle columns
// come from a LEFT JOIN and may be null.
func (r *PostgresTripRepository) FetchRouteExportRows(ctx context.Context) ([]domain.RouteExportRow, error) {
	if r.DB == nil {
		return nil, errors.New("postgres trip repository: DB is nil")
	}

	query := `
	SELECT
		r.id,
		r.start_location,
		r.end_location,
		r.distance,
		r.estimated_duration,
		r.actual_duration,
		r.optimization_type,
		r.created_at,
		v.vehicle_number,
		v.type,
		v.manufacturer,
		v.model
	FROM routes r
	LEFT JOIN vehicles v ON r.vehicle_id = v.id
	ORDER BY r.created_at DESC;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch route export rows: query: %w", err)
	}
	defer rows.Close()

	out := make([]domain.RouteExportRow, 0, 64)
	for rows.Next() {
		var row domain.RouteExportRow
		err := rows.Scan(&row.ID, &row.StartLocation, &row.EndLocation, &row.Distance,
			&row.EstimatedDuration, &row.ActualDuration, &row.OptimizationType, &row.CreatedAt,
			&row.VehicleNumber, &row.VehicleType, &row.Manufacturer, &row.Model)
		if err != nil {
			return nil, fmt.Errorf("fetch route export rows: scan row: %w", err)
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch route export rows: row iteration: %w", err)
	}

	return out, nil
}

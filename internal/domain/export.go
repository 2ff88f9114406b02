package domain

import "time"

// One row of the route history export. Vehicle columns and the actual
// duration come from a LEFT JOIN and may be absent.
type RouteExportRow struct {
	ID                int64
	StartLocation     string
	EndLocation       string
	Distance          float64
	EstimatedDuration float64
	ActualDuration    *float64
	OptimizationType  string
	CreatedAt         time.Time
	VehicleNumber     *string
	VehicleType       *string
	Manufacturer      *string
	Model             *string
}

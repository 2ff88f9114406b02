package dto

type CalculateRouteRequest struct {
	StartLatitude    *float64 `json:"startLatitude"`
	StartLongitude   *float64 `json:"startLongitude"`
	EndLatitude      *float64 `json:"endLatitude"`
	EndLongitude     *float64 `json:"endLongitude"`
	OptimizationType string   `json:"optimizationType"`
}

type RoutePointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RoutePlanResponse struct {
	DistanceKm           float64              `json:"distance_km"`
	RoutePoints          []RoutePointResponse `json:"route_points"`
	EstimatedTimeMinutes float64              `json:"estimated_time_minutes"`
	OptimizationType     string               `json:"optimization_type"`
	AverageSpeed         float64              `json:"average_speed"`
	FuelEfficiency       float64              `json:"fuel_efficiency"`
	RouteQualityScore    float64              `json:"route_quality_score"`
}

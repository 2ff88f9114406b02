package domain

// A single point on a synthesized route.
type RoutePoint struct {
	Latitude  float64
	Longitude float64
}

// Represents a synthesized route between two coordinates.
// A RoutePlan is the output of the route estimator and describes an
// approximate straight-line path with policy-dependent speed and efficiency
// metrics. It is display/estimation data, not turn-by-turn navigation.
type RoutePlan struct {
	DistanceKm           float64
	RoutePoints          []RoutePoint
	EstimatedTimeMinutes float64
	OptimizationType     string
	AverageSpeed         float64
	FuelEfficiency       float64
	RouteQualityScore    float64
}

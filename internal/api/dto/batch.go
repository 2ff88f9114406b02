package dto

// One entry of a batch optimization request; mirrors the predict-eta and
// calculate-route bodies plus a caller-chosen id echoed back in the result.
type BatchRouteRequest struct {
	ID               any      `json:"id"`
	Distance         *float64 `json:"distance"`
	VehicleType      string   `json:"vehicleType"`
	IsElectric       bool     `json:"isElectric"`
	HourOfDay        *int     `json:"hourOfDay"`
	DayOfWeek        *int     `json:"dayOfWeek"`
	CurrentSpeed     *float64 `json:"currentSpeed"`
	StartLatitude    *float64 `json:"startLatitude"`
	StartLongitude   *float64 `json:"startLongitude"`
	EndLatitude      *float64 `json:"endLatitude"`
	EndLongitude     *float64 `json:"endLongitude"`
	OptimizationType string   `json:"optimizationType"`
}

type BatchOptimizeRequest struct {
	Routes []BatchRouteRequest `json:"routes"`
}

type BatchResultResponse struct {
	RouteID any                `json:"route_id"`
	ETA     *ETAResponse       `json:"eta,omitempty"`
	Route   *RoutePlanResponse `json:"route,omitempty"`
	Error   string             `json:"error,omitempty"`
}

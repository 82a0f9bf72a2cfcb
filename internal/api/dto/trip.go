package dto

import "time"

type CreateTripRequest struct {
	StartLocation         string     `json:"start_location"`
	PickupLocation        string     `json:"pickup_location"`
	DropoffLocation       string     `json:"dropoff_location"`
	StartTime             *time.Time `json:"start_time"`
	CurrentCycleHoursUsed *float64   `json:"current_cycle_hours_used"`
}

type TripResponse struct {
	ID                    string    `json:"id"`
	StartLocation         string    `json:"start_location"`
	PickupLocation        string    `json:"pickup_location"`
	DropoffLocation       string    `json:"dropoff_location"`
	StartTime             time.Time `json:"start_time"`
	CurrentCycleHoursUsed float64   `json:"current_cycle_hours_used"`
	DistanceMiles         float64   `json:"distance_miles"`
	DurationHours         float64   `json:"duration_hours"`
	RouteData             RouteData `json:"route_data"`
}

// Route geometry as [lat, lon] pairs.
type RouteData struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type CreateTripResponse struct {
	Trip    TripResponse     `json:"trip"`
	ELDLogs []ELDLogResponse `json:"eld_logs"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}

package dto

import "time"

type ELDLogResponse struct {
	ID          string    `json:"id"`
	Trip        string    `json:"trip"`
	Timestamp   time.Time `json:"timestamp"`
	Timespent   float64   `json:"timespent"` // minutes
	Status      string    `json:"status"`
	Action      string    `json:"action"`
	Coordinates []float64 `json:"coordinates"` // [lat, lon]
}

type ListELDLogsResponse struct {
	ELDLogs []ELDLogResponse `json:"eld_logs"`
}

package services

import (
	"math"
	"time"
)

const quarterHour = 15 * time.Minute

// RoundUpToQuarterHour converts a duration in hours to minutes and rounds it
// up to the next 15-minute mark. Exact quarter hours are returned unchanged.
func RoundUpToQuarterHour(hours float64) time.Duration {
	minutes := math.Ceil(hours*60/15) * 15
	return time.Duration(minutes) * time.Minute
}

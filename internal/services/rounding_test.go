package services

import (
	"testing"
	"time"
)

func TestRoundUpToQuarterHour(t *testing.T) {
	tests := []struct {
		hours float64
		want  time.Duration
	}{
		{hours: 0, want: 0},
		{hours: 0.25, want: 15 * time.Minute},
		{hours: 2, want: 2 * time.Hour},
		{hours: 2.01, want: 2*time.Hour + 15*time.Minute},
		{hours: 1.1, want: time.Hour + 15*time.Minute},
		{hours: 1000.0 / 55, want: 1095 * time.Minute},
	}

	for _, tc := range tests {
		if got := RoundUpToQuarterHour(tc.hours); got != tc.want {
			t.Errorf("RoundUpToQuarterHour(%v) = %s, want %s", tc.hours, got, tc.want)
		}
	}
}

func TestRoundUpToQuarterHourIdempotent(t *testing.T) {
	for _, hours := range []float64{0.1, 3.33, 7.5, 18.18, 42.01} {
		once := RoundUpToQuarterHour(hours)
		twice := RoundUpToQuarterHour(once.Hours())
		if once != twice {
			t.Errorf("hours=%v: once=%s twice=%s", hours, once, twice)
		}
		if once%quarterHour != 0 {
			t.Errorf("hours=%v: %s is not a quarter hour multiple", hours, once)
		}
	}
}

func TestRefuelInterval(t *testing.T) {
	if RefuelInterval != 1095*time.Minute {
		t.Fatalf("RefuelInterval = %s, want 18h15m", RefuelInterval)
	}
}

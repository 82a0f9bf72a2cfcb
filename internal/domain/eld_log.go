package domain

import (
	"time"

	"github.com/google/uuid"
)

// Duty status recorded on a driver's log.
type DutyStatus string

const (
	StatusOffDuty      DutyStatus = "OFF_DUTY"
	StatusSleeperBerth DutyStatus = "SLEEPER_BERTH"
	StatusDriving      DutyStatus = "DRIVING"
	StatusOnDuty       DutyStatus = "ON_DUTY"
)

func (s DutyStatus) Valid() bool {
	switch s {
	case StatusOffDuty, StatusSleeperBerth, StatusDriving, StatusOnDuty:
		return true
	}
	return false
}

// Reason a log entry was written.
type Action string

const (
	ActionPreCheck Action = "PRE_CHECK"
	ActionDriving  Action = "DRIVING"
	ActionPickup   Action = "PICKUP"
	ActionBreak    Action = "BREAK"
	ActionFuelStop Action = "FUEL_STOP"
	ActionRestStop Action = "REST_STOP"
	ActionOffDays  Action = "OFF_DAYS"
	ActionDropOff  Action = "DROP_OFF"
	ActionDone     Action = "DONE"
)

func (a Action) Valid() bool {
	switch a {
	case ActionPreCheck, ActionDriving, ActionPickup, ActionBreak, ActionFuelStop,
		ActionRestStop, ActionOffDays, ActionDropOff, ActionDone:
		return true
	}
	return false
}

// A single duty-status record produced by the schedule simulator.
// Entries are emitted in chronological order and never revised.
type LogEntry struct {
	Timestamp time.Time
	TimeSpent time.Duration
	Status    DutyStatus
	Action    Action
	Location  Coordinates
}

// A LogEntry once it has been persisted against a trip.
type ELDLog struct {
	ID     uuid.UUID
	TripID uuid.UUID
	LogEntry
}

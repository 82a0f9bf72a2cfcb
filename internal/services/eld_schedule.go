package services

import (
	"eld-trip-service/internal/domain"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoWaypoints  = errors.New("route has no waypoints")
	ErrInvalidDrive = errors.New("invalid drive durations")
)

// ScheduleParams are the already-resolved inputs of one schedule run.
// Drive durations are multiples of 15 minutes.
type ScheduleParams struct {
	StartTime      time.Time
	CycleHoursUsed float64
	PickupDrive    time.Duration
	TotalDrive     time.Duration
	Waypoints      []domain.Coordinates
}

// stopRule is a mandatory stop checked after each driving segment.
type stopRule struct {
	action   domain.Action
	status   domain.DutyStatus
	duration time.Duration
	due      func(*DutyBudgets) bool
	reset    func(*DutyBudgets)
}

// Checked in this order after every drive. Several may fire after the same drive.
var stopRules = []stopRule{
	{domain.ActionPickup, domain.StatusOnDuty, PickupDuration, (*DutyBudgets).pickupDue, (*DutyBudgets).markPickedUp},
	{domain.ActionBreak, domain.StatusOffDuty, BreakDuration, (*DutyBudgets).breakDue, (*DutyBudgets).resetBreak},
	{domain.ActionFuelStop, domain.StatusOnDuty, FuelStopDuration, (*DutyBudgets).refuelDue, (*DutyBudgets).resetRefuel},
	{domain.ActionRestStop, domain.StatusSleeperBerth, RestDuration, (*DutyBudgets).restDue, (*DutyBudgets).resetRest},
	{domain.ActionOffDays, domain.StatusOffDuty, CycleResetDuration, (*DutyBudgets).cycleResetDue, (*DutyBudgets).resetCycle},
}

// GenerateSchedule simulates a trip and returns its duty-status log.
//
// The simulation is greedy: each iteration drives as far as the most urgent
// budget allows, then inserts whichever mandatory stops are now due. It is a
// pure function of its inputs and safe to call concurrently.
func GenerateSchedule(p ScheduleParams) ([]domain.LogEntry, error) {
	if len(p.Waypoints) == 0 {
		return nil, fmt.Errorf("generate schedule: %w", ErrNoWaypoints)
	}
	if p.TotalDrive < 0 || p.PickupDrive < 0 || p.PickupDrive > p.TotalDrive {
		return nil, fmt.Errorf(
			"generate schedule: %w: pickup=%s total=%s",
			ErrInvalidDrive, p.PickupDrive, p.TotalDrive,
		)
	}

	budgets := NewDutyBudgets(p.TotalDrive, p.PickupDrive, p.CycleHoursUsed)
	clock := p.StartTime.Round(quarterHour)
	location := p.Waypoints[0]

	logs := make([]domain.LogEntry, 0, 8)
	emit := func(spent time.Duration, status domain.DutyStatus, action domain.Action) {
		logs = append(logs, domain.LogEntry{
			Timestamp: clock,
			TimeSpent: spent,
			Status:    status,
			Action:    action,
			Location:  location,
		})
	}

	// The inspection is logged with no time spent, but the clock still moves.
	emit(0, domain.StatusOnDuty, domain.ActionPreCheck)
	clock = clock.Add(PreTripInspection)

	for budgets.Driving() {
		drive := budgets.MaxDrive()
		budgets.Advance(drive)

		emit(drive, domain.StatusDriving, domain.ActionDriving)
		location = RoutePosition(p.Waypoints, p.TotalDrive, p.TotalDrive-budgets.RemainingDrive)
		clock = clock.Add(drive)

		for _, rule := range stopRules {
			if !rule.due(budgets) {
				continue
			}
			emit(rule.duration, rule.status, rule.action)
			clock = clock.Add(rule.duration)
			rule.reset(budgets)
		}
	}

	emit(DropOffDuration, domain.StatusOnDuty, domain.ActionDropOff)
	clock = clock.Add(DropOffDuration)
	emit(0, domain.StatusOffDuty, domain.ActionDone)

	return logs, nil
}

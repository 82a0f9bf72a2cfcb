package services

import "time"

// Hours-of-service limits, expressed as driving time before the event is due
// and the time the resulting stop takes.
const (
	BreakInterval      = 8 * time.Hour
	BreakDuration      = 30 * time.Minute
	RestInterval       = 11 * time.Hour
	RestDuration       = 10 * time.Hour
	CycleLimit         = 70 * time.Hour
	CycleResetDuration = 34 * time.Hour
	FuelStopDuration   = 30 * time.Minute
	PickupDuration     = time.Hour
	DropOffDuration    = time.Hour
	PreTripInspection  = 30 * time.Minute

	fuelRangeMiles  = 1000
	averageSpeedMPH = 55
)

// RefuelInterval is the driving time covered by one tank (1000 miles at 55 mph),
// rounded up to the quarter hour.
var RefuelInterval = RoundUpToQuarterHour(fuelRangeMiles / float64(averageSpeedMPH))

// DutyBudgets holds the countdowns of one schedule run. Every field is the
// driving time left before the matching event fires.
//
// A DutyBudgets value belongs to a single run and is not safe for concurrent use.
type DutyBudgets struct {
	RemainingDrive  time.Duration
	UntilBreak      time.Duration
	UntilRest       time.Duration
	UntilCycleReset time.Duration
	UntilRefuel     time.Duration
	UntilPickup     time.Duration
	PickedUp        bool
}

func NewDutyBudgets(totalDrive, pickupDrive time.Duration, cycleHoursUsed float64) *DutyBudgets {
	return &DutyBudgets{
		RemainingDrive:  totalDrive,
		UntilBreak:      BreakInterval,
		UntilRest:       RestInterval,
		UntilCycleReset: CycleLimit - time.Duration(cycleHoursUsed*float64(time.Hour)),
		UntilRefuel:     RefuelInterval,
		UntilPickup:     pickupDrive,
	}
}

// MaxDrive returns the longest drive allowed before the most urgent budget fires.
// The pickup countdown only counts until the load has been picked up. A budget
// that is already overdue yields zero rather than a negative drive.
func (b *DutyBudgets) MaxDrive() time.Duration {
	d := min(b.UntilBreak, b.UntilRest, b.UntilCycleReset, b.UntilRefuel, b.RemainingDrive)
	if !b.PickedUp {
		d = min(d, b.UntilPickup)
	}
	return max(d, 0)
}

// Advance spends d of driving against every budget.
// UntilPickup keeps counting down after pickup; it is no longer read.
func (b *DutyBudgets) Advance(d time.Duration) {
	b.RemainingDrive -= d
	b.UntilBreak -= d
	b.UntilRest -= d
	b.UntilPickup -= d
	b.UntilCycleReset -= d
	b.UntilRefuel -= d
}

func (b *DutyBudgets) Driving() bool { return b.RemainingDrive > 0 }

func (b *DutyBudgets) pickupDue() bool { return !b.PickedUp && b.UntilPickup <= 0 }

func (b *DutyBudgets) breakDue() bool { return b.UntilBreak <= 0 && b.Driving() }

func (b *DutyBudgets) refuelDue() bool { return b.UntilRefuel <= 0 && b.Driving() }

func (b *DutyBudgets) restDue() bool { return b.UntilRest <= 0 && b.Driving() }

func (b *DutyBudgets) cycleResetDue() bool { return b.UntilCycleReset <= 0 && b.Driving() }

func (b *DutyBudgets) markPickedUp() { b.PickedUp = true }

func (b *DutyBudgets) resetBreak() { b.UntilBreak = BreakInterval }

func (b *DutyBudgets) resetRefuel() { b.UntilRefuel = RefuelInterval }

func (b *DutyBudgets) resetRest() { b.UntilRest = RestInterval }

// A 34-hour reset restarts the break, rest and cycle clocks. The tank is unchanged.
func (b *DutyBudgets) resetCycle() {
	b.UntilBreak = BreakInterval
	b.UntilRest = RestInterval
	b.UntilCycleReset = CycleLimit
}

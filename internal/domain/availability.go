package domain

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// TimeSlot candidate reservation start time
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}

// DayAvailability availability of one restaurant for one date and party size
type DayAvailability struct {
	Date       time.Time
	GuestCount int
	IsOpen     bool
	OpenTime   *types.TimeString
	CloseTime  *types.TimeString

	TotalSlots     int
	AvailableSlots int
	TimeSlots      []TimeSlot

	ClosureReason   *string
	SpecialPeriodID *int64 // особый период, определивший часы работы
}

// AvailableTimes returns start times of available slots in order
func (d *DayAvailability) AvailableTimes() []types.TimeString {
	times := make([]types.TimeString, 0, d.AvailableSlots)
	for _, s := range d.TimeSlots {
		if s.Available {
			times = append(times, s.Time)
		}
	}
	return times
}

// IsFullyBooked returns true if the restaurant is open but no slot is available
func (d *DayAvailability) IsFullyBooked() bool {
	return d.IsOpen && d.AvailableSlots == 0
}

// Day outcomes
const (
	OutcomeClosed      = "closed"
	OutcomeFullyBooked = "fully_booked"
	OutcomeAvailable   = "available"
)

// Outcome returns a short summary of the day: closed, fully_booked or available
func (d *DayAvailability) Outcome() string {
	switch {
	case !d.IsOpen:
		return OutcomeClosed
	case d.AvailableSlots == 0:
		return OutcomeFullyBooked
	default:
		return OutcomeAvailable
	}
}

package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TableBookingService/pkg/ptr"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

func date(s string) time.Time {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBooking_EffectiveEnd(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   *types.TimeString
		want  string
	}{
		{name: "default duration", start: "19:00", want: "20:00"},
		{name: "explicit end", start: "19:00", end: ptr.Ptr(types.MustTimeString("21:30")), want: "21:30"},
		{name: "default clamped to end of day", start: "23:30", want: "24:00"},
		{name: "end before start means past midnight", start: "23:00", end: ptr.Ptr(types.MustTimeString("01:00")), want: "24:00"},
		{name: "end equal to start", start: "12:00", end: ptr.Ptr(types.MustTimeString("12:00")), want: "24:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{StartTime: types.MustTimeString(tt.start), EndTime: tt.end}
			assert.Equal(t, tt.want, b.EffectiveEnd(DefaultBookingMinutes).String())
		})
	}
}

func TestBooking_Occupies(t *testing.T) {
	b := &Booking{StartTime: types.MustTimeString("09:00"), EndTime: ptr.Ptr(types.MustTimeString("10:00"))}

	assert.False(t, b.Occupies(types.MustTimeString("08:30"), DefaultBookingMinutes))
	assert.True(t, b.Occupies(types.MustTimeString("09:00"), DefaultBookingMinutes))
	assert.True(t, b.Occupies(types.MustTimeString("09:30"), DefaultBookingMinutes))
	assert.False(t, b.Occupies(types.MustTimeString("10:00"), DefaultBookingMinutes))
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusSeated}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusNoShow}).IsActive())
}

func TestSpecialPeriod_Covers(t *testing.T) {
	p := &SpecialPeriod{StartDate: date("2024-12-24"), EndDate: date("2024-12-26")}

	assert.False(t, p.Covers(date("2024-12-23")))
	assert.True(t, p.Covers(date("2024-12-24")))
	assert.True(t, p.Covers(date("2024-12-25").Add(22*time.Hour)))
	assert.True(t, p.Covers(date("2024-12-26")))
	assert.False(t, p.Covers(date("2024-12-27")))
}

func TestSpecialPeriod_Overlaps(t *testing.T) {
	base := &SpecialPeriod{StartDate: date("2024-12-24"), EndDate: date("2024-12-26")}

	assert.True(t, base.Overlaps(&SpecialPeriod{StartDate: date("2024-12-26"), EndDate: date("2024-12-31")}))
	assert.True(t, base.Overlaps(&SpecialPeriod{StartDate: date("2024-12-20"), EndDate: date("2024-12-24")}))
	assert.True(t, base.Overlaps(&SpecialPeriod{StartDate: date("2024-12-25"), EndDate: date("2024-12-25")}))
	assert.False(t, base.Overlaps(&SpecialPeriod{StartDate: date("2024-12-27"), EndDate: date("2024-12-31")}))
}

func TestRestaurant_Location(t *testing.T) {
	assert.Equal(t, time.UTC, (&Restaurant{}).Location())
	assert.Equal(t, time.UTC, (&Restaurant{Timezone: "Mars/Olympus"}).Location())
	assert.Equal(t, "Europe/Moscow", (&Restaurant{Timezone: "Europe/Moscow"}).Location().String())
}

func TestDayAvailability_AvailableTimes(t *testing.T) {
	d := &DayAvailability{
		IsOpen:         true,
		AvailableSlots: 1,
		TimeSlots: []TimeSlot{
			{Time: types.MustTimeString("09:00"), Available: false},
			{Time: types.MustTimeString("09:30"), Available: true},
		},
	}

	assert.Equal(t, []types.TimeString{types.MustTimeString("09:30")}, d.AvailableTimes())
	assert.False(t, d.IsFullyBooked())
}

func TestDayAvailability_Outcome(t *testing.T) {
	assert.Equal(t, OutcomeClosed, (&DayAvailability{}).Outcome())
	assert.Equal(t, OutcomeFullyBooked, (&DayAvailability{IsOpen: true, TotalSlots: 4}).Outcome())
	assert.Equal(t, OutcomeAvailable, (&DayAvailability{IsOpen: true, TotalSlots: 4, AvailableSlots: 1}).Outcome())
}

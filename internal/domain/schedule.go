package domain

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// OpeningHours regular weekly schedule of a restaurant for one weekday
type OpeningHours struct {
	ID           int64
	RestaurantID int64
	DayOfWeek    int // 0 = воскресенье, 6 = суббота (как time.Weekday)
	IsOpen       bool
	OpenTime     *types.TimeString // игнорируется при IsOpen = false
	CloseTime    *types.TimeString
}

// Weekday returns the schedule day as time.Weekday
func (h *OpeningHours) Weekday() time.Weekday {
	return time.Weekday(h.DayOfWeek)
}

// HasHours returns true if both open and close times are set and open < close
func (h *OpeningHours) HasHours() bool {
	return h.OpenTime != nil && h.CloseTime != nil && h.OpenTime.IsBefore(*h.CloseTime)
}

// SpecialPeriod overrides the weekly schedule for an inclusive date range
// (праздники, спецобслуживание, ремонт)
type SpecialPeriod struct {
	ID           int64
	RestaurantID int64
	StartDate    time.Time
	EndDate      time.Time
	IsOpen       bool
	OpenTime     *types.TimeString // nil у открытого периода - часы берутся из недельного расписания
	CloseTime    *types.TimeString
	Reason       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers returns true if the calendar date falls into [StartDate, EndDate]
func (p *SpecialPeriod) Covers(date time.Time) bool {
	d := types.DateOnly(date)
	return !d.Before(types.DateOnly(p.StartDate)) && !d.After(types.DateOnly(p.EndDate))
}

// Overlaps returns true if two periods share at least one calendar date
func (p *SpecialPeriod) Overlaps(other *SpecialPeriod) bool {
	return !types.DateOnly(p.StartDate).After(types.DateOnly(other.EndDate)) &&
		!types.DateOnly(other.StartDate).After(types.DateOnly(p.EndDate))
}

// HasOwnHours returns true if the period defines its own open and close times
func (p *SpecialPeriod) HasOwnHours() bool {
	return p.OpenTime != nil && p.CloseTime != nil
}

// SpecialPeriodsFilter фильтр для получения особых периодов ресторана
type SpecialPeriodsFilter struct {
	RestaurantID int64      // Обязательный параметр
	From         *time.Time // Периоды, заканчивающиеся не раньше From (опционально)
	To           *time.Time // Периоды, начинающиеся не позже To (опционально)
}

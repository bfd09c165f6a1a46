package domain

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// BookingStatus represents the status of a table booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusSeated    BookingStatus = "seated"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a table reservation committed by the booking system.
// Сервис доступности только читает бронирования.
type Booking struct {
	ID           int64
	RestaurantID int64
	TableID      *int64 // nil - стол еще не назначен
	BookingDate  time.Time
	StartTime    types.TimeString
	EndTime      *types.TimeString // nil - StartTime + длительность по умолчанию
	GuestCount   int
	Status       BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds a table
func (b *Booking) IsActive() bool {
	for _, s := range InactiveStatuses {
		if b.Status == s {
			return false
		}
	}
	return true
}

// EffectiveEnd returns the end of the booking interval [StartTime, end).
// Без EndTime берется StartTime + defaultMinutes, обрезанное концом суток.
// EndTime не позже StartTime считается переходом через полночь и тоже обрезается концом суток.
func (b *Booking) EffectiveEnd(defaultMinutes int) types.TimeString {
	endOfDay, _ := types.NewTimeStringFromMinutes(24 * 60)

	if b.EndTime == nil {
		end, err := b.StartTime.AddMinutes(defaultMinutes)
		if err != nil {
			return endOfDay
		}
		return end
	}

	if !b.EndTime.IsAfter(b.StartTime) {
		return endOfDay
	}
	return *b.EndTime
}

// Occupies returns true if the booking interval contains the slot start
func (b *Booking) Occupies(slot types.TimeString, defaultMinutes int) bool {
	return !slot.IsBefore(b.StartTime) && slot.IsBefore(b.EffectiveEnd(defaultMinutes))
}

// RestaurantBookingsFilter фильтр для получения бронирований ресторана
type RestaurantBookingsFilter struct {
	RestaurantID    int64      // Обязательный параметр
	StartDate       *time.Time // Начало периода включительно (опционально)
	EndDate         *time.Time // Конец периода включительно (опционально)
	IncludeInactive bool       // Включать ли отмененные и no-show
}

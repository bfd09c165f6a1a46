package availability

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// effectiveHours часы работы ресторана на конкретную дату
type effectiveHours struct {
	isOpen          bool
	openTime        types.TimeString
	closeTime       types.TimeString
	closureReason   string
	specialPeriodID *int64
}

func closedHours(reason string) effectiveHours {
	return effectiveHours{closureReason: reason}
}

// resolveHours определяет часы работы на date.
// Особый период, покрывающий дату, полностью заменяет недельное расписание.
// Открытый особый период без своих часов работает по часам дня недели.
func resolveHours(date time.Time, weekly []*domain.OpeningHours, periods []*domain.SpecialPeriod) effectiveHours {
	if period := coveringPeriod(date, periods); period != nil {
		id := period.ID
		hours := specialPeriodHours(date, period, weekly)
		hours.specialPeriodID = &id
		return hours
	}

	return weekdayHours(date, weekly)
}

func specialPeriodHours(date time.Time, period *domain.SpecialPeriod, weekly []*domain.OpeningHours) effectiveHours {
	if !period.IsOpen {
		if period.Reason != nil && *period.Reason != "" {
			return closedHours(*period.Reason)
		}
		return closedHours(domain.ClosureReasonClosed)
	}

	if !period.HasOwnHours() {
		return weekdayHours(date, weekly)
	}

	if !period.OpenTime.IsBefore(*period.CloseTime) {
		return closedHours(domain.ClosureReasonClosed)
	}

	return effectiveHours{
		isOpen:    true,
		openTime:  *period.OpenTime,
		closeTime: *period.CloseTime,
	}
}

// coveringPeriod возвращает особый период на дату.
// При пересечении периодов побеждает созданный последним (затем больший ID).
func coveringPeriod(date time.Time, periods []*domain.SpecialPeriod) *domain.SpecialPeriod {
	var winner *domain.SpecialPeriod
	for _, p := range periods {
		if p == nil || !p.Covers(date) {
			continue
		}
		if winner == nil || newerPeriod(p, winner) {
			winner = p
		}
	}
	return winner
}

func newerPeriod(a, b *domain.SpecialPeriod) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// weekdayHours часы по недельному расписанию.
// Несколько записей на один день недели быть не должно, при их наличии берется запись с меньшим ID.
func weekdayHours(date time.Time, weekly []*domain.OpeningHours) effectiveHours {
	var record *domain.OpeningHours
	for _, h := range weekly {
		if h == nil || h.Weekday() != date.Weekday() {
			continue
		}
		if record == nil || h.ID < record.ID {
			record = h
		}
	}

	if record == nil || !record.IsOpen || !record.HasHours() {
		return closedHours(domain.ClosureReasonClosed)
	}

	return effectiveHours{
		isOpen:    true,
		openTime:  *record.OpenTime,
		closeTime: *record.CloseTime,
	}
}

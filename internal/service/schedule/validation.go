package schedule

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

// validateOpeningHours проверяет недельное расписание
func validateOpeningHours(hours []*domain.OpeningHours) error {
	if len(hours) > domain.DaysPerWeek {
		return fmt.Errorf("%w: at most %d days allowed", ErrInvalidInput, domain.DaysPerWeek)
	}

	seen := make(map[int]bool, len(hours))
	for _, h := range hours {
		if h.DayOfWeek < 0 || h.DayOfWeek >= domain.DaysPerWeek {
			return fmt.Errorf("%w: dayOfWeek must be between 0 and 6, got %d", ErrInvalidInput, h.DayOfWeek)
		}
		if seen[h.DayOfWeek] {
			return fmt.Errorf("%w: duplicate dayOfWeek %d", ErrInvalidInput, h.DayOfWeek)
		}
		seen[h.DayOfWeek] = true

		if !h.IsOpen {
			continue
		}
		if h.OpenTime == nil || h.CloseTime == nil {
			return fmt.Errorf("%w: dayOfWeek %d: openTime and closeTime are required for open day", ErrInvalidInput, h.DayOfWeek)
		}
		if !h.OpenTime.IsBefore(*h.CloseTime) {
			return fmt.Errorf("%w: dayOfWeek %d: openTime must be before closeTime", ErrInvalidInput, h.DayOfWeek)
		}
	}

	return nil
}

// validateSpecialPeriod проверяет особый период
func validateSpecialPeriod(p *domain.SpecialPeriod) error {
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	days := int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
	if days > domain.MaxSpecialPeriodDays {
		return fmt.Errorf("%w: period must not exceed %d days", ErrInvalidInput, domain.MaxSpecialPeriodDays)
	}

	if (p.OpenTime == nil) != (p.CloseTime == nil) {
		return fmt.Errorf("%w: openTime and closeTime must be set together", ErrInvalidInput)
	}
	if p.IsOpen && p.HasOwnHours() && !p.OpenTime.IsBefore(*p.CloseTime) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	if p.Reason != nil {
		reason := strings.TrimSpace(*p.Reason)
		if utf8.RuneCountInString(reason) > domain.MaxReasonLength {
			return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
		}
		if reason == "" {
			p.Reason = nil
		} else {
			p.Reason = &reason
		}
	}

	// у закрытого периода часы не используются
	if !p.IsOpen {
		p.OpenTime, p.CloseTime = nil, nil
	}

	return nil
}

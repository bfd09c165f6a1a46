package get_day_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// maxUTCOffset наибольшее смещение часовых поясов от UTC (UTC+14)
const maxUTCOffset = 14 * time.Hour

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.GuestCount < domain.MinGuestCount || req.GuestCount > domain.MaxGuestCount {
		return fmt.Errorf("%w: guests must be between %d and %d",
			ErrInvalidInput, domain.MinGuestCount, domain.MaxGuestCount)
	}

	return nil
}

// isCacheable проверяет, что дата в будущем в любом часовом поясе.
// Для сегодняшней даты доступность зависит от текущего времени и не кэшируется.
func isCacheable(date, now time.Time) bool {
	latestToday := types.DateOnly(now.UTC().Add(maxUTCOffset))
	return date.After(latestToday)
}

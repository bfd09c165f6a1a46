package get_month_availability

import (
	"fmt"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if req.Month.IsZero() {
		return fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	if req.GuestCount < domain.MinGuestCount || req.GuestCount > domain.MaxGuestCount {
		return fmt.Errorf("%w: guests must be between %d and %d",
			ErrInvalidInput, domain.MinGuestCount, domain.MaxGuestCount)
	}

	return nil
}

package get_special_periods

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule/models"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Пустые from и to означают отсутствие ограничения
func ToServiceRequest(restaurantID int64, fromStr, toStr string) (*models.ListSpecialPeriodsRequest, error) {
	req := &models.ListSpecialPeriodsRequest{RestaurantID: restaurantID}

	from, err := parseOptionalDate(fromStr)
	if err != nil {
		return nil, err
	}
	req.From = from

	to, err := parseOptionalDate(toStr)
	if err != nil {
		return nil, err
	}
	req.To = to

	return req, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := types.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

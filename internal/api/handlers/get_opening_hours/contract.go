package get_opening_hours

import (
	"context"

	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetOpeningHours(ctx context.Context, restaurantID int64) (*models.OpeningHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

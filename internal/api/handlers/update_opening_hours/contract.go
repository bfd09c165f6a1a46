package update_opening_hours

import (
	"context"

	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateOpeningHours(ctx context.Context, req *models.UpdateOpeningHoursRequest) (*models.OpeningHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_special_period

import (
	"context"

	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateSpecialPeriod(ctx context.Context, req *models.CreateSpecialPeriodRequest) (*models.SpecialPeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_special_periods

import (
	"context"

	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListSpecialPeriods(ctx context.Context, req *models.ListSpecialPeriodsRequest) (*models.SpecialPeriodListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

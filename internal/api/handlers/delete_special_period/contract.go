package delete_special_period

import "context"

type ScheduleService interface {
	DeleteSpecialPeriod(ctx context.Context, restaurantID, periodID, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

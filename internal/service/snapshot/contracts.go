package snapshot

import (
	"context"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetOpeningHours(ctx context.Context, restaurantID int64) ([]*domain.OpeningHours, error)
	GetSpecialPeriods(ctx context.Context, filter domain.SpecialPeriodsFilter) ([]*domain.SpecialPeriod, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetActiveByRestaurant(ctx context.Context, restaurantID int64) ([]*domain.Table, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByRestaurantWithFilter(ctx context.Context, filter domain.RestaurantBookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

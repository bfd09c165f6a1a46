package schedule

import (
	"context"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetOpeningHours(ctx context.Context, restaurantID int64) ([]*domain.OpeningHours, error)
	ReplaceOpeningHours(ctx context.Context, restaurantID int64, hours []*domain.OpeningHours) ([]*domain.OpeningHours, error)
	GetSpecialPeriods(ctx context.Context, filter domain.SpecialPeriodsFilter) ([]*domain.SpecialPeriod, error)
	CreateSpecialPeriod(ctx context.Context, period *domain.SpecialPeriod) (*domain.SpecialPeriod, error)
	DeleteSpecialPeriod(ctx context.Context, restaurantID, periodID int64) error
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// AvailabilityCache интерфейс сброса кэша доступности после изменения расписания
type AvailabilityCache interface {
	InvalidateRestaurant(ctx context.Context, restaurantID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

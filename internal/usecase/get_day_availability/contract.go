package get_day_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/availability"
	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/internal/service/snapshot"
)

// SnapshotLoader интерфейс загрузки данных ресторана
type SnapshotLoader interface {
	Load(ctx context.Context, restaurantID int64, from, to time.Time) (*snapshot.Snapshot, error)
}

// AvailabilityCache интерфейс кэша рассчитанной доступности
type AvailabilityCache interface {
	Get(ctx context.Context, restaurantID int64, date time.Time, guests int) (*domain.DayAvailability, error)
	Set(ctx context.Context, restaurantID int64, day *domain.DayAvailability) error
}

// Calculator интерфейс калькулятора доступности
type Calculator interface {
	ComputeDayAvailability(in availability.Input) (*domain.DayAvailability, error)
}

// Metrics интерфейс метрик расчета доступности
type Metrics interface {
	ObserveAvailability(result string)
	ObserveCache(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

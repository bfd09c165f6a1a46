package get_day_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableBookingService/internal/availability"
	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	availabilityCache "github.com/m04kA/SMC-TableBookingService/internal/infra/cache/availability"
	"github.com/m04kA/SMC-TableBookingService/internal/service/snapshot"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// UseCase use case получения доступных слотов ресторана на дату
type UseCase struct {
	loader           SnapshotLoader
	cache            AvailabilityCache
	calculator       Calculator
	metrics          Metrics
	timeProvider     TimeProvider
	minNoticeMinutes int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	loader SnapshotLoader,
	cache AvailabilityCache,
	calculator Calculator,
	metrics Metrics,
	minNoticeMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		loader:           loader,
		cache:            cache,
		calculator:       calculator,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		minNoticeMinutes: minNoticeMinutes,
		logger:           logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступности на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayAvailability: restaurant=%d, date=%s, guests=%d",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayAvailability: validation failed: %v", err)
		return nil, err
	}

	date := types.DateOnly(req.Date)
	now := uc.timeProvider.Now()
	cacheable := isCacheable(date, now)

	// 2. Кэш для будущих дат
	if cacheable {
		day, err := uc.cache.Get(ctx, req.RestaurantID, date, req.GuestCount)
		switch {
		case err == nil:
			uc.metrics.ObserveCache("hit")
			uc.logger.Info("GetDayAvailability: cache hit for restaurant=%d, date=%s",
				req.RestaurantID, date.Format(domain.DateFormat))
			return &Response{RestaurantID: req.RestaurantID, Availability: day, FromCache: true}, nil
		case errors.Is(err, availabilityCache.ErrCacheMiss):
			uc.metrics.ObserveCache("miss")
		default:
			uc.metrics.ObserveCache("error")
			uc.logger.Warn("GetDayAvailability: cache read failed: %v", err)
		}
	}

	// 3. Данные ресторана на дату
	snap, err := uc.loader.Load(ctx, req.RestaurantID, date, date)
	if err != nil {
		if errors.Is(err, snapshot.ErrRestaurantNotFound) {
			uc.logger.Warn("GetDayAvailability: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetDayAvailability: failed to load restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to load data: %v", ErrInternal, err)
	}

	// 4. Текущее время в часовом поясе ресторана
	localNow := types.WallClock(now, snap.Restaurant.Location())

	// 5. Расчет
	day, err := uc.calculator.ComputeDayAvailability(availability.Input{
		Date:             date,
		GuestCount:       req.GuestCount,
		OpeningHours:     snap.OpeningHours,
		SpecialPeriods:   snap.SpecialPeriods,
		Tables:           snap.Tables,
		Bookings:         snap.Bookings,
		Now:              &localNow,
		MinNoticeMinutes: uc.minNoticeMinutes,
	})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidArgument) {
			uc.logger.Warn("GetDayAvailability: invalid argument: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("GetDayAvailability: failed to compute availability: %v", err)
		return nil, fmt.Errorf("%w: failed to compute availability: %v", ErrInternal, err)
	}

	uc.metrics.ObserveAvailability(day.Outcome())

	// 6. Сохраняем в кэш
	if cacheable {
		if err := uc.cache.Set(ctx, req.RestaurantID, day); err != nil {
			uc.logger.Warn("GetDayAvailability: cache write failed: %v", err)
		}
	}

	uc.logger.Info("GetDayAvailability: restaurant=%d, date=%s, open=%t, slots=%d, available=%d",
		req.RestaurantID, date.Format(domain.DateFormat), day.IsOpen, day.TotalSlots, day.AvailableSlots)

	return &Response{RestaurantID: req.RestaurantID, Availability: day}, nil
}

package get_month_availability

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-TableBookingService/internal/availability"
	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/internal/service/snapshot"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

const defaultWorkers = 8

// UseCase use case получения доступности ресторана по дням месяца
type UseCase struct {
	loader           SnapshotLoader
	calculator       Calculator
	metrics          Metrics
	timeProvider     TimeProvider
	minNoticeMinutes int
	workers          int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case.
// workers ограничивает число дней, рассчитываемых параллельно.
func NewUseCase(
	loader SnapshotLoader,
	calculator Calculator,
	metrics Metrics,
	minNoticeMinutes int,
	workers int,
	logger Logger,
) *UseCase {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &UseCase{
		loader:           loader,
		calculator:       calculator,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		minNoticeMinutes: minNoticeMinutes,
		workers:          workers,
		logger:           logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступности на месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: restaurant=%d, month=%s, guests=%d",
		req.RestaurantID, req.Month.Format(domain.MonthFormat), req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	days := types.DaysInMonth(req.Month)
	first, last := days[0], days[len(days)-1]

	// 2. Данные ресторана один раз на весь месяц
	snap, err := uc.loader.Load(ctx, req.RestaurantID, first, last)
	if err != nil {
		if errors.Is(err, snapshot.ErrRestaurantNotFound) {
			uc.logger.Warn("GetMonthAvailability: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetMonthAvailability: failed to load restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to load data: %v", ErrInternal, err)
	}

	localNow := types.WallClock(uc.timeProvider.Now(), snap.Restaurant.Location())

	// 3. Дни рассчитываются независимо, каждый пишет в свою ячейку
	summaries := make([]DaySummary, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)

	for i, date := range days {
		i, date := i, date
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

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
				return fmt.Errorf("date %s: %w", date.Format(domain.DateFormat), err)
			}

			uc.metrics.ObserveAvailability(day.Outcome())
			summaries[i] = summarize(day)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, availability.ErrInvalidArgument) {
			uc.logger.Warn("GetMonthAvailability: invalid argument: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("GetMonthAvailability: failed to compute availability: %v", err)
		return nil, fmt.Errorf("%w: failed to compute availability: %v", ErrInternal, err)
	}

	uc.logger.Info("GetMonthAvailability: restaurant=%d, month=%s, days=%d",
		req.RestaurantID, first.Format(domain.MonthFormat), len(summaries))

	return &Response{
		RestaurantID: req.RestaurantID,
		Month:        first,
		GuestCount:   req.GuestCount,
		Days:         summaries,
	}, nil
}

func summarize(day *domain.DayAvailability) DaySummary {
	summary := DaySummary{
		Date:           day.Date,
		IsOpen:         day.IsOpen,
		Outcome:        day.Outcome(),
		TotalSlots:     day.TotalSlots,
		AvailableSlots: day.AvailableSlots,
		ClosureReason:  day.ClosureReason,
	}

	if times := day.AvailableTimes(); len(times) > 0 {
		first := times[0]
		summary.FirstAvailable = &first
	}

	return summary
}

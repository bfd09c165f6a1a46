package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// Service загружает из хранилища все данные, нужные калькулятору доступности.
// Одинаковые конкурентные загрузки объединяются.
type Service struct {
	restaurantRepo RestaurantRepository
	scheduleRepo   ScheduleRepository
	tableRepo      TableRepository
	bookingRepo    BookingRepository
	group          singleflight.Group
	logger         Logger
}

// NewService создает новый экземпляр сервиса загрузки данных
func NewService(
	restaurantRepo RestaurantRepository,
	scheduleRepo ScheduleRepository,
	tableRepo TableRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		scheduleRepo:   scheduleRepo,
		tableRepo:      tableRepo,
		bookingRepo:    bookingRepo,
		logger:         logger,
	}
}

// Load загружает снимок данных ресторана за период [from, to] (даты включительно)
func (s *Service) Load(ctx context.Context, restaurantID int64, from, to time.Time) (*Snapshot, error) {
	from, to = types.DateOnly(from), types.DateOnly(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: from=%s after to=%s", ErrInvalidRange,
			from.Format(domain.DateFormat), to.Format(domain.DateFormat))
	}

	key := fmt.Sprintf("%d:%s:%s", restaurantID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	// Загрузка не должна прерываться отменой запроса, который ее начал:
	// результат ждут и другие запросы
	loadCtx := context.WithoutCancel(ctx)

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		return s.load(loadCtx, restaurantID, from, to)
	})
	if err != nil {
		return nil, err
	}

	if shared {
		s.logger.Info("Load: shared snapshot for restaurant=%d, period=%s", restaurantID, key)
	}

	return v.(*Snapshot), nil
}

func (s *Service) load(ctx context.Context, restaurantID int64, from, to time.Time) (*Snapshot, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("Load: restaurant id=%d not found", restaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Load: failed to get restaurant id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	if !restaurant.IsActive {
		s.logger.Warn("Load: restaurant id=%d is inactive", restaurantID)
		return nil, ErrRestaurantNotFound
	}

	snap := &Snapshot{
		Restaurant: restaurant,
		From:       from,
		To:         to,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hours, err := s.scheduleRepo.GetOpeningHours(gctx, restaurantID)
		if err != nil {
			return fmt.Errorf("opening hours: %v", err)
		}
		snap.OpeningHours = hours
		return nil
	})

	g.Go(func() error {
		periods, err := s.scheduleRepo.GetSpecialPeriods(gctx, domain.SpecialPeriodsFilter{
			RestaurantID: restaurantID,
			From:         &from,
			To:           &to,
		})
		if err != nil {
			return fmt.Errorf("special periods: %v", err)
		}
		snap.SpecialPeriods = periods
		return nil
	})

	g.Go(func() error {
		tables, err := s.tableRepo.GetActiveByRestaurant(gctx, restaurantID)
		if err != nil {
			return fmt.Errorf("tables: %v", err)
		}
		snap.Tables = tables
		return nil
	})

	g.Go(func() error {
		bookings, err := s.bookingRepo.GetByRestaurantWithFilter(gctx, domain.RestaurantBookingsFilter{
			RestaurantID: restaurantID,
			StartDate:    &from,
			EndDate:      &to,
		})
		if err != nil {
			return fmt.Errorf("bookings: %v", err)
		}
		snap.Bookings = bookings
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Load: failed to load data for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Load: restaurant=%d, period=%s..%s, hours=%d, periods=%d, tables=%d, bookings=%d",
		restaurantID, from.Format(domain.DateFormat), to.Format(domain.DateFormat),
		len(snap.OpeningHours), len(snap.SpecialPeriods), len(snap.Tables), len(snap.Bookings))

	return snap, nil
}

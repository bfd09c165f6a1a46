package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/restaurant"
	scheduleRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule/models"
)

// Service сервис управления расписанием ресторана
type Service struct {
	scheduleRepo   ScheduleRepository
	restaurantRepo RestaurantRepository
	txManager      TransactionManager
	cache          AvailabilityCache
	logger         Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	cache AvailabilityCache,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:   scheduleRepo,
		restaurantRepo: restaurantRepo,
		txManager:      txManager,
		cache:          cache,
		logger:         logger,
	}
}

// GetOpeningHours возвращает недельное расписание ресторана
// Публичный метод - доступен всем
func (s *Service) GetOpeningHours(ctx context.Context, restaurantID int64) (*models.OpeningHoursResponse, error) {
	s.logger.Info("GetOpeningHours: fetching opening hours for restaurant=%d", restaurantID)

	if err := s.ensureRestaurant(ctx, "GetOpeningHours", restaurantID); err != nil {
		return nil, err
	}

	hours, err := s.scheduleRepo.GetOpeningHours(ctx, restaurantID)
	if err != nil {
		s.logger.Error("GetOpeningHours: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetOpeningHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOpeningHours: fetched %d days for restaurant=%d", len(hours), restaurantID)
	return models.FromDomainOpeningHours(restaurantID, hours), nil
}

// UpdateOpeningHours полностью заменяет недельное расписание ресторана
// Доступно только авторизованным пользователям
func (s *Service) UpdateOpeningHours(ctx context.Context, req *models.UpdateOpeningHoursRequest) (*models.OpeningHoursResponse, error) {
	s.logger.Info("UpdateOpeningHours: updating %d days for restaurant=%d by user=%d",
		len(req.Days), req.RestaurantID, req.UserID)

	// 1. Конвертируем и валидируем входные данные
	hours := make([]*domain.OpeningHours, 0, len(req.Days))
	for _, day := range req.Days {
		h, err := day.ToDomain(req.RestaurantID)
		if err != nil {
			s.logger.Warn("UpdateOpeningHours: invalid day %d: %v", day.DayOfWeek, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		hours = append(hours, h)
	}
	if err := validateOpeningHours(hours); err != nil {
		s.logger.Warn("UpdateOpeningHours: validation failed: %v", err)
		return nil, err
	}

	// 2. Заменяем расписание в транзакции
	var saved []*domain.OpeningHours
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.ensureRestaurant(ctx, "UpdateOpeningHours", req.RestaurantID); err != nil {
			return err
		}

		var err error
		saved, err = s.scheduleRepo.ReplaceOpeningHours(ctx, req.RestaurantID, hours)
		if err != nil {
			return s.mapWriteError("UpdateOpeningHours", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Сбрасываем кэш доступности
	s.invalidate(ctx, "UpdateOpeningHours", req.RestaurantID)

	s.logger.Info("UpdateOpeningHours: successfully saved %d days for restaurant=%d", len(saved), req.RestaurantID)
	return models.FromDomainOpeningHours(req.RestaurantID, saved), nil
}

// ListSpecialPeriods возвращает особые периоды ресторана, пересекающие диапазон
// Публичный метод - доступен всем
func (s *Service) ListSpecialPeriods(ctx context.Context, req *models.ListSpecialPeriodsRequest) (*models.SpecialPeriodListResponse, error) {
	s.logger.Info("ListSpecialPeriods: fetching special periods for restaurant=%d", req.RestaurantID)

	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		s.logger.Warn("ListSpecialPeriods: invalid range for restaurant=%d", req.RestaurantID)
		return nil, fmt.Errorf("%w: 'to' must not be before 'from'", ErrInvalidInput)
	}

	if err := s.ensureRestaurant(ctx, "ListSpecialPeriods", req.RestaurantID); err != nil {
		return nil, err
	}

	periods, err := s.scheduleRepo.GetSpecialPeriods(ctx, domain.SpecialPeriodsFilter{
		RestaurantID: req.RestaurantID,
		From:         req.From,
		To:           req.To,
	})
	if err != nil {
		s.logger.Error("ListSpecialPeriods: repository error for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: ListSpecialPeriods - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSpecialPeriods: fetched %d periods for restaurant=%d", len(periods), req.RestaurantID)
	return models.FromDomainSpecialPeriods(periods), nil
}

// CreateSpecialPeriod создает особый период (праздник, закрытие на ремонт, сокращенный день)
// Доступно только авторизованным пользователям
// Пересечение с существующим периодом запрещено
func (s *Service) CreateSpecialPeriod(ctx context.Context, req *models.CreateSpecialPeriodRequest) (*models.SpecialPeriodResponse, error) {
	s.logger.Info("CreateSpecialPeriod: creating period %s..%s for restaurant=%d by user=%d",
		req.StartDate, req.EndDate, req.RestaurantID, req.UserID)

	// 1. Конвертируем и валидируем входные данные
	period, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateSpecialPeriod: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateSpecialPeriod(period); err != nil {
		s.logger.Warn("CreateSpecialPeriod: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем пересечения и создаем период в сериализуемой транзакции
	var created *domain.SpecialPeriod
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := s.ensureRestaurant(ctx, "CreateSpecialPeriod", req.RestaurantID); err != nil {
			return err
		}

		existing, err := s.scheduleRepo.GetSpecialPeriods(ctx, domain.SpecialPeriodsFilter{
			RestaurantID: period.RestaurantID,
			From:         &period.StartDate,
			To:           &period.EndDate,
		})
		if err != nil {
			s.logger.Error("CreateSpecialPeriod: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: CreateSpecialPeriod - repository error: %v", ErrInternal, err)
		}
		for _, other := range existing {
			if period.Overlaps(other) {
				s.logger.Warn("CreateSpecialPeriod: period overlaps existing period id=%d for restaurant=%d",
					other.ID, req.RestaurantID)
				return fmt.Errorf("%w: conflicts with period id=%d (%s..%s)", ErrSpecialPeriodOverlap,
					other.ID, other.StartDate.Format(domain.DateFormat), other.EndDate.Format(domain.DateFormat))
			}
		}

		created, err = s.scheduleRepo.CreateSpecialPeriod(ctx, period)
		if err != nil {
			return s.mapWriteError("CreateSpecialPeriod", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Сбрасываем кэш доступности
	s.invalidate(ctx, "CreateSpecialPeriod", req.RestaurantID)

	s.logger.Info("CreateSpecialPeriod: successfully created period id=%d", created.ID)
	return models.FromDomainSpecialPeriod(created), nil
}

// DeleteSpecialPeriod удаляет особый период ресторана
// Доступно только авторизованным пользователям
func (s *Service) DeleteSpecialPeriod(ctx context.Context, restaurantID, periodID, userID int64) error {
	s.logger.Info("DeleteSpecialPeriod: deleting period id=%d for restaurant=%d by user=%d",
		periodID, restaurantID, userID)

	if err := s.scheduleRepo.DeleteSpecialPeriod(ctx, restaurantID, periodID); err != nil {
		if errors.Is(err, scheduleRepo.ErrSpecialPeriodNotFound) {
			s.logger.Warn("DeleteSpecialPeriod: period id=%d not found for restaurant=%d", periodID, restaurantID)
			return ErrSpecialPeriodNotFound
		}
		s.logger.Error("DeleteSpecialPeriod: repository error: %v", err)
		return fmt.Errorf("%w: DeleteSpecialPeriod - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "DeleteSpecialPeriod", restaurantID)

	s.logger.Info("DeleteSpecialPeriod: successfully deleted period id=%d", periodID)
	return nil
}

// ensureRestaurant проверяет, что ресторан существует и активен
func (s *Service) ensureRestaurant(ctx context.Context, op string, restaurantID int64) error {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("%s: restaurant id=%d not found", op, restaurantID)
			return ErrRestaurantNotFound
		}
		s.logger.Error("%s: failed to get restaurant id=%d: %v", op, restaurantID, err)
		return fmt.Errorf("%w: %s - failed to get restaurant: %v", ErrInternal, op, err)
	}
	if !restaurant.IsActive {
		s.logger.Warn("%s: restaurant id=%d is inactive", op, restaurantID)
		return ErrRestaurantNotFound
	}
	return nil
}

func (s *Service) mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, scheduleRepo.ErrRestaurantNotFound):
		s.logger.Warn("%s: restaurant not found on write: %v", op, err)
		return ErrRestaurantNotFound
	case errors.Is(err, scheduleRepo.ErrDuplicateWeekday):
		s.logger.Warn("%s: duplicate weekday: %v", op, err)
		return fmt.Errorf("%w: duplicate dayOfWeek", ErrInvalidInput)
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// invalidate сбрасывает кэш. Ошибка кэша не отменяет уже зафиксированную запись
func (s *Service) invalidate(ctx context.Context, op string, restaurantID int64) {
	if err := s.cache.InvalidateRestaurant(ctx, restaurantID); err != nil {
		s.logger.Warn("%s: failed to invalidate availability cache for restaurant=%d: %v", op, restaurantID, err)
	}
}

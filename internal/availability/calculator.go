package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// Options параметры калькулятора. Нулевые значения заменяются значениями по умолчанию.
type Options struct {
	SlotIntervalMinutes   int
	DefaultBookingMinutes int
}

// Calculator рассчитывает доступные слоты ресторана на дату.
// Не хранит изменяемого состояния и безопасен для конкурентного использования.
type Calculator struct {
	slotInterval   int
	defaultBooking int
}

// NewCalculator создает калькулятор доступности
func NewCalculator(opts Options) *Calculator {
	c := &Calculator{
		slotInterval:   opts.SlotIntervalMinutes,
		defaultBooking: opts.DefaultBookingMinutes,
	}
	if c.slotInterval <= 0 {
		c.slotInterval = domain.DefaultSlotIntervalMinutes
	}
	if c.defaultBooking <= 0 {
		c.defaultBooking = domain.DefaultBookingMinutes
	}
	return c
}

// SlotInterval возвращает шаг генерации слотов в минутах
func (c *Calculator) SlotInterval() int {
	return c.slotInterval
}

// Input данные одного расчета. Все данные уже загружены вызывающей стороной
// и не изменяются калькулятором.
type Input struct {
	Date       time.Time // календарная дата, время суток игнорируется
	GuestCount int

	OpeningHours   []*domain.OpeningHours
	SpecialPeriods []*domain.SpecialPeriod
	Tables         []*domain.Table
	Bookings       []*domain.Booking

	// Now текущее "настенное" время ресторана (types.WallClock).
	// nil - ограничение по текущему времени не применяется.
	Now              *time.Time
	MinNoticeMinutes int
}

// ComputeDayAvailability возвращает упорядоченный список слотов на дату и их доступность
// для компании из GuestCount гостей
func (c *Calculator) ComputeDayAvailability(in Input) (*domain.DayAvailability, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	date := types.DateOnly(in.Date)

	result := &domain.DayAvailability{
		Date:       date,
		GuestCount: in.GuestCount,
		TimeSlots:  []domain.TimeSlot{},
	}

	// 1. Часы работы на дату: особый период важнее недельного расписания
	hours := resolveHours(date, in.OpeningHours, in.SpecialPeriods)
	result.SpecialPeriodID = hours.specialPeriodID
	if !hours.isOpen {
		reason := hours.closureReason
		result.ClosureReason = &reason
		return result, nil
	}

	openTime, closeTime := hours.openTime, hours.closeTime
	result.IsOpen = true
	result.OpenTime = &openTime
	result.CloseTime = &closeTime

	// 2. Кандидаты в слоты
	slots := generateSlots(openTime, closeTime, c.slotInterval)

	// 3. Рассадка существующих бронирований по столам
	tables := bookableTables(in.Tables)
	placements := assignTables(tables, bookingsOnDate(in.Bookings, date), c.defaultBooking)

	// 4. Минимально допустимое время начала с учетом текущего времени
	cutoff := bookingCutoff(date, in.Now, in.MinNoticeMinutes)

	result.TimeSlots = make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		available := slot.Minutes() >= cutoff && hasFreeTable(slot, in.GuestCount, tables, placements)

		result.TimeSlots = append(result.TimeSlots, domain.TimeSlot{
			Time:      slot,
			Available: available,
		})
		if available {
			result.AvailableSlots++
		}
	}

	// 5. Итоги
	result.TotalSlots = len(result.TimeSlots)

	return result, nil
}

func validateInput(in Input) error {
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidArgument)
	}
	if in.GuestCount <= 0 {
		return fmt.Errorf("%w: guest count must be positive, got %d", ErrInvalidArgument, in.GuestCount)
	}
	if in.MinNoticeMinutes < 0 {
		return fmt.Errorf("%w: min notice must not be negative, got %d", ErrInvalidArgument, in.MinNoticeMinutes)
	}
	return nil
}

// bookingCutoff возвращает минуту суток, раньше которой слоты на date недоступны.
// Прошедшая дата закрыта целиком, будущая открыта целиком.
func bookingCutoff(date time.Time, now *time.Time, noticeMinutes int) int {
	if now == nil {
		return 0
	}

	today := types.DateOnly(*now)
	switch {
	case date.Before(today):
		return 24*60 + 1
	case date.After(today):
		return 0
	default:
		return now.Hour()*60 + now.Minute() + noticeMinutes
	}
}

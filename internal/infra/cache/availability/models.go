package availability

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// cachedDay представление domain.DayAvailability в Redis
type cachedDay struct {
	Date            string            `json:"date"`
	GuestCount      int               `json:"guests"`
	IsOpen          bool              `json:"isOpen"`
	OpenTime        *types.TimeString `json:"openTime,omitempty"`
	CloseTime       *types.TimeString `json:"closeTime,omitempty"`
	TotalSlots      int               `json:"totalSlots"`
	AvailableSlots  int               `json:"availableSlots"`
	Slots           []cachedSlot      `json:"slots"`
	ClosureReason   *string           `json:"closureReason,omitempty"`
	SpecialPeriodID *int64            `json:"specialPeriodId,omitempty"`
}

type cachedSlot struct {
	Time      types.TimeString `json:"time"`
	Available bool             `json:"available"`
}

func fromDomain(d *domain.DayAvailability) cachedDay {
	slots := make([]cachedSlot, len(d.TimeSlots))
	for i, s := range d.TimeSlots {
		slots[i] = cachedSlot{Time: s.Time, Available: s.Available}
	}

	return cachedDay{
		Date:            d.Date.Format(domain.DateFormat),
		GuestCount:      d.GuestCount,
		IsOpen:          d.IsOpen,
		OpenTime:        d.OpenTime,
		CloseTime:       d.CloseTime,
		TotalSlots:      d.TotalSlots,
		AvailableSlots:  d.AvailableSlots,
		Slots:           slots,
		ClosureReason:   d.ClosureReason,
		SpecialPeriodID: d.SpecialPeriodID,
	}
}

func (c cachedDay) toDomain() (*domain.DayAvailability, error) {
	date, err := time.Parse(domain.DateFormat, c.Date)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, len(c.Slots))
	for i, s := range c.Slots {
		slots[i] = domain.TimeSlot{Time: s.Time, Available: s.Available}
	}

	return &domain.DayAvailability{
		Date:            date,
		GuestCount:      c.GuestCount,
		IsOpen:          c.IsOpen,
		OpenTime:        c.OpenTime,
		CloseTime:       c.CloseTime,
		TotalSlots:      c.TotalSlots,
		AvailableSlots:  c.AvailableSlots,
		TimeSlots:       slots,
		ClosureReason:   c.ClosureReason,
		SpecialPeriodID: c.SpecialPeriodID,
	}, nil
}

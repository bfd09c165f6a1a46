package get_month_availability

import (
	"strconv"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	getMonthAvailability "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_month_availability"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// MonthAvailabilityResponse HTTP response model
type MonthAvailabilityResponse struct {
	RestaurantID int64        `json:"restaurantId"`
	Month        string       `json:"month"`
	Guests       int          `json:"guests"`
	Days         []DaySummary `json:"days"`
}

// DaySummary краткая доступность дня для календаря
type DaySummary struct {
	Date           string  `json:"date"`
	IsOpen         bool    `json:"isOpen"`
	Status         string  `json:"status"` // closed, fully_booked, available
	TotalSlots     int     `json:"totalSlots"`
	AvailableCount int     `json:"availableCount"`
	FirstAvailable *string `json:"firstAvailable,omitempty"`
	ClosureReason  *string `json:"closureReason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthAvailability.Response) *MonthAvailabilityResponse {
	days := make([]DaySummary, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = DaySummary{
			Date:           d.Date.Format(domain.DateFormat),
			IsOpen:         d.IsOpen,
			Status:         d.Outcome,
			TotalSlots:     d.TotalSlots,
			AvailableCount: d.AvailableSlots,
			ClosureReason:  d.ClosureReason,
		}
		if d.FirstAvailable != nil {
			s := d.FirstAvailable.String()
			days[i].FirstAvailable = &s
		}
	}

	return &MonthAvailabilityResponse{
		RestaurantID: resp.RestaurantID,
		Month:        resp.Month.Format(domain.MonthFormat),
		Guests:       resp.GuestCount,
		Days:         days,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(restaurantID int64, monthStr, guestsStr string) (*getMonthAvailability.Request, error) {
	month, err := types.ParseMonth(monthStr)
	if err != nil {
		return nil, err
	}

	guests, err := strconv.Atoi(guestsStr)
	if err != nil {
		return nil, err
	}

	return &getMonthAvailability.Request{
		RestaurantID: restaurantID,
		Month:        month,
		GuestCount:   guests,
	}, nil
}

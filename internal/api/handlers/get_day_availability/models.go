package get_day_availability

import (
	"strconv"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	getDayAvailability "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_day_availability"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// DayAvailabilityResponse HTTP response model
type DayAvailabilityResponse struct {
	RestaurantID   int64      `json:"restaurantId"`
	Date           string     `json:"date"`
	Guests         int        `json:"guests"`
	IsOpen         bool       `json:"isOpen"`
	OpenTime       *string    `json:"openTime"`
	CloseTime      *string    `json:"closeTime"`
	TotalSlots     int        `json:"totalSlots"`
	AvailableCount int        `json:"availableCount"`
	AllTimeSlots   []TimeSlot `json:"allTimeSlots"`
	AvailableSlots []string   `json:"availableSlots"`
	ClosureReason  *string    `json:"closureReason,omitempty"`
}

// TimeSlot модель временного слота
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayAvailability.Response) *DayAvailabilityResponse {
	day := resp.Availability

	slots := make([]TimeSlot, len(day.TimeSlots))
	for i, s := range day.TimeSlots {
		slots[i] = TimeSlot{Time: s.Time.String(), Available: s.Available}
	}

	available := make([]string, 0, day.AvailableSlots)
	for _, t := range day.AvailableTimes() {
		available = append(available, t.String())
	}

	return &DayAvailabilityResponse{
		RestaurantID:   resp.RestaurantID,
		Date:           day.Date.Format(domain.DateFormat),
		Guests:         day.GuestCount,
		IsOpen:         day.IsOpen,
		OpenTime:       optionalTime(day.OpenTime),
		CloseTime:      optionalTime(day.CloseTime),
		TotalSlots:     day.TotalSlots,
		AvailableCount: day.AvailableSlots,
		AllTimeSlots:   slots,
		AvailableSlots: available,
		ClosureReason:  day.ClosureReason,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(restaurantID int64, dateStr, guestsStr string) (*getDayAvailability.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	guests, err := strconv.Atoi(guestsStr)
	if err != nil {
		return nil, err
	}

	return &getDayAvailability.Request{
		RestaurantID: restaurantID,
		Date:         date,
		GuestCount:   guests,
	}, nil
}

func optionalTime(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

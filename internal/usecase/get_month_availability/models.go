package get_month_availability

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// Request модель запроса доступности ресторана на месяц
type Request struct {
	RestaurantID int64     // ID ресторана
	Month        time.Time // Любая дата месяца
	GuestCount   int       // Количество гостей
}

// Response модель ответа с доступностью по дням месяца
type Response struct {
	RestaurantID int64
	Month        time.Time // первый день месяца
	GuestCount   int
	Days         []DaySummary // упорядочены по дате
}

// DaySummary краткая доступность одного дня
type DaySummary struct {
	Date           time.Time
	IsOpen         bool
	Outcome        string // closed, fully_booked, available
	TotalSlots     int
	AvailableSlots int
	FirstAvailable *types.TimeString
	ClosureReason  *string
}

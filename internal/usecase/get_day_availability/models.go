package get_day_availability

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

// Request модель запроса доступности ресторана на дату
type Request struct {
	RestaurantID int64     // ID ресторана
	Date         time.Time // Дата (время суток игнорируется)
	GuestCount   int       // Количество гостей
}

// Response модель ответа с доступностью на дату
type Response struct {
	RestaurantID int64
	Availability *domain.DayAvailability
	FromCache    bool // ответ взят из кэша
}

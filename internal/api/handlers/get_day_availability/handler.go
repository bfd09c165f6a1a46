package get_day_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
	getDayAvailability "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_day_availability"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgMissingDate         = "дата обязательна"
	msgMissingGuests       = "количество гостей обязательно"
	msgInvalidParams       = "некорректный формат параметров, ожидается date=YYYY-MM-DD и целое guests"
	msgInvalidGuests       = "количество гостей должно быть от 1 до 100"
	msgRestaurantNotFound  = "ресторан не найден"

	cacheHeader = "X-Cache"
)

type Handler struct {
	useCase DayAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase DayAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/calendar-availability
// Query params: date (required, YYYY-MM-DD), guests (required)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/calendar-availability - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	query := r.URL.Query()
	dateStr, guestsStr := query.Get("date"), query.Get("guests")
	if dateStr == "" {
		h.logger.Warn("GET /restaurants/{id}/calendar-availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	if guestsStr == "" {
		h.logger.Warn("GET /restaurants/{id}/calendar-availability - Missing guests")
		handlers.RespondBadRequest(w, msgMissingGuests)
		return
	}

	useCaseReq, err := ToUseCaseRequest(restaurantID, dateStr, guestsStr)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/calendar-availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDayAvailability.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/calendar-availability - Invalid input: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidGuests)

		case errors.Is(err, getDayAvailability.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/calendar-availability - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		default:
			h.logger.Error("GET /restaurants/{id}/calendar-availability - Failed to get availability: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.FromCache {
		w.Header().Set(cacheHeader, "HIT")
	} else {
		w.Header().Set(cacheHeader, "MISS")
	}

	h.logger.Info("GET /restaurants/{id}/calendar-availability - Availability retrieved: restaurant_id=%d, date=%s, available=%d/%d",
		restaurantID, dateStr, result.Availability.AvailableSlots, result.Availability.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

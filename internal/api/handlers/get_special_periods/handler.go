package get_special_periods

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange        = "дата 'to' не может быть раньше 'from'"
	msgRestaurantNotFound  = "ресторан не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/special-periods
// Query params: from, to (опционально, YYYY-MM-DD)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/special-periods - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(restaurantID, query.Get("from"), query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/special-periods - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListSpecialPeriods(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/special-periods - Invalid range: restaurant_id=%d", restaurantID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, schedule.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/special-periods - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		default:
			h.logger.Error("GET /restaurants/{id}/special-periods - Failed to list special periods: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/special-periods - Special periods retrieved: restaurant_id=%d, count=%d",
		restaurantID, len(result.Periods))
	handlers.RespondJSON(w, http.StatusOK, result)
}

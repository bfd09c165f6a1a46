package get_opening_hours

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

// Handle GET /api/v1/restaurants/{restaurantId}/opening-hours
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/opening-hours - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	result, err := h.service.GetOpeningHours(r.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, schedule.ErrRestaurantNotFound) {
			h.logger.Warn("GET /restaurants/{id}/opening-hours - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)
			return
		}
		h.logger.Error("GET /restaurants/{id}/opening-hours - Failed to get opening hours: restaurant_id=%d, error=%v",
			restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /restaurants/{id}/opening-hours - Opening hours retrieved: restaurant_id=%d, days=%d",
		restaurantID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}

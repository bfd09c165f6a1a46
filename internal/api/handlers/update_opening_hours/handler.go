package update_opening_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TableBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnauthorized        = "требуется авторизация"
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

// Handle PUT /api/v1/restaurants/{restaurantId}/opening-hours
// Полностью заменяет недельное расписание
// Требует X-User-ID header
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /restaurants/{id}/opening-hours - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /restaurants/{id}/opening-hours - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req UpdateOpeningHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /restaurants/{id}/opening-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateOpeningHours(r.Context(), req.ToServiceRequest(restaurantID, userID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /restaurants/{id}/opening-hours - Invalid input: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, schedule.ErrRestaurantNotFound):
			h.logger.Warn("PUT /restaurants/{id}/opening-hours - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		default:
			h.logger.Error("PUT /restaurants/{id}/opening-hours - Failed to update opening hours: restaurant_id=%d, user_id=%d, error=%v",
				restaurantID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /restaurants/{id}/opening-hours - Opening hours updated: restaurant_id=%d, user_id=%d, days=%d",
		restaurantID, userID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}

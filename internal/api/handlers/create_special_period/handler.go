package create_special_period

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TableBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule"
	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule/models"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnauthorized        = "требуется авторизация"
	msgRestaurantNotFound  = "ресторан не найден"
	msgPeriodOverlap       = "период пересекается с существующим особым периодом"
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

// Handle POST /api/v1/restaurants/{restaurantId}/special-periods
// Требует X-User-ID header
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /restaurants/{id}/special-periods - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/special-periods - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req models.CreateSpecialPeriodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/special-periods - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.RestaurantID = restaurantID
	req.UserID = userID

	result, err := h.service.CreateSpecialPeriod(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/special-periods - Invalid input: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, schedule.ErrSpecialPeriodOverlap):
			h.logger.Warn("POST /restaurants/{id}/special-periods - Overlap: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondConflict(w, msgPeriodOverlap)

		case errors.Is(err, schedule.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{id}/special-periods - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		default:
			h.logger.Error("POST /restaurants/{id}/special-periods - Failed to create special period: restaurant_id=%d, user_id=%d, error=%v",
				restaurantID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/special-periods - Special period created: period_id=%d, restaurant_id=%d, user_id=%d",
		result.ID, restaurantID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

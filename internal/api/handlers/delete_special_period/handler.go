package delete_special_period

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
	msgInvalidPeriodID     = "некорректный ID особого периода"
	msgUnauthorized        = "требуется авторизация"
	msgPeriodNotFound      = "особый период не найден"
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

// Handle DELETE /api/v1/restaurants/{restaurantId}/special-periods/{periodId}
// Требует X-User-ID header
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /restaurants/{id}/special-periods/{id} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /restaurants/{id}/special-periods/{id} - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	periodID, err := strconv.ParseInt(vars["periodId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /restaurants/{id}/special-periods/{id} - Invalid period ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriodID)
		return
	}

	if err := h.service.DeleteSpecialPeriod(r.Context(), restaurantID, periodID, userID); err != nil {
		if errors.Is(err, schedule.ErrSpecialPeriodNotFound) {
			h.logger.Warn("DELETE /restaurants/{id}/special-periods/{id} - Not found: restaurant_id=%d, period_id=%d",
				restaurantID, periodID)
			handlers.RespondNotFound(w, msgPeriodNotFound)
			return
		}
		h.logger.Error("DELETE /restaurants/{id}/special-periods/{id} - Failed to delete: restaurant_id=%d, period_id=%d, error=%v",
			restaurantID, periodID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /restaurants/{id}/special-periods/{id} - Deleted: restaurant_id=%d, period_id=%d, user_id=%d",
		restaurantID, periodID, userID)
	w.WriteHeader(http.StatusNoContent)
}

package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
	getMonthAvailability "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_month_availability"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgMissingParams       = "параметры month и guests обязательны"
	msgInvalidParams       = "некорректный формат параметров, ожидается month=YYYY-MM и целое guests"
	msgInvalidGuests       = "количество гостей должно быть от 1 до 100"
	msgRestaurantNotFound  = "ресторан не найден"
)

type Handler struct {
	useCase MonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase MonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/month-availability
// Query params: month (required, YYYY-MM), guests (required)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/month-availability - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	query := r.URL.Query()
	monthStr, guestsStr := query.Get("month"), query.Get("guests")
	if monthStr == "" || guestsStr == "" {
		h.logger.Warn("GET /restaurants/{id}/month-availability - Missing parameters")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(restaurantID, monthStr, guestsStr)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/month-availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getMonthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/month-availability - Invalid input: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidGuests)

		case errors.Is(err, getMonthAvailability.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/month-availability - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		default:
			h.logger.Error("GET /restaurants/{id}/month-availability - Failed to get availability: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/month-availability - Availability retrieved: restaurant_id=%d, month=%s, days=%d",
		restaurantID, monthStr, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package update_opening_hours

import (
	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule/models"
)

// UpdateOpeningHoursRequest HTTP request model
type UpdateOpeningHoursRequest struct {
	Days []models.DaySchedule `json:"days"`
}

// ToServiceRequest формирует запрос к сервису
func (r *UpdateOpeningHoursRequest) ToServiceRequest(restaurantID, userID int64) *models.UpdateOpeningHoursRequest {
	return &models.UpdateOpeningHoursRequest{
		UserID:       userID,
		RestaurantID: restaurantID,
		Days:         r.Days,
	}
}

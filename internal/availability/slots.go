package availability

import (
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// generateSlots генерирует слоты от openTime с шагом interval.
// Слот попадает в список, только если он целиком помещается до closeTime,
// поэтому начало любого слота строго меньше closeTime.
func generateSlots(openTime, closeTime types.TimeString, interval int) []types.TimeString {
	if interval <= 0 || !openTime.IsBefore(closeTime) {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0, closeTime.Sub(openTime)/interval)
	for start := openTime.Minutes(); start+interval <= closeTime.Minutes(); start += interval {
		slot, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

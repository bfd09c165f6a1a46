package snapshot

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

// Snapshot данные ресторана для расчета доступности за период [From, To].
// Один снимок может разделяться между конкурентными запросами, поэтому только для чтения.
type Snapshot struct {
	Restaurant     *domain.Restaurant
	From           time.Time
	To             time.Time
	OpeningHours   []*domain.OpeningHours
	SpecialPeriods []*domain.SpecialPeriod
	Tables         []*domain.Table
	Bookings       []*domain.Booking
}

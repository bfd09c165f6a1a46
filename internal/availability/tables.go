package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// placement бронирование, рассаженное за конкретный стол
type placement struct {
	tableID int64
	start   types.TimeString
	end     types.TimeString
}

func (p placement) occupies(slot types.TimeString) bool {
	return !slot.IsBefore(p.start) && slot.IsBefore(p.end)
}

func (p placement) overlaps(start, end types.TimeString) bool {
	return p.start.IsBefore(end) && start.IsBefore(p.end)
}

// bookableTables возвращает активные столы, отсортированные по вместимости (затем по ID).
// Исходный срез не изменяется.
func bookableTables(tables []*domain.Table) []*domain.Table {
	result := make([]*domain.Table, 0, len(tables))
	for _, t := range tables {
		if t != nil && t.IsBookable() {
			result = append(result, t)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Capacity != result[j].Capacity {
			return result[i].Capacity < result[j].Capacity
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// bookingsOnDate оставляет активные бронирования на указанную дату
func bookingsOnDate(bookings []*domain.Booking, date time.Time) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b == nil || !b.IsActive() || !types.SameDay(b.BookingDate, date) {
			continue
		}
		result = append(result, b)
	}
	return result
}

// assignTables рассаживает бронирования по столам на весь день.
//
// Бронирования с известным столом занимают его. Остальные размещаются по убыванию
// количества гостей (затем по времени начала и ID) за наименьший свободный стол
// подходящей вместимости. Если подходящего стола нет, бронирование занимает самый
// большой свободный стол, а если свободных столов нет совсем, не учитывается.
func assignTables(tables []*domain.Table, bookings []*domain.Booking, defaultMinutes int) []placement {
	known := make(map[int64]bool, len(tables))
	for _, t := range tables {
		known[t.ID] = true
	}

	placements := make([]placement, 0, len(bookings))
	unassigned := make([]*domain.Booking, 0, len(bookings))

	for _, b := range bookings {
		if b.TableID != nil && known[*b.TableID] {
			placements = append(placements, placement{
				tableID: *b.TableID,
				start:   b.StartTime,
				end:     b.EffectiveEnd(defaultMinutes),
			})
			continue
		}
		unassigned = append(unassigned, b)
	}

	sort.SliceStable(unassigned, func(i, j int) bool {
		a, b := unassigned[i], unassigned[j]
		if a.GuestCount != b.GuestCount {
			return a.GuestCount > b.GuestCount
		}
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.IsBefore(b.StartTime)
		}
		return a.ID < b.ID
	})

	for _, b := range unassigned {
		start, end := b.StartTime, b.EffectiveEnd(defaultMinutes)

		var fallback *domain.Table
		var chosen *domain.Table
		for _, t := range tables {
			if !tableFree(t.ID, start, end, placements) {
				continue
			}
			if t.Fits(b.GuestCount) {
				chosen = t
				break
			}
			// столы отсортированы по возрастанию, последний свободный - самый большой
			fallback = t
		}
		if chosen == nil {
			chosen = fallback
		}
		if chosen == nil {
			continue
		}

		placements = append(placements, placement{tableID: chosen.ID, start: start, end: end})
	}

	return placements
}

func tableFree(tableID int64, start, end types.TimeString, placements []placement) bool {
	for _, p := range placements {
		if p.tableID == tableID && p.overlaps(start, end) {
			return false
		}
	}
	return true
}

// hasFreeTable проверяет, есть ли на момент slot свободный стол для guests гостей
func hasFreeTable(slot types.TimeString, guests int, tables []*domain.Table, placements []placement) bool {
	for _, t := range tables {
		if !t.Fits(guests) {
			continue
		}
		occupied := false
		for _, p := range placements {
			if p.tableID == t.ID && p.occupies(slot) {
				occupied = true
				break
			}
		}
		if !occupied {
			return true
		}
	}
	return false
}

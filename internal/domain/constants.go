package domain

// Default availability values
const (
	DefaultSlotIntervalMinutes     = 30
	DefaultBookingMinutes          = 60
	DefaultMinBookingNoticeMinutes = 0
)

// ClosureReasonClosed причина закрытия, когда нет расписания или день выходной
const ClosureReasonClosed = "closed"

// Business validation constants
const (
	MinGuestCount        = 1
	MaxGuestCount        = 100
	MaxSpecialPeriodDays = 366
	MaxReasonLength      = 255
	DaysPerWeek          = 7
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// InactiveStatuses статусы бронирований, которые не занимают стол
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

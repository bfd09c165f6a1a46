package types

import (
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// ParseDate парсит календарную дату YYYY-MM-DD (полночь UTC)
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// ParseMonth парсит месяц YYYY-MM и возвращает его первый день (полночь UTC)
func ParseMonth(s string) (time.Time, error) {
	return time.Parse(monthLayout, s)
}

// DateOnly отбрасывает время и часовой пояс, оставляя календарную дату в UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay проверяет, что две даты относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DaysInMonth возвращает все дни месяца, к которому относится date
func DaysInMonth(date time.Time) []time.Time {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := make([]time.Time, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// WallClock переводит момент времени в локацию ресторана и возвращает
// "настенное" время как UTC, чтобы сравнивать его с календарными датами и TimeString
func WallClock(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), 0, 0, time.UTC)
}

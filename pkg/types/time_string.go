package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	minutesPerDay = 24 * 60
	timeLayout    = "15:04"
	endOfDay      = "24:00"
)

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString время суток в формате HH:MM без привязки к дате и часовому поясу.
// Допустимый диапазон 00:00..24:00, где 24:00 означает конец суток
// и используется только как время закрытия.
type TimeString struct {
	minutes int
}

// NewTimeString создает TimeString из часов и минут time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute()}
}

// NewTimeStringFromMinutes создает TimeString из количества минут от начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString{minutes: minutes}, nil
}

// NewTimeStringFromString парсит строку "HH:MM".
// Формат "HH:MM:SS" тоже принимается (так PostgreSQL отдает колонки TIME), секунды отбрасываются.
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if len(s) == 8 && s[5] == ':' {
		s = s[:5]
	}

	if s == endOfDay {
		return TimeString{minutes: minutesPerDay}, nil
	}

	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return NewTimeString(t), nil
}

// MustTimeString как NewTimeStringFromString, но паникует при ошибке.
// Предназначена для констант и тестов.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() int {
	return t.minutes
}

// IsEndOfDay возвращает true для 24:00
func (t TimeString) IsEndOfDay() bool {
	return t.minutes == minutesPerDay
}

// AddMinutes возвращает время, сдвинутое на n минут.
// Переход через полночь не допускается.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.minutes + n)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// Equal возвращает true, если время совпадает
func (t TimeString) Equal(other TimeString) bool {
	return t.minutes == other.minutes
}

// Sub возвращает разницу t - other в минутах
func (t TimeString) Sub(other TimeString) int {
	return t.minutes - other.minutes
}

// OnDate переносит время суток на указанную дату в указанной локации
func (t TimeString) OnDate(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(t.minutes) * time.Minute)
}

// String возвращает время в формате HH:MM
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// Scan реализует sql.Scanner для колонок TIME и TEXT
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return t.String(), nil
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON разбирает строку "HH:MM"
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

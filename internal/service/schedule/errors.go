package schedule

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrSpecialPeriodNotFound возвращается, когда особый период не найден
	ErrSpecialPeriodNotFound = errors.New("special period not found")

	// ErrSpecialPeriodOverlap возвращается, когда новый период пересекается с существующим
	ErrSpecialPeriodOverlap = errors.New("special period overlaps an existing one")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)

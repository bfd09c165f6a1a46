package get_day_availability

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

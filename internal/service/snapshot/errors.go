package snapshot

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден или отключен
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrInvalidRange возвращается при некорректном периоде загрузки
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("snapshot.service: internal error")
)

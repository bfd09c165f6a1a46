package availability

import "errors"

var (
	// ErrInvalidArgument некорректная дата, количество гостей или время уведомления
	ErrInvalidArgument = errors.New("availability: invalid argument")
)

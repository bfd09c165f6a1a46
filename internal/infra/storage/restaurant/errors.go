package restaurant

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant.repository: restaurant not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("restaurant.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("restaurant.repository: failed to scan row")
)

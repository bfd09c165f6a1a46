package schedule

import "errors"

var (
	// ErrSpecialPeriodNotFound возвращается, когда особый период не найден
	ErrSpecialPeriodNotFound = errors.New("schedule.repository: special period not found")

	// ErrRestaurantNotFound возвращается при нарушении внешнего ключа на ресторан
	ErrRestaurantNotFound = errors.New("schedule.repository: restaurant not found")

	// ErrDuplicateWeekday возвращается при попытке сохранить два расписания на один день недели
	ErrDuplicateWeekday = errors.New("schedule.repository: duplicate weekday")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)

package availability

import "errors"

var (
	// ErrCacheMiss возвращается, когда в кэше нет значения
	ErrCacheMiss = errors.New("availability.cache: cache miss")

	// ErrCache возвращается при ошибках Redis или сериализации
	ErrCache = errors.New("availability.cache: cache error")
)

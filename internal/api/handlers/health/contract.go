package health

import "context"

// Checker проверка зависимости (БД, Redis)
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc адаптер функции к Checker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

type Logger interface {
	Warn(format string, v ...interface{})
}

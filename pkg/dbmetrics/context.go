package dbmetrics

import "context"

type executorKey struct{}

// WithExecutor кладет исполнитель (обычно активную транзакцию) в context.
// Репозитории достают его через GetExecutor и автоматически выполняют
// запросы внутри транзакции вызывающего кода
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, executor)
}

// GetExecutor возвращает исполнитель из context или fallback, если
// транзакция не открыта
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction возвращает true, если в context есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey{}).(DBExecutor)
	return ok
}

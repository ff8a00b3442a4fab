package dbmetrics

import "context"

type executorCtxKey struct{}

// WithExecutor кладет активный executor (обычно транзакцию) в контекст
// Репозитории достают его через GetExecutor и выполняют запросы в рамках транзакции
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, executorCtxKey{}, exec)
}

// GetExecutor возвращает executor из контекста, если он там есть,
// иначе переданный fallback (обычное соединение репозитория)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(executorCtxKey{}).(DBExecutor); ok && exec != nil {
		return exec
	}
	return fallback
}

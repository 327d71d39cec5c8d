package dbmetrics

import "context"

type ctxKey struct{}

// executorCtxKey ключ контекста для активного исполнителя транзакции
var executorCtxKey = ctxKey{}

// WithExecutor кладет исполнителя транзакции в контекст
// Используется transaction manager'ами, чтобы репозитории выполняли
// запросы в рамках активной транзакции
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorCtxKey, executor)
}

// GetExecutor возвращает исполнителя из контекста, если там есть активная
// транзакция, иначе возвращает fallback (обычно соединение репозитория)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorCtxKey).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorCtxKey).(DBExecutor)
	return ok
}

package middleware

import (
	"context"
	"net/http"

	"KisiKart/internal/session"
)

type ctxKey int

const (
	adminCtxKey ctxKey = iota
	ownerCtxKey
)

// WithSessions резолвит обе сессии один раз на запрос и кладёт типизированные
// утверждения в контекст. Невалидные куки дают анонима, не ошибку: запрет
// решается на уровне операции, не транспорта.
func WithSessions(authority *session.Authority) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if authority.AdminFromRequest(r) {
				ctx = context.WithValue(ctx, adminCtxKey, true)
			}
			if id, ok := authority.OwnerFromRequest(r); ok {
				ctx = context.WithValue(ctx, ownerCtxKey, id)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsAdminFromContext сообщает, несёт ли запрос административную сессию.
func IsAdminFromContext(ctx context.Context) bool {
	v, ok := ctx.Value(adminCtxKey).(bool)
	return ok && v
}

// GetOwnerIDFromContext возвращает id карточки из owner-сессии запроса.
func GetOwnerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ownerCtxKey).(string)
	return id, ok
}

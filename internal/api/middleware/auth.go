package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/easybook/EB-BookingService/internal/domain"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	userRoleKey
)

// Заголовки сессионного коллаборатора; их значения считаются доверенными,
// аутентификацию выполняет внешний слой
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Auth извлекает ID и роль пользователя из заголовков в контекст запроса
// Запросы без корректного X-User-ID отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(HeaderUserID)
		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"отсутствует или некорректен заголовок X-User-ID"}`))
			return
		}

		role := domain.Role(r.Header.Get(HeaderUserRole))
		switch role {
		case domain.RoleAdmin, domain.RoleEmployee, domain.RoleCustomer:
		default:
			role = domain.RoleCustomer
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetUserRole возвращает роль пользователя из контекста запроса
func GetUserRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(userRoleKey).(domain.Role)
	return role, ok
}

package requestid

import (
	"context"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const Header = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "requestID"

// Middleware присваивает запросу идентификатор. Пришедший заголовок
// X-Request-ID сохраняется, иначе генерируется новый.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			generated, err := gonanoid.New()
			if err == nil {
				id = generated
			}
		}

		if id != "" {
			w.Header().Set(Header, id)
			r = r.WithContext(context.WithValue(r.Context(), requestIDKey, id))
		}

		next.ServeHTTP(w, r)
	})
}

// FromContext возвращает идентификатор запроса или пустую строку
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

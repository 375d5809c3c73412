package common

import (
	"context"
	"net/http"

	"github.com/bornholm/procuradoria/internal/core/service"
)

type contextKey string

const keyDesk contextKey = "desk"

// WithDesk exposes the desk to pages rendered outside of their own handler,
// the error page for instance.
func WithDesk(desk *service.Desk, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), keyDesk, desk)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func deskFromContext(ctx context.Context) (*service.Desk, bool) {
	desk, ok := ctx.Value(keyDesk).(*service.Desk)
	return desk, ok
}

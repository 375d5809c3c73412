package http

import (
	"crypto/sha256"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/go-x/slogx"
	httpCtx "github.com/bornholm/procuradoria/internal/http/context"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if ok {
			usernameMatch := constantTimeEqual(username, s.opts.BasicAuth.Username)
			passwordMatch := matchPassword(password, s.opts.BasicAuth.Password)

			if usernameMatch && passwordMatch {
				ctx := httpCtx.SetUser(r.Context(), username)
				ctx = slogx.WithAttrs(ctx, slog.String("user", username))

				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		w.Header().Set("WWW-Authenticate", `Basic realm="procuradoria", charset="UTF-8"`)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})
}

func constantTimeEqual(given, expected string) bool {
	givenHash := sha256.Sum256([]byte(given))
	expectedHash := sha256.Sum256([]byte(expected))
	return subtle.ConstantTimeCompare(givenHash[:], expectedHash[:]) == 1
}

// matchPassword accepts either a plain text password or a bcrypt hash
// ($2a$, $2b$ or $2y$ prefixed) as the expected value.
func matchPassword(given, expected string) bool {
	if strings.HasPrefix(expected, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(expected), []byte(given)) == nil
	}

	return constantTimeEqual(given, expected)
}

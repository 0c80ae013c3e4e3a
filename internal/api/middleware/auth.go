package middleware

import (
	"net/http"
	"strings"

	"github.com/agendei-app/agendei-service/internal/api/handlers"
)

// TokenVerifier validates admin bearer tokens.
type TokenVerifier interface {
	VerifyToken(token string) error
}

// Auth requires a valid admin bearer token on every request it wraps.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondUnauthorized(w, "token de acesso obrigatório")
				return
			}
			if err := verifier.VerifyToken(token); err != nil {
				handlers.RespondUnauthorized(w, "token inválido ou expirado")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

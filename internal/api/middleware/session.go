package middleware

import (
	"context"
	"net/http"

	"github.com/agendei-app/agendei-service/internal/api/handlers"
)

type contextKey string

const sessionKey contextKey = "sessionID"

// SessionHeader identifies the caller's browsing session. Carts and
// profiles are keyed by it.
const SessionHeader = "X-Session-ID"

// Session requires the session header and stores its value in the request
// context.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			handlers.RespondBadRequest(w, "cabeçalho X-Session-ID obrigatório")
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID extracts the session identifier stored by Session. Handlers
// behind the middleware always see a non-empty value.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey).(string)
	return id
}

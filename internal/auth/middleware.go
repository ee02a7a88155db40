package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Lelo88/listas-api/internal/httpx"
)

// TokenVerifier es lo que el middleware necesita para validar un token.
type TokenVerifier interface {
	Verify(raw string) (Session, error)
}

// RequireSession valida el header "Authorization: Bearer <token>" y deja la
// sesión en el contexto. Sin sesión válida responde 401.
func RequireSession(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				httpx.Fail(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
				return
			}

			session, err := verifier.Verify(raw)
			if err != nil {
				slog.DebugContext(r.Context(), "rejected token", "error", err, "request_id", httpx.RequestIDFrom(r))
				httpx.Fail(w, r, http.StatusUnauthorized, "unauthorized", "invalid or expired session")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

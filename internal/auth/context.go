package auth

import (
	"context"
	"time"
)

type contextKey struct{}

// Session es la sesión del usuario autenticado.
// Se establece cuando llega un token válido y termina cuando el token expira.
type Session struct {
	UserID    string
	ExpiresAt time.Time
}

// WithSession guarda la sesión en el contexto del request.
func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, contextKey{}, session)
}

// FromContext devuelve la sesión si existe.
func FromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(contextKey{}).(Session)
	return session, ok
}

// UserID devuelve el id del usuario o "" si no hay sesión.
func UserID(ctx context.Context) string {
	session, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return session.UserID
}

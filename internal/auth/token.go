package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrorMissingToken = errors.New("missing bearer token")
	ErrorInvalidToken = errors.New("invalid token")
)

// Verifier valida los JWT HS256 que emite el backend de autenticación.
// El claim "sub" es el id del usuario.
type Verifier struct {
	secret   []byte
	audience string
}

// NewVerifier crea un verifier. audience vacío desactiva el chequeo de "aud".
func NewVerifier(secret, audience string) *Verifier {
	return &Verifier{secret: []byte(secret), audience: audience}
}

// Verify parsea el token y devuelve la sesión que representa.
func (verifier *Verifier) Verify(raw string) (Session, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Session{}, ErrorMissingToken
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if verifier.audience != "" {
		options = append(options, jwt.WithAudience(verifier.audience))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		return verifier.secret, nil
	}, options...)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrorInvalidToken, err)
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return Session{}, fmt.Errorf("%w: empty subject", ErrorInvalidToken)
	}

	return Session{
		UserID:    claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Issuer firma tokens con el mismo secreto. Se usa en desarrollo (listasctl token) y en tests.
type Issuer struct {
	secret   []byte
	audience string
	now      func() time.Time
}

// NewIssuer crea un issuer.
func NewIssuer(secret, audience string) *Issuer {
	return &Issuer{secret: []byte(secret), audience: audience, now: time.Now}
}

// Issue firma un token para userID válido por ttl.
func (issuer *Issuer) Issue(userID string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", errors.New("user id is required")
	}
	if ttl <= 0 {
		return "", errors.New("ttl must be positive")
	}

	now := issuer.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	if issuer.audience != "" {
		claims.Audience = jwt.ClaimStrings{issuer.audience}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(issuer.secret)
}
